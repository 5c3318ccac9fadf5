package cli

import (
	"strconv"
	"strings"

	"github.com/inovacc/tablr/internal/csvio"
	"github.com/inovacc/tablr/internal/model"
)

// ageMin/ageMax bound the accepted range for the age column.
const (
	ageMin = 0
	ageMax = 120
)

// ValidateEdit checks raw input at the edit boundary and returns the
// coerced value. Numeric columns must parse as numbers; the age column
// additionally must fall inside [0,120]. A false return means the input
// is not accepted — no error, the value simply never reaches the buffer.
func ValidateEdit(records []model.Record, key model.ColumnKey, raw string) (model.Value, bool) {
	if key == model.KeyAge || csvio.IsNumericColumn(records, key) {
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return model.Absent, false
		}

		if key == model.KeyAge && (n < ageMin || n > ageMax) {
			return model.Absent, false
		}

		return model.Number(n), true
	}

	return model.Text(raw), true
}
