// Package csvio translates between the record/column shape and delimited
// text. encoding/csv does the quoting; this package owns the projection
// onto visible column labels and the value coercion on the way in.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/inovacc/tablr/internal/model"
	"github.com/inovacc/tablr/internal/view"
)

// DefaultFilename is the export artifact name.
const DefaultFilename = "users.csv"

// Export writes the given record set projected onto the visible column
// labels, header row first, in display order. Callers pass the current
// filtered and sorted set so the file matches what the table shows.
func Export(w io.Writer, records []model.Record, columns []model.Column) error {
	visible := view.VisibleColumns(columns)

	cw := csv.NewWriter(w)

	header := make([]string, 0, len(visible))
	for _, c := range visible {
		header = append(header, c.Label)
	}

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(visible))
	for _, r := range records {
		for i, c := range visible {
			row[i] = r.Get(c.Key).Render()
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// NextID hands out fresh record ids for an import batch.
type NextID func() model.RecordID

// Import parses delimited text with a header row into new records, one
// per data row. For each visible column the header matching its label
// case-insensitively supplies the value; numeric columns parse as
// integers defaulting to 0, everything else stays text, and columns with
// no matching header are left absent. Every record gets a fresh id. A
// parse error aborts the whole import; nothing is returned for partial
// application.
func Import(r io.Reader, records []model.Record, columns []model.Column, nextID NextID) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	visible := view.VisibleColumns(columns)

	// header index per visible column, -1 when the file has no match
	idx := make([]int, len(visible))
	for i, c := range visible {
		idx[i] = -1
		for j, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), c.Label) {
				idx[i] = j

				break
			}
		}
	}

	out := make([]model.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		rec := model.Record{ID: nextID(), Fields: make(model.Fields)}

		for i, c := range visible {
			j := idx[i]
			if j < 0 || j >= len(row) {
				continue
			}

			rec.Fields[c.Key] = coerce(row[j], IsNumericColumn(records, c.Key))
		}

		out = append(out, rec)
	}

	return out, nil
}

// IsNumericColumn reports whether every record defining the key holds a
// number, with at least one doing so. The committed data is the only
// schema there is, so numeric-ness is inferred from it.
func IsNumericColumn(records []model.Record, key model.ColumnKey) bool {
	seen := false

	for _, r := range records {
		v := r.Get(key)
		switch v.Kind {
		case model.KindAbsent:
			continue
		case model.KindNumber:
			seen = true
		default:
			return false
		}
	}

	return seen
}

func coerce(s string, numeric bool) model.Value {
	if !numeric {
		return model.Text(s)
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return model.Number(0)
	}

	return model.Number(float64(n))
}

func isBlank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}

	return true
}
