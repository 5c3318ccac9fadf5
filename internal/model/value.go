package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind discriminates the cell value union.
type Kind int

const (
	KindAbsent Kind = iota
	KindText
	KindNumber
	KindBool
)

// Value is a tagged union over the cell types a record may hold.
// The zero Value is absent.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Flag bool
}

// Absent is the missing-field value.
var Absent = Value{}

func Text(s string) Value    { return Value{Kind: KindText, Str: s} }
func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }
func Bool(b bool) Value      { return Value{Kind: KindBool, Flag: b} }

// IsAbsent reports whether the value is missing.
func (v Value) IsAbsent() bool { return v.Kind == KindAbsent }

// Render returns the display string for the value. Absent renders empty.
// Whole numbers render without a decimal point.
func (v Value) Render() string {
	switch v.Kind {
	case KindText:
		return v.Str
	case KindNumber:
		if v.Num == math.Trunc(v.Num) {
			return strconv.FormatInt(int64(v.Num), 10)
		}

		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Flag)
	default:
		return ""
	}
}

// MarshalJSON encodes the value as the native JSON scalar: string, number,
// boolean or null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindText:
		return json.Marshal(v.Str)
	case KindNumber:
		return json.Marshal(v.Num)
	case KindBool:
		return json.Marshal(v.Flag)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a JSON scalar into the matching union arm.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch t := raw.(type) {
	case nil:
		*v = Absent
	case string:
		*v = Text(t)
	case float64:
		*v = Number(t)
	case bool:
		*v = Bool(t)
	default:
		return fmt.Errorf("unsupported cell value %T", raw)
	}

	return nil
}
