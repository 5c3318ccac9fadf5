package cli

import (
	"testing"

	"github.com/inovacc/tablr/internal/model"
)

func TestValidateEdit(t *testing.T) {
	records := model.SeedRecords()

	tests := []struct {
		name     string
		key      model.ColumnKey
		raw      string
		expected model.Value
		ok       bool
	}{
		{name: "text accepted as-is", key: model.KeyName, raw: "Alice Cooper", expected: model.Text("Alice Cooper"), ok: true},
		{name: "empty text accepted", key: model.KeyRole, raw: "", expected: model.Text(""), ok: true},
		{name: "age in range", key: model.KeyAge, raw: "42", expected: model.Number(42), ok: true},
		{name: "age at lower bound", key: model.KeyAge, raw: "0", expected: model.Number(0), ok: true},
		{name: "age at upper bound", key: model.KeyAge, raw: "120", expected: model.Number(120), ok: true},
		{name: "age above range rejected", key: model.KeyAge, raw: "121", ok: false},
		{name: "age below range rejected", key: model.KeyAge, raw: "-1", ok: false},
		{name: "non-numeric age rejected", key: model.KeyAge, raw: "old", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ValidateEdit(records, tt.key, tt.raw)
			if ok != tt.ok {
				t.Fatalf("ValidateEdit(%q, %q) ok = %v, want %v", tt.key, tt.raw, ok, tt.ok)
			}

			if ok && got != tt.expected {
				t.Errorf("ValidateEdit(%q, %q) = %#v, want %#v", tt.key, tt.raw, got, tt.expected)
			}
		})
	}
}
