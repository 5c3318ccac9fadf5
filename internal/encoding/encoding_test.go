package encoding

import (
	"os"
	"path/filepath"
	"testing"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	in := &payload{Name: "rows", Count: 12}

	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	out, err := Unmarshal[payload](data)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if out == nil || *out != *in {
		t.Errorf("round trip = %#v, want %#v", out, in)
	}
}

func TestUnmarshalNilDataYieldsNil(t *testing.T) {
	out, err := Unmarshal[payload](nil)
	if err != nil {
		t.Fatalf("Unmarshal(nil) error = %v", err)
	}

	if out != nil {
		t.Errorf("Unmarshal(nil) = %#v, want nil", out)
	}
}

func TestUnmarshalBadDataErrors(t *testing.T) {
	if _, err := Unmarshal[payload]([]byte("{not json")); err == nil {
		t.Error("Unmarshal() error = nil, want parse error")
	}
}

func TestEnsureParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "file.bolt")

	if err := EnsureParentDir(path); err != nil {
		t.Fatalf("EnsureParentDir() error = %v", err)
	}

	info, err := os.Stat(filepath.Dir(path))
	if err != nil || !info.IsDir() {
		t.Errorf("parent directory not created: %v", err)
	}
}
