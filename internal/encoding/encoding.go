// Package encoding holds the JSON and filesystem helpers shared by the
// snapshot backends and the preferences writer.
package encoding

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Marshal encodes v as compact JSON.
func Marshal[T any](v *T) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", v, err)
	}

	return data, nil
}

// Unmarshal decodes data into a fresh T. Nil or empty data yields nil
// without error, mirroring a missing stored value.
func Unmarshal[T any](data []byte) (*T, error) {
	if len(data) == 0 {
		return nil, nil
	}

	v := new(T)
	if err := json.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %T: %w", v, err)
	}

	return v, nil
}

// EnsureParentDir creates the directory holding path if it does not
// exist yet. Uses 0755 permissions.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return nil
}
