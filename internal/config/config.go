// Package config reads and writes the user preferences file,
// an ini file in the application directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/inovacc/tablr/internal/encoding"
	"github.com/inovacc/tablr/internal/model"
	"github.com/inovacc/tablr/internal/params"
	"gopkg.in/ini.v1"
)

const fileName = "config.ini"

// DefaultPath returns the preferences file location.
func DefaultPath() string {
	return filepath.Join(params.AppdataDir, fileName)
}

// Load reads the preferences file at path. A missing file yields the
// defaults without error; a malformed one is an error.
func Load(path string) (model.Config, error) {
	cfg := model.DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}

	if err := f.Section("").MapTo(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.Normalize()

	return cfg, nil
}

// Save writes the preferences to path, creating the directory if needed.
func Save(path string, cfg model.Config) error {
	if err := encoding.EnsureParentDir(path); err != nil {
		return err
	}

	f := ini.Empty()
	if err := f.Section("").ReflectFrom(&cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return f.SaveTo(path)
}
