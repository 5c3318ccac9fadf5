package model

// Theme names for the two lipgloss style sets.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// DefaultPageSize is the number of rows per table page.
const DefaultPageSize = 10

// Config holds the user preferences persisted in the preferences file.
type Config struct {
	// Theme selects the style set, "dark" or "light"
	Theme string `ini:"theme" json:"theme"`

	// PageSize is the number of rows shown per page
	PageSize int `ini:"page_size" json:"page_size"`

	// StorePath overrides the snapshot database location when non-empty
	StorePath string `ini:"store_path" json:"store_path"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:    ThemeDark,
		PageSize: DefaultPageSize,
	}
}

// Normalize clamps nonsense values back to defaults.
func (c *Config) Normalize() {
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}

	if c.Theme != ThemeDark && c.Theme != ThemeLight {
		c.Theme = ThemeDark
	}
}
