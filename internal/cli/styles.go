package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/tablr/internal/model"
)

// Theme is one of the two lipgloss style sets, selected by the theme
// preference.
type Theme struct {
	Title      lipgloss.Style
	Header     lipgloss.Style
	SortHeader lipgloss.Style
	Cursor     lipgloss.Style
	EditingRow lipgloss.Style
	Dim        lipgloss.Style
	Status     lipgloss.Style
	Error      lipgloss.Style
	Modal      lipgloss.Style
}

func darkTheme() Theme {
	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8")),
		SortHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Background(lipgloss.Color("8")),
		Cursor:     lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15")),
		EditingRow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Modal:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
}

func lightTheme() Theme {
	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		Header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("7")),
		SortHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")).Background(lipgloss.Color("7")),
		Cursor:     lipgloss.NewStyle().Background(lipgloss.Color("12")).Foreground(lipgloss.Color("0")),
		EditingRow: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Modal:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
}

// ThemeFor maps a theme preference to its style set.
func ThemeFor(name string) Theme {
	if name == model.ThemeLight {
		return lightTheme()
	}

	return darkTheme()
}
