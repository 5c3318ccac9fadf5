package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/tablr/internal/config"
	"github.com/inovacc/tablr/internal/model"
)

var (
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	noStyle      = lipgloss.NewStyle()

	focusedButton = focusedStyle.Render("[ Submit ]")
	blurredButton = fmt.Sprintf("[ %s ]", blurredStyle.Render("Submit"))
)

// ConfigureModel is the interactive preferences form.
type ConfigureModel struct {
	focusIndex int
	inputs     []textinput.Model
	path       string
	Saved      bool
	Err        error
}

// NewConfigureModel builds the form pre-filled with the current
// preferences, to be saved back to path on submit.
func NewConfigureModel(path string, cfg model.Config) ConfigureModel {
	m := ConfigureModel{
		inputs: make([]textinput.Model, 3),
		path:   path,
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 256

		switch i {
		case 0:
			t.Placeholder = "dark or light"
			t.SetValue(cfg.Theme)
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		case 1:
			t.Placeholder = "10"
			t.CharLimit = 4
			t.SetValue(strconv.Itoa(cfg.PageSize))
		case 2:
			t.Placeholder = "snapshot database path (optional)"
			t.SetValue(cfg.StorePath)
		}

		m.inputs[i] = t
	}

	return m
}

func (m ConfigureModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ConfigureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				m.Err = m.save()
				m.Saved = m.Err == nil

				return m, tea.Quit
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := 0; i <= len(m.inputs)-1; i++ {
				if i == m.focusIndex {
					cmds[i] = m.inputs[i].Focus()
					m.inputs[i].PromptStyle = focusedStyle
					m.inputs[i].TextStyle = focusedStyle

					continue
				}

				m.inputs[i].Blur()
				m.inputs[i].PromptStyle = noStyle
				m.inputs[i].TextStyle = noStyle
			}

			return m, tea.Batch(cmds...)
		}
	}

	cmd := m.updateInputs(msg)

	return m, cmd
}

func (m *ConfigureModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (m *ConfigureModel) save() error {
	cfg := model.Config{
		Theme:     strings.TrimSpace(m.inputs[0].Value()),
		StorePath: strings.TrimSpace(m.inputs[2].Value()),
	}

	if n, err := strconv.Atoi(strings.TrimSpace(m.inputs[1].Value())); err == nil {
		cfg.PageSize = n
	}

	cfg.Normalize()

	return config.Save(m.path, cfg)
}

func (m ConfigureModel) View() string {
	var b strings.Builder

	labels := []string{"Theme", "Page size", "Store path"}
	for i := range m.inputs {
		fmt.Fprintf(&b, " %s\n %s\n\n", blurredStyle.Render(labels[i]), m.inputs[i].View())
	}

	button := blurredButton
	if m.focusIndex == len(m.inputs) {
		button = focusedButton
	}

	fmt.Fprintf(&b, "\n %s\n", button)

	return b.String()
}
