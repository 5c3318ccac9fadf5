package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/tablr/internal/model"
)

func (m TableModel) updateColumns(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := m.st.Columns()

	switch msg.String() {
	case "esc", "q", "c":
		m.mode = modeBrowse
		m.sync()

		return m, nil

	case "up", "k":
		if m.colCursor > 0 {
			m.colCursor--
		}

	case "down", "j":
		if m.colCursor < len(cols)-1 {
			m.colCursor++
		}

	case " ":
		if m.colCursor < len(cols) {
			c := cols[m.colCursor]
			m.st.ToggleVisibility(c.Key, !c.Visible)
			m.persist()
		}

	case "K", "shift+up":
		if m.colCursor > 0 && m.colCursor < len(cols) {
			m.st.ReorderColumns(cols[m.colCursor].Key, cols[m.colCursor-1].Key)
			m.colCursor--
			m.persist()
		}

	case "J", "shift+down":
		if m.colCursor < len(cols)-1 {
			m.st.ReorderColumns(cols[m.colCursor].Key, cols[m.colCursor+1].Key)
			m.colCursor++
			m.persist()
		}

	case "a":
		m.addInput.SetValue("")
		m.mode = modeAddColumn

		return m, m.addInput.Focus()
	}

	return m, nil
}

func (m TableModel) updateAddColumn(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.addInput.Blur()
		m.mode = modeColumns

		return m, nil

	case "enter":
		label := strings.TrimSpace(m.addInput.Value())
		key := model.KeyFromLabel(label)

		switch {
		case key == "":
			m.status = m.th.Error.Render("Invalid column name.")
		case m.st.HasColumn(key):
			m.status = m.th.Error.Render("Column already exists.")
		default:
			m.st.AppendColumn(model.Column{Key: key, Label: label, Visible: true, Sortable: true})

			// every record gains an explicit empty value for the new column
			updates := make(map[model.RecordID]model.Fields, len(m.st.Records()))
			for _, r := range m.st.Records() {
				updates[r.ID] = model.Fields{key: model.Text("")}
			}

			m.st.UpdateMany(updates)
			m.persist()
			m.status = m.th.Status.Render("Added column " + label)
		}

		m.addInput.Blur()
		m.mode = modeColumns

		return m, nil
	}

	var cmd tea.Cmd

	m.addInput, cmd = m.addInput.Update(msg)

	return m, cmd
}

func (m TableModel) viewColumns() string {
	var b strings.Builder

	b.WriteString(m.th.Title.Render(" Manage Columns"))
	b.WriteString("\n\n")

	for i, c := range m.st.Columns() {
		mark := "[ ]"
		if c.Visible {
			mark = "[x]"
		}

		line := fmt.Sprintf(" %s %-16s %s", mark, c.Label, m.th.Dim.Render(string(c.Key)))
		if i == m.colCursor && m.mode == modeColumns {
			line = m.th.Cursor.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if m.mode == modeAddColumn {
		b.WriteString(" Add column: " + m.addInput.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(" " + m.status)
		b.WriteString("\n")
	}

	help := " space toggle  J/K move  a add  esc back"
	b.WriteString(m.th.Dim.Render(help))

	return b.String()
}
