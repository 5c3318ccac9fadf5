package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/tablr/internal/csvio"
	"github.com/inovacc/tablr/internal/database"
	"github.com/inovacc/tablr/internal/model"
	"github.com/inovacc/tablr/internal/state"
	"github.com/inovacc/tablr/internal/view"
)

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeEdit
	modeConfirmDelete
	modeColumns
	modeAddColumn
)

const maxCellWidth = 28

// TableModel is the interactive table. All mutation is dispatched
// through the state tree operations and the snapshot is saved after
// each one, so quitting never loses committed data.
type TableModel struct {
	st  *state.AppState
	db  database.Store
	cfg model.Config
	th  Theme

	width  int
	height int
	mode   mode

	cursorRow int // within the current page
	cursorCol int // within the visible columns

	search textinput.Model

	edit    textinput.Model
	editID  model.RecordID
	editKey model.ColumnKey

	confirmID   model.RecordID
	confirmName string

	// manage-columns view
	colCursor int
	addInput  textinput.Model

	status   string
	quitting bool
}

// NewTableModel builds the table over an already-loaded state tree.
func NewTableModel(st *state.AppState, db database.Store, cfg model.Config) TableModel {
	search := textinput.New()
	search.Placeholder = "Search table..."
	search.Prompt = "/ "
	search.CharLimit = 128
	search.SetValue(st.UI().SearchTerm)

	edit := textinput.New()
	edit.Prompt = ""
	edit.CharLimit = 256

	add := textinput.New()
	add.Placeholder = "Column label"
	add.Prompt = "> "
	add.CharLimit = 64

	return TableModel{
		st:       st,
		db:       db,
		cfg:      cfg,
		th:       ThemeFor(cfg.Theme),
		search:   search,
		edit:     edit,
		addInput: add,
	}
}

func (m TableModel) Init() tea.Cmd {
	return nil
}

// derive recomputes the page from scratch; every render and every
// post-mutation sync goes through here.
func (m *TableModel) derive() view.Result {
	ui := m.st.UI()

	return view.Derive(m.st.Records(), m.st.Columns(), view.Query{
		Search:   ui.SearchTerm,
		Sort:     ui.Sort,
		Page:     ui.Page,
		PageSize: m.cfg.PageSize,
	})
}

// sync writes the clamped page back and keeps the cursor inside the
// page and the visible columns.
func (m *TableModel) sync() view.Result {
	res := m.derive()
	m.st.SetPage(res.Page)

	if m.cursorRow >= len(res.Records) {
		m.cursorRow = len(res.Records) - 1
	}

	if m.cursorRow < 0 {
		m.cursorRow = 0
	}

	visible := view.VisibleColumns(m.st.Columns())
	if m.cursorCol >= len(visible) {
		m.cursorCol = len(visible) - 1
	}

	if m.cursorCol < 0 {
		m.cursorCol = 0
	}

	return res
}

func (m *TableModel) persist() {
	if m.db == nil {
		return
	}

	if err := m.db.SaveSnapshot(m.st.Snapshot()); err != nil {
		m.status = m.th.Error.Render("save failed: " + err.Error())
	}
}

func (m TableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeEdit:
			return m.updateEdit(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		case modeColumns:
			return m.updateColumns(msg)
		case modeAddColumn:
			return m.updateAddColumn(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

func (m TableModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "ctrl+c", "q":
		m.persist()
		m.quitting = true

		return m, tea.Quit

	case "/":
		m.mode = modeSearch

		return m, m.search.Focus()

	case "up", "k":
		if m.cursorRow > 0 {
			m.cursorRow--
		}

	case "down", "j":
		res := m.derive()
		if m.cursorRow < len(res.Records)-1 {
			m.cursorRow++
		}

	case "left", "h":
		if m.cursorCol > 0 {
			m.cursorCol--
		}

	case "right", "l":
		visible := view.VisibleColumns(m.st.Columns())
		if m.cursorCol < len(visible)-1 {
			m.cursorCol++
		}

	case "[", "pgup":
		m.st.SetPage(m.st.UI().Page - 1)
		m.sync()
		m.persist()

	case "]", "pgdown":
		m.st.SetPage(m.st.UI().Page + 1)
		m.sync()
		m.persist()

	case "s":
		visible := view.VisibleColumns(m.st.Columns())
		if m.cursorCol < len(visible) && visible[m.cursorCol].Sortable {
			m.st.ToggleSort(visible[m.cursorCol].Key)
			m.sync()
			m.persist()
		}

	case "enter", "e":
		res := m.derive()
		if m.cursorRow < len(res.Records) {
			visible := view.VisibleColumns(m.st.Columns())
			if m.cursorCol >= len(visible) {
				break
			}

			rec := res.Records[m.cursorRow]
			m.st.StartEdit(rec.ID)
			m.editID = rec.ID
			m.editKey = visible[m.cursorCol].Key
			m.edit.SetValue(m.st.EffectiveValue(rec, m.editKey).Render())
			m.edit.CursorEnd()
			m.mode = modeEdit

			return m, m.edit.Focus()
		}

	case "d":
		res := m.derive()
		if m.cursorRow < len(res.Records) {
			rec := res.Records[m.cursorRow]
			m.confirmID = rec.ID
			m.confirmName = m.st.EffectiveValue(rec, model.KeyName).Render()
			m.mode = modeConfirmDelete
		}

	case "c":
		m.colCursor = 0
		m.mode = modeColumns

	case "ctrl+s":
		if m.st.Dirty() {
			m.st.SaveAll()
			m.sync()
			m.persist()
			m.status = m.th.Status.Render("All changes saved")
		}

	case "ctrl+r":
		if m.st.Dirty() {
			m.st.CancelAll()
			m.status = m.th.Status.Render("Edits discarded")
		}

	case "x":
		m.status = m.exportCSV()
	}

	return m, nil
}

// exportCSV writes the current filtered and sorted set to users.csv in
// the working directory.
func (m *TableModel) exportCSV() string {
	ui := m.st.UI()

	recs := view.FilterSort(m.st.Records(), m.st.Columns(), ui.SearchTerm, ui.Sort)

	f, err := os.Create(csvio.DefaultFilename)
	if err != nil {
		return m.th.Error.Render("export failed: " + err.Error())
	}
	defer func() { _ = f.Close() }()

	if err := csvio.Export(f, recs, m.st.Columns()); err != nil {
		return m.th.Error.Render("export failed: " + err.Error())
	}

	return m.th.Status.Render(fmt.Sprintf("Exported %d rows to %s", len(recs), csvio.DefaultFilename))
}

func (m TableModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.search.Blur()
		m.mode = modeBrowse
		m.sync()
		m.persist()

		return m, nil
	}

	var cmd tea.Cmd

	m.search, cmd = m.search.Update(msg)
	m.st.SetSearchTerm(m.search.Value())
	m.sync()

	return m, cmd
}

func (m TableModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.edit.Blur()
		m.mode = modeBrowse

		return m, nil

	case "enter", "tab":
		value, ok := ValidateEdit(m.st.Records(), m.editKey, m.edit.Value())
		if !ok {
			m.status = m.th.Error.Render("value not accepted")

			return m, nil
		}

		m.st.ChangeField(m.editID, m.editKey, value)
		m.edit.Blur()
		m.mode = modeBrowse

		if msg.String() == "tab" {
			visible := view.VisibleColumns(m.st.Columns())
			if m.cursorCol < len(visible)-1 {
				m.cursorCol++

				return m.updateBrowse(tea.KeyMsg{Type: tea.KeyEnter})
			}
		}

		return m, nil
	}

	var cmd tea.Cmd

	m.edit, cmd = m.edit.Update(msg)

	return m, cmd
}

func (m TableModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.st.DeleteRecord(m.confirmID)
		m.mode = modeBrowse
		m.sync()
		m.persist()
		m.status = m.th.Status.Render("Deleted " + m.confirmName)

	case "n", "esc":
		m.mode = modeBrowse
	}

	return m, nil
}

func (m TableModel) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "loading..."
	}

	switch m.mode {
	case modeColumns, modeAddColumn:
		return m.viewColumns()
	case modeConfirmDelete:
		return m.viewConfirm()
	default:
		return m.viewTable()
	}
}

func (m TableModel) viewTable() string {
	var b strings.Builder

	title := " Data Table Manager"
	if m.st.Dirty() {
		title += " *"
	}

	b.WriteString(m.th.Title.Render(title))
	b.WriteString("\n")

	b.WriteString(" " + m.search.View())
	b.WriteString("\n\n")

	res := m.derive()
	visible := view.VisibleColumns(m.st.Columns())
	rows := view.Rows(res.Records, visible, m.st)
	widths := columnWidths(visible, rows)

	// header
	ui := m.st.UI()
	for ci, c := range visible {
		label := c.Label
		if ui.Sort != nil && ui.Sort.Key == c.Key {
			if ui.Sort.Direction == model.Ascending {
				label += " ▲"
			} else {
				label += " ▼"
			}
		}

		cell := fmt.Sprintf(" %-*s ", widths[ci], truncate(label, widths[ci]))
		if ui.Sort != nil && ui.Sort.Key == c.Key {
			b.WriteString(m.th.SortHeader.Render(cell))
		} else {
			b.WriteString(m.th.Header.Render(cell))
		}

		if ci < len(visible)-1 {
			b.WriteString(m.th.Dim.Render("|"))
		}
	}

	b.WriteString("\n")

	// separator
	for ci := range visible {
		b.WriteString(m.th.Dim.Render(strings.Repeat("─", widths[ci]+2)))
		if ci < len(visible)-1 {
			b.WriteString(m.th.Dim.Render("┼"))
		}
	}

	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(m.th.Dim.Render(" (no matching rows)"))
		b.WriteString("\n")
	}

	for ri, row := range rows {
		for ci, cell := range row.Cells {
			display := cell.Text
			if m.mode == modeEdit && row.Record.ID == m.editID && ci == m.cursorCol {
				display = m.edit.Value() + "_"
			}

			text := fmt.Sprintf(" %-*s ", widths[ci], truncate(display, widths[ci]))

			switch {
			case ri == m.cursorRow && ci == m.cursorCol && m.mode != modeEdit:
				b.WriteString(m.th.Cursor.Render(text))
			case row.Editing:
				b.WriteString(m.th.EditingRow.Render(text))
			default:
				b.WriteString(text)
			}

			if ci < len(row.Cells)-1 {
				b.WriteString(m.th.Dim.Render("│"))
			}
		}

		b.WriteString("\n")
	}

	b.WriteString("\n")

	if res.Total > 0 {
		pages := (res.Total + res.PageSize - 1) / res.PageSize
		b.WriteString(m.th.Status.Render(fmt.Sprintf(" %s  (page %d/%d)", view.RangeText(res), res.Page, pages)))
	} else {
		b.WriteString(m.th.Dim.Render(" " + view.RangeText(res)))
	}

	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(" " + m.status)
		b.WriteString("\n")
	}

	help := " / search  s sort  [/] page  enter edit  ctrl+s save all  ctrl+r cancel all  d delete  c columns  x export  q quit"
	b.WriteString(m.th.Dim.Render(help))

	return b.String()
}

func (m TableModel) viewConfirm() string {
	msg := fmt.Sprintf("Delete record?\n\nAre you sure you want to delete %s?\nThis action is irreversible.\n\n[y] delete   [n] cancel", m.confirmName)

	return m.th.Modal.Render(msg)
}

// columnWidths sizes every visible column to its widest cell on the
// page, bounded to keep wide text from eating the terminal.
func columnWidths(visible []model.Column, rows []view.RowView) []int {
	widths := make([]int, len(visible))
	for i, c := range visible {
		widths[i] = len(c.Label) + 2 // room for the sort marker
		if widths[i] < 4 {
			widths[i] = 4
		}
	}

	for _, row := range rows {
		for i, cell := range row.Cells {
			if len(cell.Text) > widths[i] {
				widths[i] = len(cell.Text)
			}
		}
	}

	for i := range widths {
		if widths[i] > maxCellWidth {
			widths[i] = maxCellWidth
		}
	}

	return widths
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}

	if width <= 1 {
		return s[:width]
	}

	return s[:width-1] + "…"
}
