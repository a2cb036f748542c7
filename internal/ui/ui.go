package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"haru/internal/config"
	"haru/internal/theme"
	"haru/internal/todo"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

type styles struct {
	title       lipgloss.Style
	tabActive   lipgloss.Style
	tabInactive lipgloss.Style
	cursor      lipgloss.Style
	done        lipgloss.Style
	counts      lipgloss.Style
	help        lipgloss.Style
}

func newStyles(mode theme.Mode) styles {
	if mode == theme.Dark {
		return styles{
			title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")),
			tabActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			tabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			done:        lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("242")),
			counts:      lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
			help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		}
	}
	return styles{
		title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
		tabActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("162")),
		tabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("162")),
		done:        lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("248")),
		counts:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		help:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

type Model struct {
	todos   *todo.Store
	filters *todo.FilterStore
	themes  *theme.Store
	cfg     config.Config

	visible    []todo.Item
	cursor     int
	mode       mode
	input      textinput.Model
	status     string
	confirmDel bool
	pendingDel *todo.Item
	editID     string
	styles     styles
}

func Run(todos *todo.Store, filters *todo.FilterStore, themes *theme.Store, cfg config.Config) error {
	if f, err := todo.ParseFilter(strings.ToLower(cfg.DefaultFilter)); err == nil {
		_ = filters.Set(f)
	}

	ti := textinput.New()
	ti.Placeholder = "Todo text"
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		todos:   todos,
		filters: filters,
		themes:  themes,
		cfg:     cfg,
		input:   ti,
		mode:    modeList,
		status:  "Press 'a' to add, space to toggle, 'd' to delete.",
		styles:  newStyles(themes.Current()),
	}
	m.refresh()

	program := tea.NewProgram(m)
	_, err := program.Run()
	return err
}

func (m *Model) refresh() {
	m.visible = todo.Visible(m.todos.Items(), m.filters.Current())
	m.cursor = clampCursor(m.cursor, len(m.visible))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch m.mode {
	case modeAdd:
		return m.updateAddMode(key, msg)
	case modeEdit:
		return m.updateEditMode(key, msg)
	}
	return m.updateListMode(key)
}

func (m Model) updateAddMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.Confirm:
		if _, ok := m.todos.Add(m.input.Value()); ok {
			m.status = "Added todo"
			m.refresh()
			m.cursor = clampCursor(len(m.visible)-1, len(m.visible))
		} else {
			m.status = "Text cannot be empty"
			return m, nil
		}
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateEditMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		m.mode = modeList
		m.editID = ""
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Edit cancelled"
		return m, nil
	case m.cfg.Keys.Confirm:
		if m.todos.Edit(m.editID, m.input.Value()) {
			m.status = "Saved"
		} else {
			m.status = "Edit discarded"
		}
		m.refresh()
		m.editID = ""
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		if len(m.visible) == 0 {
			return m, nil
		}
		m.cursor = clampCursor(m.cursor+1, len(m.visible))
	case m.cfg.Keys.Up, "up":
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(m.visible))
		}
	case m.cfg.Keys.Add:
		m.mode = modeAdd
		m.input.Placeholder = "Todo text"
		m.input.Focus()
		m.status = "Add mode: type the text and press Enter"
	case m.cfg.Keys.Toggle:
		if len(m.visible) == 0 {
			return m, nil
		}
		m.todos.Toggle(m.visible[m.cursor].ID)
		m.refresh()
		m.cursor = clampCursor(m.cursor+1, len(m.visible))
		m.status = "Toggled"
	case m.cfg.Keys.Edit:
		if len(m.visible) == 0 {
			m.status = "Nothing to edit"
			return m, nil
		}
		item := m.visible[m.cursor]
		m.editID = item.ID
		m.mode = modeEdit
		m.input.Placeholder = "New text"
		m.input.SetValue(item.Text)
		m.input.Focus()
		m.status = "Edit mode: change the text and press Enter"
	case m.cfg.Keys.Delete:
		if len(m.visible) == 0 {
			return m, nil
		}
		item := m.visible[m.cursor]
		m.confirmDel = true
		m.pendingDel = &item
		m.status = fmt.Sprintf("Delete \"%s\"? y/n", item.Text)
	case m.cfg.Keys.CycleFilter:
		_ = m.filters.Set(nextFilter(m.filters.Current()))
		m.refresh()
		m.status = "Filter: " + string(m.filters.Current())
	case m.cfg.Keys.ClearDone:
		removed := m.todos.ClearCompleted()
		m.refresh()
		m.status = fmt.Sprintf("Cleared %d completed", removed)
	case m.cfg.Keys.Theme:
		m.styles = newStyles(m.themes.Toggle())
		m.status = "Theme: " + string(m.themes.Current())
	}
	return m, nil
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N":
		m.status = "Delete cancelled"
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	case "y", "Y":
		if m.pendingDel == nil {
			m.status = "Nothing to delete"
			m.confirmDel = false
			return m, nil
		}
		m.todos.Remove(m.pendingDel.ID)
		m.refresh()
		m.status = "Deleted"
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("haru"))
	b.WriteString("  ")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(m.emptyMessage())
	} else {
		b.WriteString(m.renderList())
	}

	if m.mode == modeAdd || m.mode == modeEdit {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	counts := todo.CountItems(m.todos.Items())
	b.WriteString("\n")
	b.WriteString(m.styles.counts.Render(fmt.Sprintf("%d active, %d completed", counts.Active, counts.Completed)))
	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(renderHelp(m.cfg.Keys)))

	return b.String()
}

func (m Model) emptyMessage() string {
	switch m.filters.Current() {
	case todo.FilterActive:
		return "No active todos."
	case todo.FilterCompleted:
		return "No completed todos."
	}
	return "No todos yet. Press 'a' to add one."
}

func (m Model) renderTabs() string {
	parts := make([]string, 0, 3)
	for _, f := range []todo.Filter{todo.FilterAll, todo.FilterActive, todo.FilterCompleted} {
		label := string(f)
		if f == m.filters.Current() {
			parts = append(parts, m.styles.tabActive.Render("["+label+"]"))
		} else {
			parts = append(parts, m.styles.tabInactive.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderList() string {
	var b strings.Builder
	for i, item := range m.visible {
		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = m.styles.cursor.Render(">")
		}

		checkbox := "[ ]"
		text := item.Text
		if item.Completed {
			checkbox = "[x]"
			text = m.styles.done.Render(text)
		}

		b.WriteString(fmt.Sprintf("%s %s %s", cursor, checkbox, text))
		b.WriteString("\n")
	}
	return b.String()
}

func renderHelp(k config.Keymap) string {
	toggle := k.Toggle
	if toggle == " " {
		toggle = "space"
	}
	return fmt.Sprintf("%s/%s move • %s add • %s toggle • %s edit • %s delete • %s filter • %s clear done • %s theme • %s quit",
		k.Up, k.Down, k.Add, toggle, k.Edit, k.Delete, k.CycleFilter, k.ClearDone, k.Theme, k.Quit)
}

func nextFilter(f todo.Filter) todo.Filter {
	switch f {
	case todo.FilterAll:
		return todo.FilterActive
	case todo.FilterActive:
		return todo.FilterCompleted
	default:
		return todo.FilterAll
	}
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
