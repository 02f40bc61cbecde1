// Package tui is the full-screen presentation layer. It owns no task
// state: every keystroke maps to a store operation and the view is
// rebuilt from the store afterwards.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"retrodo/internal/store"
	"retrodo/internal/task"
)

// noticeTTL is how long a validation notice stays visible before it
// auto-dismisses.
const noticeTTL = 2500 * time.Millisecond

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
)

// noticeExpiredMsg carries the generation of the notice it should clear,
// so a newer notice is not dismissed by an older timer.
type noticeExpiredMsg struct {
	gen int
}

// Model is the bubbletea model for the task list screen.
type Model struct {
	st *store.Store

	mode      mode
	input     textinput.Model // new task title
	editInput textinput.Model // edit buffer
	cursor    int

	notice    string
	noticeGen int

	width  int
	height int
}

// New creates the model over an already loaded store.
func New(st *store.Store) Model {
	input := textinput.New()
	input.Placeholder = "What needs to be done?"
	input.CharLimit = task.RawTitleLimit
	input.Width = 40

	edit := textinput.New()
	edit.CharLimit = task.RawTitleLimit
	edit.Width = 40

	return Model{st: st, input: input, editInput: edit}
}

// Run drives the program until the user quits.
func Run(ctx context.Context, st *store.Store) error {
	program := tea.NewProgram(New(st), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 6
		m.editInput.Width = msg.Width - 10
		return m, nil
	case noticeExpiredMsg:
		if msg.gen == m.noticeGen {
			m.notice = ""
		}
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeEdit:
			return m.updateEdit(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visible()

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "a", "n":
		m.mode = modeAdd
		m.input.SetValue("")
		m.input.Focus()
	case " ":
		if m.cursor < len(visible) {
			m.st.Toggle(visible[m.cursor].ID)
			m.clearNotice()
			m.clampCursor()
		}
	case "d", "x":
		if m.cursor < len(visible) {
			m.st.Delete(visible[m.cursor].ID)
			m.clearNotice()
			m.clampCursor()
		}
	case "enter", "e":
		if m.cursor < len(visible) {
			if m.st.StartEdit(visible[m.cursor].ID) {
				_, buf, _ := m.st.EditTarget()
				m.editInput.SetValue(buf)
				m.editInput.CursorEnd()
				m.editInput.Focus()
				m.mode = modeEdit
			}
		}
	case "c":
		m.st.ClearCompleted()
		m.clearNotice()
		m.clampCursor()
	case "tab":
		m.st.SetFilter(nextView(m.st.CurrentFilter()))
		m.clampCursor()
	case "1":
		m.st.SetFilter(task.ViewAll)
		m.clampCursor()
	case "2":
		m.st.SetFilter(task.ViewActive)
		m.clampCursor()
	case "3":
		m.st.SetFilter(task.ViewCompleted)
		m.clampCursor()
	}
	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	case "enter":
		created, err := m.st.Create(m.input.Value())
		if err != nil {
			return m.showNotice(err.Error())
		}
		m.input.SetValue("")
		m.clearNotice()
		// Stay in add mode so several tasks can be entered in a row.
		// The new task is invisible under the completed filter, so
		// place the cursor on it only when it shows up.
		m.cursor = 0
		for i, tk := range m.visible() {
			if tk.ID == created.ID {
				m.cursor = i
				break
			}
		}
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.st.CancelEdit()
		m.mode = modeBrowse
		m.editInput.Blur()
		return m, nil
	case "enter":
		if err := m.st.CommitEdit(m.editInput.Value()); err != nil {
			// Edit state is preserved; keep the input up for correction.
			return m.showNotice(err.Error())
		}
		m.mode = modeBrowse
		m.editInput.Blur()
		m.clearNotice()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

// showNotice displays a message and schedules its dismissal. Each notice
// bumps the generation so only the latest timer clears it.
func (m Model) showNotice(text string) (Model, tea.Cmd) {
	m.notice = text
	m.noticeGen++
	gen := m.noticeGen
	return m, tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{gen: gen}
	})
}

// clearNotice drops the notice immediately after a successful operation.
func (m *Model) clearNotice() {
	m.notice = ""
	m.noticeGen++
}

func (m Model) visible() []task.Task {
	return m.st.Filter(m.st.CurrentFilter())
}

func (m *Model) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func nextView(v task.View) task.View {
	switch v {
	case task.ViewAll:
		return task.ViewActive
	case task.ViewActive:
		return task.ViewCompleted
	}
	return task.ViewAll
}

func editingID(st *store.Store) string {
	id, _, ok := st.EditTarget()
	if !ok {
		return ""
	}
	return id
}

func fmtCounts(c task.Counts) string {
	return fmt.Sprintf("%d total · %d active · %d completed", c.Total, c.Active, c.Completed)
}
