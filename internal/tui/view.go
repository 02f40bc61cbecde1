package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"retrodo/internal/task"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	doneStyle      = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	noticeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	footerStyle    = lipgloss.NewStyle().Faint(true)
	inputStyle     = lipgloss.NewStyle().Padding(0, 1)
)

var views = []task.View{task.ViewAll, task.ViewActive, task.ViewCompleted}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("retrodo"))
	b.WriteString("\n\n")

	switch m.mode {
	case modeAdd:
		b.WriteString(inputStyle.Render(m.input.View()))
		b.WriteString("\n\n")
	case modeEdit:
		b.WriteString(inputStyle.Render("edit: " + m.editInput.View()))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(m.renderTasks())
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(fmtCounts(m.st.Counts())))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.helpLine()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderTabs() string {
	var tabs []string
	current := m.st.CurrentFilter()
	for _, v := range views {
		if v == current {
			tabs = append(tabs, activeTabStyle.Render(string(v)))
		} else {
			tabs = append(tabs, tabStyle.Render(string(v)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderTasks() string {
	visible := m.visible()
	if len(visible) == 0 {
		return footerStyle.Render("  nothing here")
	}

	editID := editingID(m.st)

	var b strings.Builder
	for i, t := range visible {
		prefix := "  "
		if i == m.cursor && m.mode != modeAdd {
			prefix = cursorStyle.Render("> ")
		}

		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}

		title := t.Title
		if t.Completed {
			title = doneStyle.Render(title)
		}
		if t.ID == editID && m.mode == modeEdit {
			title = cursorStyle.Render(title + " (editing)")
		}

		b.WriteString(prefix + mark + " " + title + "\n")
	}
	return b.String()
}

func (m Model) helpLine() string {
	switch m.mode {
	case modeAdd:
		return "enter add · esc back"
	case modeEdit:
		return "enter save · esc cancel"
	}
	return "a add · enter edit · space toggle · d delete · c clear done · tab filter · q quit"
}
