package ui

import (
	"fmt"
	"strings"

	"github.com/todava/todomvc/internal/todo"
)

func (m Model) View() string {
	var lines []string

	// Header with live counts
	lines = append(lines, fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("todos"),
		successStyle.Render("✔"), m.store.TotalCompleted(),
		pendingStyle.Render("•"), m.store.TotalActive(),
		accentStyle.Render("Total"), m.store.Total(),
	))
	lines = append(lines, "")

	lines = append(lines, m.entryLines()...)
	lines = append(lines, "")
	lines = append(lines, m.footerLines()...)

	content := strings.Join(lines, "\n")
	if m.adding {
		bar := "Add new item\n" + m.input.View()
		content += "\n" + inputBarStyle.Render(bar)
	}
	return panelStyle.Render(content)
}

func (m Model) entryLines() []string {
	visible := m.store.Visible()
	if len(visible) == 0 {
		return []string{mutedStyle.Render("no items")}
	}
	out := make([]string, 0, len(visible))
	for i, e := range visible {
		box := mutedStyle.Render(boxUnchecked)
		text := e.Description
		if e.Completed {
			box = successStyle.Render(boxChecked)
			text = doneStyle.Render(text)
		}
		prefix := "  "
		if i == m.cursor && !m.adding {
			prefix = selectedStyle.Render("> ")
		}
		out = append(out, fmt.Sprintf("%s%s %s", prefix, box, text))
	}
	return out
}

func (m Model) footerLines() []string {
	var out []string

	left := m.store.TotalActive()
	noun := "items"
	if left == 1 {
		noun = "item"
	}
	footer := fmt.Sprintf("%d %s left   %s", left, noun, m.filterTabs())
	if done := m.store.TotalCompleted(); done > 0 {
		footer += "   " + mutedStyle.Render(fmt.Sprintf("Clear completed (%d)", done))
	}
	out = append(out, footer)

	if m.status != "" {
		out = append(out, errorStyle.Render("✖ "+m.status))
	}
	out = append(out, m.help.View(m.keys))
	return out
}

// filterTabs renders the All / Active / Completed selector with the
// active mode highlighted.
func (m Model) filterTabs() string {
	parts := make([]string, 0, 3)
	for _, f := range []todo.FilterMode{todo.All, todo.Active, todo.Completed} {
		label := f.String()
		if f == m.store.Filter() {
			label = filterStyle.Render(label)
		} else {
			label = mutedStyle.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}
