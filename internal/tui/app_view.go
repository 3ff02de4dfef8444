package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m appModel) View() string {
	width := m.width
	if width <= 0 {
		// Before the first WindowSizeMsg; render for a conventional width.
		width = 80
	}

	var b strings.Builder
	b.WriteString(m.viewHeader(width))
	b.WriteString("\n\n")

	if m.mode == modeHelp {
		b.WriteString(renderHelp(width))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.viewList(width))
	b.WriteString("\n")

	if m.mode == modeInsert {
		b.WriteString(m.viewInput(width))
		b.WriteString("\n")
	}

	b.WriteString(m.viewStatusBar(width))
	if m.minibufferText != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(colorErrorFg).Render(
			ansi.Truncate(m.minibufferText, width, "…")))
	}
	return b.String()
}

func (m appModel) viewHeader(width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).
		Render(fmt.Sprintf("Todos (%d)", m.list.TotalCount()))
	return ansi.Truncate(title, width, "…")
}

func (m appModel) viewList(width int) string {
	items := m.list.Items()
	if len(items) == 0 {
		return styleMuted().Render("No todos yet. Press i to add one.") + "\n"
	}

	selected, hasSelection := m.list.Selected()

	var b strings.Builder
	for i, it := range items {
		box := "[ ]"
		if it.Completed {
			box = "[✓]"
		}
		line := ansi.Truncate(fmt.Sprintf("%s %s", box, it.Text), width-2, "…")

		switch {
		case hasSelection && i == selected:
			b.WriteString(styleSelected().Render("> " + line))
		case it.Completed:
			b.WriteString("  " + styleDone().Render(line))
		default:
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m appModel) viewInput(width int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorInputBorder).
		Padding(0, 1).
		Width(minInt(width-2, 60))
	label := styleMuted().Render("New todo")
	return label + "\n" + box.Render(m.input.View())
}

func (m appModel) viewStatusBar(width int) string {
	counts := fmt.Sprintf("%d/%d done", m.list.CompletedCount(), m.list.TotalCount())

	var hints string
	switch m.mode {
	case modeInsert:
		hints = "enter add · esc cancel"
	default:
		hints = "j/k move · space toggle · d delete · i new · ? help · q quit"
	}

	bar := counts + "  ·  " + hints
	return styleMuted().Render(ansi.Truncate(bar, width, "…"))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
