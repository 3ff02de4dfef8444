package tui

import "github.com/charmbracelet/lipgloss"

const helpMarkdown = `# Keys

## Normal

| Key | Action |
|-----|--------|
| ` + "`j` / `↓`" + ` | next item |
| ` + "`k` / `↑`" + ` | previous item |
| ` + "`space`" + ` | toggle done |
| ` + "`d`" + ` | delete item |
| ` + "`i`" + ` | add a new item |
| ` + "`?`" + ` | this help |
| ` + "`q`" + ` | quit |

## Insert

| Key | Action |
|-----|--------|
| ` + "`enter`" + ` | add the item |
| ` + "`esc`" + ` | cancel |

Todos are saved after every change.
`

// renderHelp renders the help overlay body for the given terminal width.
func renderHelp(width int) string {
	inner := width - 8
	if inner > 60 {
		inner = 60
	}
	body := renderMarkdown(helpMarkdown, inner)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 2)
	footer := styleMuted().Render("esc/? to close")
	return box.Render(body + "\n\n" + footer)
}
