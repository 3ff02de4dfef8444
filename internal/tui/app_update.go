package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type minibufferClearMsg struct{ seq int }

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case minibufferClearMsg:
		if msg.seq == m.minibufferSeq {
			m.minibufferText = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeNormal:
			return m.updateNormal(msg)
		case modeInsert:
			return m.updateInsert(msg)
		case modeHelp:
			return m.updateHelp(msg)
		}
	}
	return m, nil
}

// updateNormal dispatches list navigation and mutation keys. Every mutation
// is followed by exactly one best-effort save (write-through).
func (m appModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "i":
		m.mode = modeInsert
		m.input.Reset()
		m.input.Focus()
		return m, textinput.Blink
	case "?":
		m.mode = modeHelp
		return m, nil
	case " ":
		if m.list.ToggleSelected() {
			return m, m.persist()
		}
		return m, nil
	case "d":
		if m.list.DeleteSelected() {
			return m, m.persist()
		}
		return m, nil
	case "up", "k":
		m.list.Previous()
		return m, nil
	case "down", "j":
		m.list.Next()
		return m, nil
	}
	return m, nil
}

// updateInsert feeds keys to the input line; enter submits, esc cancels.
// The input resets on every way out of insert mode.
func (m appModel) updateInsert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
		return m, nil
	case "enter":
		changed := m.list.Add(m.input.Value())
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
		if changed {
			return m, m.persist()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "?":
		m.mode = modeNormal
	}
	return m, nil
}

// persist saves the whole list. Failures never interrupt the session: the
// in-memory list stays the source of truth, the error goes to the session
// log and the minibuffer. No retry; the next mutation writes again.
func (m *appModel) persist() tea.Cmd {
	if err := m.store.Save(m.list.Items()); err != nil {
		m.logger.Error("save failed", "path", m.store.Path(), "err", err)
		return m.showMinibuffer("Save failed: " + err.Error())
	}
	return nil
}

func (m *appModel) showMinibuffer(text string) tea.Cmd {
	m.minibufferText = text
	m.minibufferSeq++
	seq := m.minibufferSeq
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return minibufferClearMsg{seq: seq}
	})
}
