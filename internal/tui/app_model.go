package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"

	"tick-cli/internal/model"
	"tick-cli/internal/store"
)

// mode selects how key presses are interpreted. Exactly one is active.
type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeHelp
)

type appModel struct {
	store  store.Store
	logger *log.Logger

	list  model.List
	input textinput.Model
	mode  mode

	width  int
	height int

	// minibufferSeq guards against a stale clear tick wiping a newer notice.
	minibufferText string
	minibufferSeq  int
}

func newAppModel(s store.Store, items []model.TodoItem, logger *log.Logger) appModel {
	if logger == nil {
		logger = log.Default()
	}

	in := textinput.New()
	in.Placeholder = "What needs doing?"
	in.CharLimit = 200
	in.Prompt = "> "

	return appModel{
		store:  s,
		logger: logger,
		list:   model.NewList(items),
		input:  in,
		mode:   modeNormal,
	}
}
