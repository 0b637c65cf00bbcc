package controller

import (
	"github.com/mouse-blink/grepnav/internal/domain"
	"github.com/mouse-blink/grepnav/internal/model"
)

// Search state notifications, forwarded from the searcher.
type searchBlockedMsg struct {
	err error
}

type searchStartedMsg struct {
	runID string
	req   model.SearchRequest
}

type searchFinishedMsg struct {
	outcome domain.SearchOutcome
}

// treeChangedMsg reports a finished root load or expand/collapse.
type treeChangedMsg struct {
	path model.Path
	err  error
}

type rootChosenMsg struct {
	root model.Path
	err  error
}

type revealedMsg struct {
	result domain.RevealResult
}

type matchOpenedMsg struct {
	result domain.RevealResult
	match  model.Match
	err    error
}
