package domain

import "errors"

var (
	// ErrEmptyQuery is returned when a search is requested with a blank query.
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrNoRoot is returned when a search is requested before a root is chosen.
	ErrNoRoot = errors.New("no root directory selected")

	// ErrSearchInProgress is returned when a search is requested while
	// another one is still running.
	ErrSearchInProgress = errors.New("a search is already running")

	// ErrUnknownNode is returned for operations on a path that has not been
	// materialized in the tree.
	ErrUnknownNode = errors.New("node not found in tree")
)
