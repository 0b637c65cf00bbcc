// Package controller provides the user interfaces of grepnav: an interactive
// Bubble Tea UI and a plain text UI for pipes and scripts.
package controller

import (
	"context"

	"github.com/mouse-blink/grepnav/internal/domain"
	m "github.com/mouse-blink/grepnav/internal/model"
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	ctx      context.Context
	session  *domain.Session
	defaults domain.SearchOptions
	query    string
}

// WithContext sets the context passed to collaborator calls.
func WithContext(ctx context.Context) StartOption {
	return func(c *StartConfig) {
		c.ctx = ctx
	}
}

// WithSession sets the session the UI drives.
func WithSession(session *domain.Session) StartOption {
	return func(c *StartConfig) {
		c.session = session
	}
}

// WithSearchDefaults sets the initial extension filter, case sensitivity and
// extra arguments.
func WithSearchDefaults(opts domain.SearchOptions) StartOption {
	return func(c *StartConfig) {
		c.defaults = opts
	}
}

// WithQuery pre-fills the query; the interactive UI searches it right away.
func WithQuery(query string) StartOption {
	return func(c *StartConfig) {
		c.query = query
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{ctx: context.Background()}
	for _, opt := range options {
		opt(&cfg)
	}

	if cfg.ctx == nil {
		cfg.ctx = context.Background()
	}

	return cfg
}

// UI displays search progress, results and trees.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	domain.SearchListener

	// Start runs the UI. The interactive UI blocks until the user quits.
	Start(options ...StartOption) error
	Close()
	DisplayTree(root m.Path, nodes []m.TreeNode) error
	DisplayPreview(preview string)
}
