package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/grepnav/internal/adapter"
	"github.com/mouse-blink/grepnav/internal/config"
	"github.com/mouse-blink/grepnav/internal/controller"
	"github.com/mouse-blink/grepnav/internal/domain"
	"github.com/mouse-blink/grepnav/internal/logger"
)

// Collaborator factories, replaced in tests.
var (
	isTTY       = controller.IsTTY
	newUI       = controller.NewUI
	newExecutor = func(cfg *config.Config, log logger.Logger) adapter.SearchExecutor {
		return adapter.NewRipgrepExecutor(cfg.RipgrepPath, log)
	}
	newEditor = func(cfg *config.Config, log logger.Logger) adapter.EditorOpener {
		return adapter.NewCommandEditorOpener(cfg.Editor.Command, cfg.Editor.Args, log)
	}
)

// skippedDirs are never shown in the tree.
var skippedDirs = []string{".git", ".hg", ".svn"}

// environment is everything a command needs for one run.
type environment struct {
	cfg     *config.Config
	log     logger.Logger
	closer  io.Closer
	session *domain.Session
}

// loadEnvironment reads the config, opens the logger and builds a session.
// The interactive UI owns the terminal, so its logs only go to a file.
func loadEnvironment(cmd *cobra.Command, interactive bool) (*environment, error) {
	if err := validateLogLevel(logLevelFlag); err != nil {
		return nil, err
	}

	path := configFlag
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}

	if logFileFlag != "" {
		cfg.LogFile = logFileFlag
	}

	var fallback io.Writer
	if !interactive {
		fallback = cmd.ErrOrStderr()
	}

	log, closer, err := logger.Open(cfg.LogFile, cfg.LogLevel, fallback)
	if err != nil {
		return nil, err
	}

	session := domain.NewSession(
		adapter.NewLocalDirectoryLister(skippedDirs...),
		newExecutor(cfg, log),
		newEditor(cfg, log),
		log,
	)

	log.Debugf("config loaded from %s", path)

	return &environment{cfg: cfg, log: log, closer: closer, session: session}, nil
}

func (e *environment) searchDefaults() domain.SearchOptions {
	return domain.SearchOptions{
		Extensions:    e.cfg.Extensions,
		CaseSensitive: e.cfg.CaseSensitive,
		ExtraArgs:     e.cfg.ExtraArgs,
	}
}

func (e *environment) Close() {
	if err := e.closer.Close(); err != nil {
		e.log.Warnf("failed to close log file: %v", err)
	}
}
