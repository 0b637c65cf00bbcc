package adapter

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mouse-blink/grepnav/internal/logger"
	m "github.com/mouse-blink/grepnav/internal/model"
)

// EditorOpener opens a file at a line in an external editor. It is fire and
// forget: a nil error only means the editor process was started.
type EditorOpener interface {
	Open(ctx context.Context, file m.Path, line int, workspace m.Path) error
}

// CommandEditorOpener starts an editor command built from an argument
// template. Supported placeholders are {file}, {line} and {workspace};
// arguments that end up empty (e.g. {workspace} without a workspace) are
// dropped.
type CommandEditorOpener struct {
	command string
	args    []string
	log     logger.Logger
	start   func(cmd *exec.Cmd) error
}

// NewCommandEditorOpener constructs a CommandEditorOpener.
func NewCommandEditorOpener(command string, args []string, log logger.Logger) *CommandEditorOpener {
	return &CommandEditorOpener{
		command: command,
		args:    append([]string(nil), args...),
		log:     logger.OrNop(log),
		start:   startDetached(logger.OrNop(log)),
	}
}

// Open starts the editor. The process is reaped in the background; its exit
// status is only logged.
func (o *CommandEditorOpener) Open(ctx context.Context, file m.Path, line int, workspace m.Path) error {
	if file == "" {
		return fmt.Errorf("no file to open")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	args := o.Args(file, line, workspace)
	cmd := exec.Command(o.command, args...) // #nosec G204 - command comes from user config

	o.log.Debugf("opening editor: %s %s", o.command, strings.Join(args, " "))

	if err := o.start(cmd); err != nil {
		return fmt.Errorf("failed to start editor %s: %w", o.command, err)
	}

	return nil
}

// Args expands the argument template for one file/line pair.
func (o *CommandEditorOpener) Args(file m.Path, line int, workspace m.Path) []string {
	if line < 1 {
		line = 1
	}

	replacer := strings.NewReplacer(
		"{file}", string(file),
		"{line}", strconv.Itoa(line),
		"{workspace}", string(workspace),
	)

	out := make([]string, 0, len(o.args))

	for _, tmpl := range o.args {
		arg := replacer.Replace(tmpl)
		if strings.TrimSpace(arg) == "" {
			continue
		}

		out = append(out, arg)
	}

	return out
}

func startDetached(log logger.Logger) func(cmd *exec.Cmd) error {
	return func(cmd *exec.Cmd) error {
		if err := cmd.Start(); err != nil {
			return err
		}

		go func() {
			if err := cmd.Wait(); err != nil {
				log.Debugf("editor exited: %v", err)
			}
		}()

		return nil
	}
}
