package adapter

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	m "github.com/mouse-blink/grepnav/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandEditorOpener_Args(t *testing.T) {
	opener := NewCommandEditorOpener("code", []string{"{workspace}", "-g", "{file}:{line}"}, nil)

	t.Run("with workspace", func(t *testing.T) {
		args := opener.Args("/proj/a.go", 12, "/proj")
		assert.Equal(t, []string{"/proj", "-g", "/proj/a.go:12"}, args)
	})

	t.Run("without workspace drops the empty argument", func(t *testing.T) {
		args := opener.Args("/proj/a.go", 12, "")
		assert.Equal(t, []string{"-g", "/proj/a.go:12"}, args)
	})

	t.Run("line below one is clamped", func(t *testing.T) {
		args := opener.Args("/proj/a.go", 0, "")
		assert.Equal(t, []string{"-g", "/proj/a.go:1"}, args)
	})

	t.Run("other editors", func(t *testing.T) {
		vim := NewCommandEditorOpener("nvim", []string{"+{line}", "{file}"}, nil)
		assert.Equal(t, []string{"+7", "/x.txt"}, vim.Args("/x.txt", 7, "/"))
	})
}

func TestCommandEditorOpener_Open(t *testing.T) {
	t.Run("starts the command", func(t *testing.T) {
		opener := NewCommandEditorOpener("code", []string{"-g", "{file}:{line}"}, nil)

		var started *exec.Cmd
		opener.start = func(cmd *exec.Cmd) error {
			started = cmd
			return nil
		}

		require.NoError(t, opener.Open(context.Background(), m.Path("/proj/a.go"), 4, ""))
		require.NotNil(t, started)
		assert.Equal(t, []string{"-g", "/proj/a.go:4"}, started.Args[1:])
	})

	t.Run("start failure is reported", func(t *testing.T) {
		opener := NewCommandEditorOpener("code", nil, nil)
		opener.start = func(*exec.Cmd) error { return errors.New("not found") }

		err := opener.Open(context.Background(), m.Path("/proj/a.go"), 1, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start editor code")
	})

	t.Run("empty file", func(t *testing.T) {
		opener := NewCommandEditorOpener("code", nil, nil)

		require.Error(t, opener.Open(context.Background(), "", 1, ""))
	})

	t.Run("cancelled context", func(t *testing.T) {
		opener := NewCommandEditorOpener("code", nil, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.ErrorIs(t, opener.Open(ctx, "/proj/a.go", 1, ""), context.Canceled)
	})
}
