package controller

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
)

func TestNewUI_TTYMode(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	ui := NewUI(cmd, true)

	if _, ok := ui.(*TUI); !ok {
		t.Errorf("NewUI(true) returned %T, want *TUI", ui)
	}
}

func TestNewUI_NonTTYMode(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	ui := NewUI(cmd, false)

	if _, ok := ui.(*SimpleUI); !ok {
		t.Errorf("NewUI(false) returned %T, want *SimpleUI", ui)
	}
}

func TestNewUI_TUIWritesToCommandOutput(t *testing.T) {
	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	ui := NewUI(cmd, true)
	ui.DisplayPreview("rg --json -e x /proj")

	if !bytes.Contains(out.Bytes(), []byte("rg --json -e x /proj")) {
		t.Fatalf("preview not written to command output: %q", out.String())
	}
}

func TestIsTTY_WithRegularFile(t *testing.T) {
	file, err := os.CreateTemp("", "grepnav-tty")
	if err != nil {
		t.Fatalf("CreateTemp error: %v", err)
	}
	file.Close()
	defer os.Remove(file.Name())

	if IsTTY(file) {
		t.Fatalf("IsTTY(regular file) = true, want false")
	}
}

func TestIsTTY_WithNonTerminal(t *testing.T) {
	// Create a buffer which is not a terminal
	var buf bytes.Buffer

	// IsTTY should handle non-file outputs gracefully
	// This should not panic
	result := IsTTY(&buf)

	// A buffer is never a TTY
	if result {
		t.Error("IsTTY(buffer) = true, want false")
	}
}
