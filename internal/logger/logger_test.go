package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedLogger(buf *bytes.Buffer, level string) *ConsoleLogger {
	l := NewConsoleLogger(buf, level)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	return l
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		level        string
		log          func(l *ConsoleLogger)
		shouldAppear bool
	}{
		{name: "trace sees trace", level: "trace", log: func(l *ConsoleLogger) { l.Tracef("msg") }, shouldAppear: true},
		{name: "debug blocks trace", level: "debug", log: func(l *ConsoleLogger) { l.Tracef("msg") }, shouldAppear: false},
		{name: "info blocks debug", level: "info", log: func(l *ConsoleLogger) { l.Debugf("msg") }, shouldAppear: false},
		{name: "info sees info", level: "info", log: func(l *ConsoleLogger) { l.Infof("msg") }, shouldAppear: true},
		{name: "warn blocks info", level: "warn", log: func(l *ConsoleLogger) { l.Infof("msg") }, shouldAppear: false},
		{name: "warn sees warn", level: "warn", log: func(l *ConsoleLogger) { l.Warnf("msg") }, shouldAppear: true},
		{name: "error blocks warn", level: "error", log: func(l *ConsoleLogger) { l.Warnf("msg") }, shouldAppear: false},
		{name: "error sees error", level: "error", log: func(l *ConsoleLogger) { l.Errorf("msg") }, shouldAppear: true},
		{name: "invalid level defaults to info", level: "loud", log: func(l *ConsoleLogger) { l.Debugf("msg") }, shouldAppear: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.log(fixedLogger(buf, tt.level))

			assert.Equal(t, tt.shouldAppear, strings.Contains(buf.String(), "msg"))
		})
	}
}

func TestConsoleLogger_Format(t *testing.T) {
	buf := &bytes.Buffer{}
	fixedLogger(buf, "debug").Debugf("loaded %d entries from %s", 3, "/proj")

	assert.Equal(t, "[03:04:05] [DEBUG] loaded 3 entries from /proj\n", buf.String())
}

func TestConsoleLogger_NilWriter(t *testing.T) {
	l := NewConsoleLogger(nil, "trace")

	assert.NotPanics(t, func() { l.Errorf("dropped") })
}

func TestNormalizeLevel(t *testing.T) {
	assert.Equal(t, "debug", NormalizeLevel(" DEBUG "))
	assert.Equal(t, "info", NormalizeLevel(""))
	assert.Equal(t, "info", NormalizeLevel("verbose"))
	assert.True(t, ValidLevel("Warn"))
	assert.False(t, ValidLevel("verbose"))
	assert.False(t, ValidLevel(""))
}

func TestOpen_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "grepnav.log")

	l, closer, err := Open(path, "info", nil)
	require.NoError(t, err)

	l.Infof("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] hello")
}

func TestOpen_FallbackWriter(t *testing.T) {
	buf := &bytes.Buffer{}

	l, closer, err := Open("", "info", buf)
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	l.Warnf("careful")
	assert.Contains(t, buf.String(), "[WARN] careful")
	assert.False(t, l.colorOutput)
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))

	buf := &bytes.Buffer{}
	l := NewConsoleLogger(buf, "info")
	assert.Same(t, l, OrNop(l))
}
