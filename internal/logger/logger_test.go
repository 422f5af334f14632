package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func initBuffer(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Init(cfg, &buf)
	t.Cleanup(func() { Init(NewConfig(), nil) })
	return &buf
}

func TestLevels(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "warn"})

	Infof("hidden %d", 1)
	Warnf("shown %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "logger_test.go")
}

func TestTagFiltering(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "debug", DisabledTags: []string{"Classify"}})

	WithTag("classify").Debugf("dropped")
	WithTag("render").Debugf("kept")
	Debugf("untagged")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
	assert.Contains(t, out, "tag=render")
	assert.Contains(t, out, "untagged")
}

func TestEnabledTagsDropUntagged(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "debug", EnabledTags: []string{"render"}})

	Debugf("untagged")
	WithTag("render").Infof("tagged")

	out := buf.String()
	assert.NotContains(t, out, "untagged")
	assert.Contains(t, out, "tagged")
}

func TestPackageFiltering(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "debug", DisabledPackages: []string{"logger"}})
	Errorf("from this package")
	assert.Empty(t, buf.String())

	buf = initBuffer(t, Config{LogLevel: "debug", EnabledFiles: []string{"logger_test.go"}})
	Errorf("from this file")
	assert.Contains(t, buf.String(), "from this file")
}

func TestDebugFilterTrace(t *testing.T) {
	var trace bytes.Buffer
	old := filterTrace
	filterTrace = &trace
	t.Cleanup(func() { filterTrace = old })

	initBuffer(t, Config{LogLevel: "debug", DebugFilter: true, DisabledTags: []string{"x"}})
	WithTag("x").Debugf("gone")

	assert.True(t, strings.Contains(trace.String(), "FILTERED OUT: tag 'x'"))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{" INFO ", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{"err", slog.LevelError, true},
		{"loud", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(" "))
	assert.Equal(t, []string{"a", "b"}, SplitList("a, ,b"))
}

func TestOpenOutputStderr(t *testing.T) {
	w, err := OpenOutput("-")
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
}
