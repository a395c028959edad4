// Package testutil holds helpers shared by package tests.
package testutil

import (
	"log/slog"
	"strings"
	"testing"
)

// NewTestLogger returns a debug-level slog.Logger routed through t.Log,
// so log lines stay attached to the test that emitted them and only
// surface on failure or under -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(logSink{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type logSink struct {
	t testing.TB
}

func (s logSink) Write(p []byte) (int, error) {
	s.t.Helper()
	s.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
