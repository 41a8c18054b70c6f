package prettylog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	prettylog "xyzvec.dev/pkg/pretty-log"
)

func TestHandlerOutput(t *testing.T) {
	out := &bytes.Buffer{}
	logger := slog.New(prettylog.New(out, slog.LevelInfo, false))

	logger.Info("hello", "area", "test", "count", 3)

	line := out.String()
	require.Contains(t, line, "INFO:")
	require.Contains(t, line, "hello")
	require.Contains(t, line, `"area":"test"`)
	require.Contains(t, line, `"count":3`)
}

func TestHandlerLevelFilter(t *testing.T) {
	out := &bytes.Buffer{}
	logger := slog.New(prettylog.New(out, slog.LevelWarn, false))

	logger.Info("dropped")
	require.Empty(t, out.String())

	logger.Warn("kept")
	require.Contains(t, out.String(), "kept")
}

func TestHandlerWith(t *testing.T) {
	out := &bytes.Buffer{}
	logger := slog.New(prettylog.New(out, slog.LevelInfo, false)).With("area", "vec")

	logger.Info("scoped")
	require.Contains(t, out.String(), `"area":"vec"`)
}
