package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"inkwell/backend/internal/logger"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		" warn ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equal(t, want, logger.ParseLevel(in), in)
	}
}

func TestInitWithWriter_LowercaseLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger.InitWithWriter(&buf, slog.LevelInfo, logger.FormatText)

	logger.Debug("hidden")
	logger.Warn("shown", "module", "test")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "level=warn")
	require.Contains(t, out, "module=test")
}

func TestInitWithWriter_JSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger.InitWithWriter(&buf, slog.LevelDebug, "JSON")
	logger.Error("workflow failed", "module", "scheduler", "post_id", int64(7))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "error", line["level"])
	require.Equal(t, "workflow failed", line["msg"])
	require.Equal(t, "scheduler", line["module"])
	require.EqualValues(t, 7, line["post_id"])
}
