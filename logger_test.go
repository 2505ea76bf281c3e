package segview

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_LogBuild(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.LogBuild(3, nil)
	assert.Contains(t, buf.String(), `"msg":"view constructed"`)
	assert.Contains(t, buf.String(), `"segments":3`)

	buf.Reset()
	logger.LogBuild(2, errors.New("rejected"))
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"segments":2`)
	assert.Contains(t, buf.String(), `"error":"rejected"`)
}

func TestLogger_WithSegments(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, nil)).WithSegments(7)

	logger.Info("slice")
	assert.Contains(t, buf.String(), "segments=7")
}

func TestLogger_Levels(t *testing.T) {
	ctx := context.Background()

	json := NewJSONLogger(slog.LevelDebug)
	assert.True(t, json.Enabled(ctx, slog.LevelDebug))

	text := NewTextLogger(slog.LevelWarn)
	assert.False(t, text.Enabled(ctx, slog.LevelInfo))
	assert.True(t, text.Enabled(ctx, slog.LevelWarn))

	assert.False(t, NoopLogger().Enabled(ctx, slog.LevelError))
	assert.True(t, NewLogger(nil).Enabled(ctx, slog.LevelInfo))
}
