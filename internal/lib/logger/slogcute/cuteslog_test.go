package slogcute

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestCuteHandler(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	opts := CuteHandlerOptions{SlogOptions: &slog.HandlerOptions{Level: slog.LevelInfo}}
	log := slog.New(opts.NewCuteHandler(&buf))

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.With(slog.String("op", "test")).
		WithGroup("req").
		Info("inspected", slog.String("url", "https://example.com"))

	out := buf.String()
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "inspected")
	assert.Contains(t, out, `"op": "test"`)
	assert.Contains(t, out, `"req.url": "https://example.com"`)
}

func TestCuteHandlerDefaultLevel(t *testing.T) {
	h := CuteHandlerOptions{}.NewCuteHandler(&bytes.Buffer{})

	assert.False(t, h.Enabled(t.Context(), slog.LevelDebug))
	assert.True(t, h.Enabled(t.Context(), slog.LevelWarn))
}
