package logger

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanTextHandler(t *testing.T) {
	var b strings.Builder
	h := NewHumanTextHandler(&b, nil, false)
	require.NotNil(t, h)
	assert.False(t, h.colorized, "a plain writer never colorizes")

	log := slog.New(h)
	log.Info("hello", slog.String("k", "v"))
	assert.Equal(t, "INFO hello k=v\n", b.String())
}

func TestHumanTextHandler_groups(t *testing.T) {
	var b strings.Builder
	log := slog.New(NewHumanTextHandler(&b, nil, false))

	log.With(slog.String("rid", "42")).Error("boom",
		slog.GroupAttrs("request",
			slog.String("method", "POST"),
			slog.String("uri", "/_actions/set-theme")))

	assert.Equal(t,
		"ERROR boom rid=42 request.method=POST request.uri=/_actions/set-theme\n",
		b.String())
}

func TestHumanTextHandler_level(t *testing.T) {
	var b strings.Builder
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	log := slog.New(NewHumanTextHandler(&b, opts, false))

	log.Info("dropped")
	assert.Empty(t, b.String())

	log.Warn("kept")
	assert.Equal(t, "WARN kept\n", b.String())
}
