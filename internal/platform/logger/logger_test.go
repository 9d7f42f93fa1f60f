package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tprep/tprep-api/internal/config"
)

func TestSetupReturnsConfiguredLogger(t *testing.T) {
	// Setup mutates the process default logger, so no t.Parallel here.
	for _, level := range []string{"debug", "info", "warn", "error"} {
		log := Setup(config.ServerConfig{Port: 8080, LogLevel: level})
		require.NotNil(t, log, "level %s", level)
	}
}

func TestSetupFallsBackToInfoOnInvalidLevel(t *testing.T) {
	log := Setup(config.ServerConfig{Port: 8080, LogLevel: "shouty"})
	require.NotNil(t, log)

	// Info-level records must pass, debug must not
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestWithLoggerAndFromContext(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithLogger(context.Background(), log)

	assert.Same(t, log, FromContext(ctx))

	// A context without a logger falls back to the default
	assert.NotNil(t, FromContext(context.Background()))

	// A nil logger leaves the context untouched
	assert.Equal(t, context.Background(), WithLogger(context.Background(), nil))
}

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()

	ctxLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := WithLogger(context.Background(), ctxLogger)
	assert.Same(t, ctxLogger, FromContextOrDefault(ctx, fallback))

	// Without a context logger the fallback wins
	assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))

	// With neither, the process default is returned
	assert.NotNil(t, FromContextOrDefault(context.Background(), nil))
}
