package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewZapLogger(t *testing.T) {
	log, err := NewZapLogger("debug")
	require.NoError(t, err)
	require.NotNil(t, log)

	// must not panic with or without key-value args
	ctx := context.Background()
	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message", "key", "value")
	log.Warn(ctx, "warn message", "count", 3)
	log.Error(ctx, "error message", "error", "boom")

	child := log.With("component", "test")
	require.NotNil(t, child)
	child.Info(ctx, "child message")
}

func TestNewZapLogger_BadLevel(t *testing.T) {
	_, err := NewZapLogger("loud")
	require.Error(t, err)
}
