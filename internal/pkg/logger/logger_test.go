package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Run("defaults to info when level is empty", func(t *testing.T) {
		l, err := New(Config{})
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := New(Config{Level: "loud"})
		assert.Error(t, err)
	})

	t.Run("accepts console format", func(t *testing.T) {
		l, err := New(Config{Level: "debug", Format: "console"})
		require.NoError(t, err)
		assert.NotNil(t, l)
	})
}

func TestZapLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core)).With("user_id", "u-1")

	l.Info("polled")
	l.Error("write failed", errors.New("disk full"))
	l.Error("no cause", nil)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "polled", entries[0].Message)
	assert.Equal(t, "u-1", entries[0].ContextMap()["user_id"])
	assert.Equal(t, "disk full", entries[1].ContextMap()["error"])
	_, hasErr := entries[2].ContextMap()["error"]
	assert.False(t, hasErr)
}
