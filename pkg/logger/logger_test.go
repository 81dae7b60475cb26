package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "service.log")

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("hearing id=%d approved", 42)
	log.Debug("filtered out")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hearing id=42 approved")
	assert.NotContains(t, string(data), "filtered out")
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "loud")
	assert.Error(t, err)
}

func TestLogger_FormatsMessages(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewFromZap(zap.New(core))

	log.Warn("room=%d occupied", 7)
	log.With("request_id", "abc").Error("boom: %v", "db down")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "room=7 occupied", entries[0].Message)
	assert.Equal(t, "boom: db down", entries[1].Message)
	assert.Equal(t, "abc", entries[1].ContextMap()["request_id"])
}
