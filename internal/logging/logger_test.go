package logging

import (
	"bytes"
	"testing"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/config"
)

func TestDebugEnabled(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"yes", true},
		{"false", false},
		{"0", false},
	}

	for _, tt := range tests {
		t.Setenv("TODO_DEBUG", tt.value)
		if got := DebugEnabled(); got != tt.expected {
			t.Errorf("DebugEnabled() with TODO_DEBUG=%q = %v, want %v", tt.value, got, tt.expected)
		}
	}
}

func TestNew_Level(t *testing.T) {
	t.Setenv("TODO_DEBUG", "")

	logger := NewWithWriter(config.LoggingConfig{Level: "warn", Format: "text"}, &bytes.Buffer{})
	assert.Equal(t, log.WarnLevel, logger.GetLevel())

	logger = NewWithWriter(config.LoggingConfig{Level: "nonsense", Format: "text"}, &bytes.Buffer{})
	assert.Equal(t, log.InfoLevel, logger.GetLevel())

	t.Setenv("TODO_DEBUG", "1")
	logger = NewWithWriter(config.LoggingConfig{Level: "error", Format: "text"}, &bytes.Buffer{})
	assert.Equal(t, log.DebugLevel, logger.GetLevel())
}

func TestNew_JSONFormat(t *testing.T) {
	t.Setenv("TODO_DEBUG", "")

	var buf bytes.Buffer
	logger := NewWithWriter(config.LoggingConfig{Level: "info", Format: "JSON"}, &buf)
	logger.WithField("task_id", 7).Info("task created")

	var entry map[string]interface{}
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "task created", entry["msg"])
	assert.Equal(t, float64(7), entry["task_id"])
	assert.Equal(t, "info", entry["level"])
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.NotPanics(t, func() { logger.Info("dropped") })
}
