package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARNING"))
	assert.Equal(t, slog.LevelError, parseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestNew_WritesJSONWithTimestamp(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "INFO", time.UTC)

	logger.Info("contact_submitted", "component", "contact")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "contact_submitted", entry["msg"])
	assert.Equal(t, "contact", entry["component"])
	assert.NotEmpty(t, entry["ts"])
	assert.Nil(t, entry["stacktrace"])
}

func TestNew_ErrorCarriesStack(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "INFO", nil)

	logger.Error("mail_failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotEmpty(t, entry["stacktrace"])
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "WARN", time.UTC)

	logger.Info("ignored")
	assert.Zero(t, buf.Len())
}
