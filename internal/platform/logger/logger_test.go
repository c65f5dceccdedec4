package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interbank/internal/platform/config"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, config.Config{LogLevel: slog.LevelInfo, LogFormat: config.LogFormatJSON})

	log.Debug("hidden")
	log.Info("decoded", "bank", "BCP")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "decoded", record["msg"])
	assert.Equal(t, "BCP", record["bank"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, config.Config{LogLevel: slog.LevelWarn, LogFormat: config.LogFormatText})

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestMaskAccount(t *testing.T) {
	assert.Equal(t, "**********2345", MaskAccount("19205678912345"))
	assert.Equal(t, "1234", MaskAccount("1234"))
	assert.Equal(t, "", MaskAccount(""))
}
