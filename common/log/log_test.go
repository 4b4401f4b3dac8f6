package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/git-pranav2004/getdeal/common/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}

func TestNewWritesJSONAtConfiguredLevel(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.LogLevel = "warn"

	var buf bytes.Buffer
	logger := slog.New(newHandler(cfg, &buf))
	logger.Info("dropped")
	logger.Warn("kept", slog.String("component", "catalog"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "kept", record["msg"])
	assert.Equal(t, "catalog", record["component"])
}
