package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "Finch", cfg.Shape)
	assert.Equal(t, zapcore.WarnLevel, cfg.LogLevel)
	assert.False(t, cfg.LogJSON)
	assert.Empty(t, cfg.StylePath)
	assert.NotEmpty(t, cfg.CatalogPath)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("FIELDMARKS_DB", "/data/birds.json")
	t.Setenv("FIELDMARKS_OUT_DIR", "/tmp/out")
	t.Setenv("FIELDMARKS_SHAPE", " Sparrow ")
	t.Setenv("FIELDMARKS_STYLE", "style.yaml")
	t.Setenv("FIELDMARKS_CATALOG", "/tmp/catalog.db")
	t.Setenv("FIELDMARKS_LOG_LEVEL", "debug")
	t.Setenv("FIELDMARKS_LOG_JSON", "true")

	cfg := LoadConfig()
	assert.Equal(t, "/data/birds.json", cfg.DatasetPath)
	assert.Equal(t, "/tmp/out", cfg.OutDir)
	assert.Equal(t, "Sparrow", cfg.Shape)
	assert.Equal(t, "style.yaml", cfg.StylePath)
	assert.Equal(t, "/tmp/catalog.db", cfg.CatalogPath)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
}

func TestLoadConfig_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("FIELDMARKS_LOG_LEVEL", "loud")
	t.Setenv("FIELDMARKS_SHAPE", "   ")
	t.Setenv("FIELDMARKS_LOG_JSON", "maybe")

	cfg := LoadConfig()
	assert.Equal(t, zapcore.WarnLevel, cfg.LogLevel)
	assert.Equal(t, "Finch", cfg.Shape)
	assert.False(t, cfg.LogJSON)
}

func TestNewLogger(t *testing.T) {
	for _, jsonOut := range []bool{false, true} {
		cfg := DefaultConfig()
		cfg.LogJSON = jsonOut
		cfg.LogLevel = zapcore.InfoLevel

		logger, err := NewLogger(cfg)
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	}
}
