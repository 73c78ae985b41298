package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Config holds process-wide settings. Command-line flags take precedence
// over every field.
type Config struct {
	DatasetPath string
	OutDir      string
	Shape       string
	StylePath   string
	CatalogPath string
	LogLevel    zapcore.Level
	LogJSON     bool
}

// DefaultConfig returns a Config pointing at the app bundle's dataset.
func DefaultConfig() Config {
	return Config{
		DatasetPath: filepath.Join("SkyTrails", "SkyTrails", "Identification", "ViewModel", "bird_database.json"),
		OutDir:      filepath.Join("tools", "gui_assets", "out"),
		Shape:       "Finch",
		CatalogPath: defaultCatalogPath(),
		LogLevel:    zapcore.WarnLevel,
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("FIELDMARKS_DB"); v != "" {
		cfg.DatasetPath = v
	}
	if v := os.Getenv("FIELDMARKS_OUT_DIR"); v != "" {
		cfg.OutDir = v
	}
	if v := strings.TrimSpace(os.Getenv("FIELDMARKS_SHAPE")); v != "" {
		cfg.Shape = v
	}
	if v := os.Getenv("FIELDMARKS_STYLE"); v != "" {
		cfg.StylePath = v
	}
	if v := os.Getenv("FIELDMARKS_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("FIELDMARKS_LOG_LEVEL"); v != "" {
		if lvl, err := zapcore.ParseLevel(v); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if v := os.Getenv("FIELDMARKS_LOG_JSON"); v != "" {
		cfg.LogJSON, _ = strconv.ParseBool(v)
	}

	return cfg
}

func defaultCatalogPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "fieldmarks.db"
	}
	return filepath.Join(dir, "fieldmarks", "catalog.db")
}
