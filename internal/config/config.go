package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"surveyscope/internal/errors"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	Analysis AnalysisConfig
}

// ServerConfig holds the HTTP server settings
type ServerConfig struct {
	Port    string
	GinMode string
	APIPort string
}

// UploadConfig bounds accepted survey uploads
type UploadConfig struct {
	MaxFileSize  int64
	AllowedTypes []string
	TempDir      string
}

// AnalysisConfig tunes the feedback mining pipeline
type AnalysisConfig struct {
	MaxPhrases         int
	DedupThreshold     float64
	MaxRepresentatives int
	TopKeywords        int
}

// Load creates configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8090"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
			APIPort: getEnvOrDefault("API_PORT", "8091"),
		},
		Upload: UploadConfig{
			MaxFileSize:  getEnvInt64OrDefault("UPLOAD_MAX_FILE_SIZE", 50*1024*1024),
			// Legacy .xls is excluded: the reader only understands xlsx workbooks.
			AllowedTypes: getEnvSliceOrDefault("UPLOAD_ALLOWED_TYPES", []string{".xlsx", ".csv"}),
			TempDir:      getEnvOrDefault("UPLOAD_TEMP_DIR", os.TempDir()),
		},
		Analysis: AnalysisConfig{
			MaxPhrases:         getEnvIntOrDefault("ANALYSIS_MAX_PHRASES", 50),
			DedupThreshold:     getEnvFloatOrDefault("ANALYSIS_DEDUP_THRESHOLD", 0.55),
			MaxRepresentatives: getEnvIntOrDefault("ANALYSIS_MAX_REPRESENTATIVES", 2),
			TopKeywords:        getEnvIntOrDefault("ANALYSIS_TOP_KEYWORDS", 20),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Upload.MaxFileSize <= 0 {
		return errors.ConfigInvalid("UPLOAD_MAX_FILE_SIZE must be positive")
	}
	if c.Analysis.MaxPhrases <= 0 {
		return errors.ConfigInvalid("ANALYSIS_MAX_PHRASES must be positive")
	}
	if c.Analysis.DedupThreshold <= 0 || c.Analysis.DedupThreshold > 1 {
		return errors.ConfigInvalid(fmt.Sprintf("ANALYSIS_DEDUP_THRESHOLD must be in (0,1], got %v", c.Analysis.DedupThreshold))
	}
	if c.Analysis.MaxRepresentatives <= 0 {
		return errors.ConfigInvalid("ANALYSIS_MAX_REPRESENTATIVES must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvSliceOrDefault(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
