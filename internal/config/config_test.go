package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8090", cfg.Server.Port)
	assert.Equal(t, int64(50*1024*1024), cfg.Upload.MaxFileSize)
	assert.Equal(t, 50, cfg.Analysis.MaxPhrases)
	assert.Equal(t, 20, cfg.Analysis.TopKeywords)

	// Only formats the reader can actually open are accepted by default.
	assert.ElementsMatch(t, []string{".xlsx", ".csv"}, cfg.Upload.AllowedTypes)
	assert.NotContains(t, cfg.Upload.AllowedTypes, ".xls")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("UPLOAD_ALLOWED_TYPES", ".csv")
	t.Setenv("ANALYSIS_TOP_KEYWORDS", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{".csv"}, cfg.Upload.AllowedTypes)
	assert.Equal(t, 10, cfg.Analysis.TopKeywords)
}

func TestLoadRejectsBadThreshold(t *testing.T) {
	t.Setenv("ANALYSIS_DEDUP_THRESHOLD", "1.5")

	_, err := Load()
	assert.Error(t, err)
}
