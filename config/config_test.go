package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetBasePathFindsRepoRoot(t *testing.T) {
	base := GetBasePath()

	assert.NotEmpty(t, base, "tests run inside the repo, config.yaml must be findable")
	_, err := os.Stat(filepath.Join(base, CONFIG_FILE))
	assert.NoError(t, err)
}

func TestLoadReadsRepoConfig(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "vader", cfg.Sentiment.Backend)
	assert.Equal(t, 0.25, cfg.Sentiment.PositiveThreshold)
	assert.Equal(t, -0.25, cfg.Sentiment.NegativeThreshold)
	assert.Equal(t, 0.15, cfg.Sentiment.KeywordDelta)
	assert.Equal(t, 16, cfg.Sentiment.BatchSize)
	assert.Equal(t, 20, cfg.Analysis.TopKeywords)
	assert.Equal(t, 10, cfg.Cache.TTLMinutes)
	assert.Equal(t, "analysis-results", cfg.Events.Topic)
}

func TestDefaultAppConfig(t *testing.T) {
	cfg := defaultAppConfig()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "vader", cfg.Sentiment.Backend)
	assert.Equal(t, "./models", cfg.Sentiment.ModelDir)
	assert.Equal(t, 10, cfg.Cache.TTLMinutes)
	assert.Equal(t, "analysis-results", cfg.Events.Topic)

	// Classification tunables stay zero here; the sentiment package owns
	// those defaults.
	assert.Zero(t, cfg.Sentiment.PositiveThreshold)
}
