package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const CONFIG_FILE = "config.yaml"

// AppConfig carries every tunable the service reads from config.yaml. The
// analysis packages receive these values through their own explicit config
// structs; nothing in the pipeline reads ambient state.
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Sentiment SentimentConfig `yaml:"sentiment"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Cache     CacheConfig     `yaml:"cache"`
	Events    EventsConfig    `yaml:"events"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// SentimentConfig selects the scoring backend and its classification
// tunables. Nil keyword lists fall back to the compiled-in defaults; an
// explicit empty list disables keyword adjustment.
type SentimentConfig struct {
	Backend           string   `yaml:"backend"` // vader | transformer
	Model             string   `yaml:"model"`
	ModelDir          string   `yaml:"model_dir"`
	PositiveThreshold float64  `yaml:"positive_threshold"`
	NegativeThreshold float64  `yaml:"negative_threshold"`
	KeywordDelta      float64  `yaml:"keyword_delta"`
	PositiveKeywords  []string `yaml:"positive_keywords"`
	NegativeKeywords  []string `yaml:"negative_keywords"`
	BatchSize         int      `yaml:"batch_size"`
}

type AnalysisConfig struct {
	TopCommentsPerLabel int      `yaml:"top_comments_per_label"`
	TopKeywords         int      `yaml:"top_keywords"`
	TopOverall          int      `yaml:"top_overall"`
	MaxContentIdeas     int      `yaml:"max_content_ideas"`
	ExtraStopwords      []string `yaml:"extra_stopwords"`
}

type CacheConfig struct {
	TTLMinutes int `yaml:"ttl_minutes"`
}

type EventsConfig struct {
	Topic string `yaml:"topic"`
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Server: ServerConfig{Port: 8080},
		Sentiment: SentimentConfig{
			Backend:  "vader",
			ModelDir: "./models",
		},
		Cache:  CacheConfig{TTLMinutes: 10},
		Events: EventsConfig{Topic: "analysis-results"},
	}
}

// Load reads config.yaml over the compiled-in defaults. The file is searched
// from the working directory upward so tests and binaries run from
// subdirectories still find it; with no file at all the defaults stand.
func Load() AppConfig {
	cfg := defaultAppConfig()

	base := GetBasePath()
	if base == "" {
		slog.Warn("No config.yaml found, using built-in defaults")
		return cfg
	}

	data, err := os.ReadFile(filepath.Join(base, CONFIG_FILE))
	if err != nil {
		slog.Warn("Failed to read config.yaml, using built-in defaults",
			slog.String("error", err.Error()))
		return cfg
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		slog.Error("config.yaml is malformed",
			slog.String("error", err.Error()))
		panic(err)
	}

	slog.Info("Loaded configuration",
		slog.String("path", filepath.Join(base, CONFIG_FILE)),
		slog.String("backend", cfg.Sentiment.Backend))
	return cfg
}

// GetBasePath walks up from the working directory until it finds the
// directory holding config.yaml. Returns "" when no such directory exists.
func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
