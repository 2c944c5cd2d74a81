package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
)

type YouTubeConfig struct {
	Timeout   time.Duration `yaml:"timeout" env:"YOUTUBE_TIMEOUT" env-default:"15s"`
	UserAgent string        `yaml:"user_agent" env:"YOUTUBE_USER_AGENT"`
}

type AnalysisConfig struct {
	Language         string   `yaml:"language" env:"ANALYSIS_LANGUAGE" env-default:"english"`
	StopwordsFile    string   `yaml:"stopwords_file" env:"ANALYSIS_STOPWORDS_FILE"`
	ExtraStopwords   []string `yaml:"extra_stopwords" env:"ANALYSIS_EXTRA_STOPWORDS" env-separator:","`
	SummarySentences int      `yaml:"summary_sentences" env:"ANALYSIS_SUMMARY_SENTENCES" env-default:"3"`
	KeyPhrases       int      `yaml:"key_phrases" env:"ANALYSIS_KEY_PHRASES" env-default:"5"`
}

type BrokerConfig struct {
	Address string `yaml:"address" env:"BROKER_ADDRESS"`
	Subject string `yaml:"topic" env:"BROKER_SUBJECT" env-default:"youtube.analysis.completed"`
}

type Config struct {
	LogLevel  string         `yaml:"log_level" env:"LOG_LEVEL" env-default:"ERROR"`
	LogFormat string         `yaml:"log_format" env:"LOG_FORMAT" env-default:"text"`
	YouTube   YouTubeConfig  `yaml:"youtube"`
	Analysis  AnalysisConfig `yaml:"analysis"`
	Broker    BrokerConfig   `yaml:"broker"`
}

// Load reads configPath and the environment into cfg. A missing file is not
// an error: the environment and defaults are used alone. Variables from a
// .env file in the working directory never override the real environment.
func Load(configPath string, cfg *Config) error {
	_ = godotenv.Load()

	path, err := homedir.Expand(configPath)
	if err != nil {
		return fmt.Errorf("cannot expand config path %q: %w", configPath, err)
	}

	if path != "" {
		_, err = os.Stat(path)
		switch {
		case err == nil:
			if err := cleanenv.ReadConfig(path, cfg); err != nil {
				return fmt.Errorf("cannot read config %q: %w", path, err)
			}
			return cfg.validate()
		case !errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("cannot access config %q: %w", path, err)
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("cannot read config from environment: %w", err)
	}
	return cfg.validate()
}

func (cfg *Config) validate() error {
	if cfg.YouTube.Timeout <= 0 {
		return fmt.Errorf("youtube timeout must be positive, got %s", cfg.YouTube.Timeout)
	}
	if cfg.Analysis.SummarySentences < 1 {
		return fmt.Errorf("summary sentences must be positive, got %d", cfg.Analysis.SummarySentences)
	}
	if cfg.Analysis.KeyPhrases < 0 {
		return fmt.Errorf("key phrases must not be negative, got %d", cfg.Analysis.KeyPhrases)
	}
	switch cfg.LogFormat {
	case "text", "pretty":
	default:
		return fmt.Errorf("unknown log format: %s", cfg.LogFormat)
	}
	return nil
}
