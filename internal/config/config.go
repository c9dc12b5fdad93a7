package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gigwork/jobchat/internal/extract"
	"github.com/gigwork/jobchat/pkg/ollama"
)

type Config struct {
	Addr        string         `yaml:"addr"`
	APITimeout  time.Duration  `yaml:"timeout"`
	DatabaseURL string         `yaml:"database_url"`
	RedisURL    string         `yaml:"redis_url"`
	ResultTTL   time.Duration  `yaml:"result_ttl"`
	Ollama      ollama.Config  `yaml:"ollama"`
	Extract     extract.Config `yaml:"extract"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:        getEnv("JOBCHAT_ADDR", ":8080"),
		APITimeout:  15 * time.Second,
		DatabaseURL: getEnv("JOBCHAT_DATABASE_URL", "postgres://localhost:5432/jobchat"),
		RedisURL:    getEnv("JOBCHAT_REDIS_URL", "redis://localhost:6379/0"),
		ResultTTL:   30 * time.Minute,
		Ollama:      ollama.DefaultConfig(),
	}
	cfg.Extract.Model = cfg.Ollama.Model

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Extract.Model == "" {
		cfg.Extract.Model = cfg.Ollama.Model
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
