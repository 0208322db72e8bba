// Package config loads the layered application settings: built-in
// defaults, an optional YAML file, a .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application settings that are not LLM provider
// selection (see llm.ConfigFromEnv).
type Config struct {
	Quiz   QuizConfig   `yaml:"quiz"`
	Cache  CacheConfig  `yaml:"cache"`
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`
	Log    LogConfig    `yaml:"log"`
}

// QuizConfig holds quiz generation defaults.
type QuizConfig struct {
	Count            int    `yaml:"count"`
	Scheme           string `yaml:"scheme"`
	Difficulty       string `yaml:"difficulty"`
	QuizType         string `yaml:"quiz_type"`
	EvalMode         string `yaml:"eval_mode"`
	ShuffleQuestions bool   `yaml:"shuffle_questions"`
	ShuffleOptions   bool   `yaml:"shuffle_options"`
	ShowExplanations bool   `yaml:"show_explanations"`
	// TimeLimit is a duration string; empty or "auto" derives it from
	// the question count.
	TimeLimit string `yaml:"time_limit"`
}

// CacheConfig configures Redis. An empty address disables the shared
// cache and the in-process cache is used instead.
type CacheConfig struct {
	RedisAddr string `yaml:"redis_addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	TTL       string `yaml:"ttl"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type DataConfig struct {
	DBPath string `yaml:"db_path"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Quiz: QuizConfig{
			Count:            5,
			Scheme:           "binary",
			Difficulty:       Difficulties[1],
			QuizType:         QuizTypes[0],
			EvalMode:         EvalModes[0],
			ShowExplanations: true,
		},
		Cache:  CacheConfig{TTL: "24h"},
		Server: ServerConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info", Format: "pretty"},
	}
}

// Load reads YAML config from path on top of the defaults. A missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath resolves the config file: MENTORAI_CONFIG, then
// $XDG_CONFIG_HOME/mentorai/config.yaml, then ~/.config/mentorai/config.yaml.
func DefaultPath() string {
	if p := os.Getenv("MENTORAI_CONFIG"); p != "" {
		return p
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "mentorai", "config.yaml")
}

// LoadDotEnv loads KEY=value pairs from path into the process environment
// without overriding variables that are already set. A missing file is
// not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ApplyEnv overlays MENTORAI_* variables onto cfg.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("MENTORAI_DB"); v != "" {
		c.Data.DBPath = v
	}
	if v := os.Getenv("MENTORAI_REDIS_ADDR"); v != "" {
		c.Cache.RedisAddr = v
	}
	if v := os.Getenv("MENTORAI_REDIS_PASSWORD"); v != "" {
		c.Cache.Password = v
	}
	if v := os.Getenv("MENTORAI_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Cache.DB = n
		}
	}
	if v := os.Getenv("MENTORAI_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("MENTORAI_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("MENTORAI_ADDR"); v != "" {
		c.Server.Addr = v
	}
}

// CacheTTL returns the parsed cache TTL.
func (c Config) CacheTTL() time.Duration {
	return TTLDuration(c.Cache.TTL, 24*time.Hour)
}

// QuizTimeLimit returns the configured limit, zero meaning automatic.
func (c Config) QuizTimeLimit() time.Duration {
	if c.Quiz.TimeLimit == "auto" {
		return 0
	}
	return TTLDuration(c.Quiz.TimeLimit, 0)
}

// TTLDuration parses a duration string or returns the fallback if empty
// or malformed.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
