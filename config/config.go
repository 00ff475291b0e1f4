package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the lingua tool.
type Config struct {
	Translate TranslateConfig `yaml:"translate"`
	Highlight HighlightConfig `yaml:"highlight"`
	Store     StoreConfig     `yaml:"store"`
	Passages  PassagesConfig  `yaml:"passages"`
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// TranslateConfig holds the streaming provider configuration.
type TranslateConfig struct {
	Provider       string        `yaml:"provider"`    // "anthropic", "openai", "gemini", "replay"
	Model          string        `yaml:"model"`       // e.g., "claude-sonnet-4-5"
	APIKeyEnv      string        `yaml:"api_key_env"` // Environment variable for API key
	BaseURL        string        `yaml:"base_url"`    // OpenAI-compatible endpoints only
	MaxTokens      int           `yaml:"max_tokens"`
	TargetLanguage string        `yaml:"target_language"`
	ReplayFile     string        `yaml:"replay_file"`
	ReplayChunk    int           `yaml:"replay_chunk"`
	CacheSize      int           `yaml:"cache_size"` // 0 disables the response cache
	CacheTTL       time.Duration `yaml:"cache_ttl"`
}

// HighlightConfig controls how past translations are merged and drawn.
type HighlightConfig struct {
	HistorySize    int     `yaml:"history_size"`
	CurrentOpacity float64 `yaml:"current_opacity"`
	HistoryOpacity float64 `yaml:"history_opacity"`
	OpacityStep    float64 `yaml:"opacity_step"`
	MinOpacity     float64 `yaml:"min_opacity"`
}

// StoreConfig holds history persistence configuration.
type StoreConfig struct {
	Path string `yaml:"path"` // empty means .lingua/history.db under the working dir
}

// PassagesConfig holds passage discovery configuration.
type PassagesConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// ServerConfig holds HTTP API configuration.
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Translate: TranslateConfig{
			Provider:       "anthropic",
			Model:          "claude-sonnet-4-5",
			APIKeyEnv:      "ANTHROPIC_API_KEY",
			MaxTokens:      4096,
			TargetLanguage: "English",
			ReplayChunk:    16,
			CacheSize:      128,
			CacheTTL:       time.Hour,
		},
		Highlight: HighlightConfig{
			HistorySize:    10,
			CurrentOpacity: 1.0,
			HistoryOpacity: 0.5,
			OpacityStep:    0.04,
			MinOpacity:     0.1,
		},
		Passages: PassagesConfig{
			Includes: []string{"**/*.txt", "**/*.md"},
			Excludes: []string{"**/.git/**", "**/.lingua/**", "**/node_modules/**"},
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 5 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for lingua.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "lingua.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, DataDirName, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var (
	knownProviders = map[string]bool{"anthropic": true, "openai": true, "gemini": true, "replay": true}
	knownLevels    = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	knownFormats   = map[string]bool{"console": true, "json": true}
)

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if !knownProviders[c.Translate.Provider] {
		return fmt.Errorf("unknown translate provider %q", c.Translate.Provider)
	}
	if c.Translate.MaxTokens <= 0 {
		return fmt.Errorf("translate.max_tokens must be positive, got %d", c.Translate.MaxTokens)
	}
	if c.Translate.CacheSize < 0 {
		return fmt.Errorf("translate.cache_size must not be negative, got %d", c.Translate.CacheSize)
	}
	if c.Highlight.HistorySize <= 0 {
		return fmt.Errorf("highlight.history_size must be positive, got %d", c.Highlight.HistorySize)
	}
	if !knownLevels[c.Logging.Level] {
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	if !knownFormats[c.Logging.Format] {
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	return nil
}

// DataDirName is the per-project directory holding history and config.
const DataDirName = ".lingua"

// HistoryDBPath returns the path to the history database.
func HistoryDBPath(dir string) string {
	return filepath.Join(dir, DataDirName, "history.db")
}

// ResolveHistoryDBPath honors Store.Path, falling back to HistoryDBPath(dir).
func (c *Config) ResolveHistoryDBPath(dir string) string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	return HistoryDBPath(dir)
}

// EnsureDataDir ensures the .lingua directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, DataDirName), 0755)
}
