// Package config provides application configuration with multi-source
// priority.
//
// Configuration sources (highest to lowest priority):
//  1. Environment variables (runtime override)
//  2. Config file (~/.oasis/config.yaml)
//  3. Default values
//
// Sensitive data (the API key) is never logged. Validation is fail-fast with
// sentinel errors so callers can use errors.Is().
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var (
	// ErrMissingAPIKey indicates the Gemini API key is not set.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrInvalidModelName indicates a model identifier is empty or malformed.
	ErrInvalidModelName = errors.New("invalid model name")

	// ErrInvalidVoice indicates the configured voice name is empty.
	ErrInvalidVoice = errors.New("invalid voice")

	// ErrInvalidPadding indicates the map padding values are negative.
	ErrInvalidPadding = errors.New("invalid map padding")
)

const (
	// DefaultLiveModel is the realtime audio dialog model.
	DefaultLiveModel = "gemini-live-2.5-flash-preview"

	// DefaultSearchModel handles grounded-search fallbacks for project
	// details that are missing from the local dataset.
	DefaultSearchModel = "gemini-2.5-flash"

	// DefaultVoice is the prebuilt voice used for audio responses.
	DefaultVoice = "Zephyr"
)

// Config stores application configuration.
type Config struct {
	// APIKey authenticates against the Gemini API. SENSITIVE: never log.
	APIKey string `mapstructure:"api_key"`

	// LiveModel is the realtime session model identifier.
	LiveModel string `mapstructure:"live_model"`

	// SearchModel is the model used for search-grounded fallbacks.
	SearchModel string `mapstructure:"search_model"`

	// Voice selects the prebuilt voice for spoken responses.
	Voice string `mapstructure:"voice"`

	// SystemPromptFile optionally overrides the built-in system prompt.
	SystemPromptFile string `mapstructure:"system_prompt_file"`

	// MapPadding is the camera padding in pixels: top, right, bottom, left.
	// Forwarded to tool implementations so marker framing leaves room for
	// overlaid UI panels.
	MapPadding [4]int `mapstructure:"map_padding"`

	// Logging configuration.
	LogLevel string `mapstructure:"log_level"`
	LogJSON  bool   `mapstructure:"log_json"`
}

// Load loads configuration with priority: env > config file > defaults.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting user home directory: %w", err)
	}

	configDir := filepath.Join(home, ".oasis")
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	setDefaults(v)

	// GEMINI_API_KEY is the only secret; bind it explicitly instead of
	// relying on AutomaticEnv so the mapping stays auditable.
	_ = v.BindEnv("api_key", "GEMINI_API_KEY", "API_KEY")
	_ = v.BindEnv("live_model", "OASIS_LIVE_MODEL")
	_ = v.BindEnv("log_level", "OASIS_LOG_LEVEL")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		slog.Debug("configuration file not found, using defaults",
			"search_paths", []string{configDir, "."})
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("live_model", DefaultLiveModel)
	v.SetDefault("search_model", DefaultSearchModel)
	v.SetDefault("voice", DefaultVoice)
	v.SetDefault("map_padding", [4]int{0, 0, 0, 0})
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
}

// Validate checks the configuration and returns a sentinel error for the
// first violation found.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: set GEMINI_API_KEY or api_key in config", ErrMissingAPIKey)
	}
	if strings.TrimSpace(c.LiveModel) == "" {
		return fmt.Errorf("%w: live_model is empty", ErrInvalidModelName)
	}
	if strings.TrimSpace(c.SearchModel) == "" {
		return fmt.Errorf("%w: search_model is empty", ErrInvalidModelName)
	}
	if strings.TrimSpace(c.Voice) == "" {
		return fmt.Errorf("%w: voice is empty", ErrInvalidVoice)
	}
	for _, p := range c.MapPadding {
		if p < 0 {
			return fmt.Errorf("%w: %v", ErrInvalidPadding, c.MapPadding)
		}
	}
	return nil
}

// SystemPrompt returns the system prompt text: the override file when
// configured, otherwise the built-in prompt.
func (c *Config) SystemPrompt() (string, error) {
	if c.SystemPromptFile == "" {
		return defaultSystemPrompt, nil
	}
	data, err := os.ReadFile(c.SystemPromptFile)
	if err != nil {
		return "", fmt.Errorf("reading system prompt file: %w", err)
	}
	return string(data), nil
}
