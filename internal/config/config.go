package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "fitcli/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	LLM     LLMConfig     `yaml:"llm" envconfig:"LLM"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains the input/output directories for batch conversion
type PathsConfig struct {
	InputDir  string `yaml:"input_dir" envconfig:"INPUT_DIR" validate:"required"`
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
}

// LLMConfig contains settings for the local Ollama chat endpoint
type LLMConfig struct {
	BaseURL string        `yaml:"base_url" envconfig:"BASE_URL" validate:"required,url"`
	Model   string        `yaml:"model" envconfig:"MODEL" validate:"required"`
	Timeout time.Duration `yaml:"timeout" envconfig:"TIMEOUT"`
}

// configFile is the optional YAML config looked up in the working directory.
const configFile = "fitcli.yaml"

// Default returns the built-in configuration. Defaults live here rather than
// in envconfig `default` tags: envconfig applies tag defaults whenever the
// env var is unset, which would clobber values read from the YAML file.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/fitcli.log",
		},
		Paths: PathsConfig{
			InputDir:  "data/strava/raw",
			OutputDir: "data/strava/processed",
		},
		LLM: LLMConfig{
			BaseURL: "http://localhost:11434",
			Model:   "phi3:mini",
			Timeout: 120 * time.Second,
		},
	}
}

// Load resolves configuration in three layers, later layers winning:
// built-in defaults, then the optional YAML file, then environment
// variables with the FITCLI prefix. The result is validated before use.
func Load() (*Config, error) {
	cfg := Default()

	// The YAML file overlays only the keys it sets.
	if _, err := os.Stat(configFile); err == nil {
		if err := loadFromFile(configFile, &cfg); err != nil {
			return nil, apperrors.NewConfigError("failed to load config from file", err)
		}
	}

	// Environment variables override both; with no `default` tags,
	// envconfig touches only variables that are actually set.
	if err := envconfig.Process("FITCLI", &cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays configuration from a YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate checks the configuration against struct-level validation rules
func (c *Config) validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	return nil
}
