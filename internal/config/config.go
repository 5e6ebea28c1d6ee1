// Package config loads papersum settings from defaults, PAPERSUM_*
// environment variables and command-line overrides, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable papersum reads.
const EnvPrefix = "PAPERSUM_"

// Config holds the orchestration settings.
type Config struct {
	// OutputDir receives summary files. A leading ~ is expanded.
	OutputDir string `koanf:"output_dir" validate:"required"`
	// Agent is the summarization CLI to run.
	Agent string `koanf:"agent" validate:"required,oneof=gemini claude codex"`
	// Model is passed to the agent. Empty selects the agent's default.
	Model string `koanf:"model"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn error"`
	// DownloadTimeout bounds each download attempt.
	DownloadTimeout time.Duration `koanf:"download_timeout" validate:"gt=0"`
	// DownloadAttempts is the total number of download tries.
	DownloadAttempts uint `koanf:"download_attempts" validate:"gte=1,lte=10"`
	// KeepTrimmed keeps the trimmed PDF next to the summary instead of
	// deleting it.
	KeepTrimmed bool `koanf:"keep_trimmed"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutputDir:        "~/Documents/papers/summaries/",
		Agent:            "gemini",
		Model:            "",
		LogLevel:         "info",
		DownloadTimeout:  60 * time.Second,
		DownloadAttempts: 3,
		KeepTrimmed:      false,
	}
}

// Load builds a Config from defaults, then environment variables, then the
// given overrides keyed by koanf path (e.g. "output_dir").
func Load(overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	for key, value := range overrides {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Agent = strings.ToLower(strings.TrimSpace(cfg.Agent))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	dir, err := ExpandHome(cfg.OutputDir)
	if err != nil {
		return nil, err
	}
	cfg.OutputDir = dir

	return &cfg, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
