package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SHOWRANK_"

// Load builds a Config by layering defaults, an optional YAML file and env vars.
// path wins over SHOWRANK_CONFIG when both are set.
func Load(path string) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// SHOWRANK_LOG_LEVEL -> log_level, SHOWRANK_NOTICE_DELAY -> notice_delay.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	// Decode into a copy whose item list starts empty so a shorter list in
	// the file does not inherit trailing default items.
	cfg := *base
	cfg.Quiz.Items = nil
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	if len(cfg.Quiz.Items) == 0 {
		cfg.Quiz.Items = base.Quiz.Items
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := cfg.BuildQuiz(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
