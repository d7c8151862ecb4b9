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

// EnvPrefix prefixes every environment override, e.g. INTEGRATIONDECK_THEME.
const EnvPrefix = "INTEGRATIONDECK_"

// EnvConfigFile names the variable holding an optional YAML config path.
const EnvConfigFile = EnvPrefix + "CONFIG"

// EnvLogDir names the variable holding a directory for dated log files.
// The CLI logs to stderr when it is unset.
const EnvLogDir = EnvPrefix + "LOG_DIR"

// Load builds a validated PptxConfig by layering, low to high precedence:
//  1. DefaultPptxConfig
//  2. the YAML file named by INTEGRATIONDECK_CONFIG, if set
//  3. INTEGRATIONDECK_* variables (THEME, HANDOUTS, FOOTER, WRAP_AT)
//
// HANDOUTS takes a comma-separated list; an empty value selects none.
func Load() (PptxConfig, error) {
	k := koanf.New(".")

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return PptxConfig{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	envProvider := env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if key == "handouts" {
			return key, splitList(value)
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return PptxConfig{}, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := DefaultPptxConfig()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return PptxConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return PptxConfig{}, err
	}
	return cfg, nil
}

// splitList splits a comma-separated value, dropping blank items.
func splitList(value string) []string {
	out := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
