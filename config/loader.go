package config

import (
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "WHFC_"

// Loader resolves a Config by layering providers into one koanf instance,
// highest priority last: built-in defaults, then WHFC_*-prefixed
// environment variables.
type Loader struct {
	k         *koanf.Koanf
	envPrefix string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithEnvPrefix overrides the default "WHFC_" environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) { l.envPrefix = prefix }
}

// NewLoader returns a Loader ready for Load.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{k: koanf.New("."), envPrefix: envPrefix}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resolves a Config from defaults overridden by environment
// variables, then validates it.
func (l *Loader) Load() (Config, error) {
	if err := l.loadDefaults(); err != nil {
		return Config{}, err
	}
	if err := l.loadEnv(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad is Load, panicking on error; for cmd/ main functions that cannot
// usefully continue with an unresolved config.
func (l *Loader) MustLoad() Config {
	cfg, err := l.Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (l *Loader) loadDefaults() error {
	return l.k.Load(confmap.Provider(defaults(), "."), nil)
}

func (l *Loader) loadEnv() error {
	return l.k.Load(env.Provider(l.envPrefix, ".", transformEnvKey(l.envPrefix)), nil)
}

// transformEnvKey turns "WHFC_MAX_PIERCING_ROUNDS" into "max_piercing_rounds".
func transformEnvKey(prefix string) func(string) string {
	return func(s string) string {
		trimmed := strings.TrimPrefix(s, prefix)
		return strings.ToLower(trimmed)
	}
}
