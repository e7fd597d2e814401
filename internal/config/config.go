package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides. A double underscore
// separates nesting levels: NETCOURSE_CHAT__BASE_URL -> chat.base_url.
const EnvPrefix = "NETCOURSE_"

// LoadDotEnv loads KEY=VALUE pairs from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (NETCOURSE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps NETCOURSE_CHAT__BASE_URL to chat.base_url.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

var validLogFormats = map[string]bool{"console": true, "json": true}

var validThemes = map[Theme]bool{ThemeLight: true, ThemeDark: true}

var validEmbeddingProviders = map[EmbeddingProvider]bool{
	EmbeddingNone:   true,
	EmbeddingOpenAI: true,
	EmbeddingOllama: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	if c.Chat.BaseURL != "" {
		if err := validateHTTPURL(c.Chat.BaseURL); err != nil {
			return fmt.Errorf("chat.base_url: %w", err)
		}
	}
	for _, u := range c.Chat.DefaultBaseURLs {
		if err := validateHTTPURL(u); err != nil {
			return fmt.Errorf("chat.default_base_urls: %w", err)
		}
	}
	if c.Chat.Timeout <= 0 {
		return fmt.Errorf("chat.timeout must be positive")
	}
	if c.Chat.RateLimitRPM < 0 {
		return fmt.Errorf("chat.rate_limit_rpm must be non-negative")
	}
	if c.Chat.MaxHistory < 0 {
		return fmt.Errorf("chat.max_history must be non-negative")
	}

	if c.Terminal.URL != "" {
		if err := validateHTTPURL(c.Terminal.URL); err != nil {
			return fmt.Errorf("terminal.url: %w", err)
		}
	}

	if !validEmbeddingProviders[c.Search.EmbeddingProvider] {
		return fmt.Errorf("invalid search.embedding_provider %q: must be openai or ollama", c.Search.EmbeddingProvider)
	}

	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}
	if !validLogFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be console or json", c.Log.Format)
	}

	if !validThemes[c.UI.DefaultTheme] {
		return fmt.Errorf("invalid ui.default_theme %q: must be light or dark", c.UI.DefaultTheme)
	}

	return nil
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%q has no host", raw)
	}
	return nil
}

// APIKeyEnvVar returns the conventional environment variable name for
// the API key of the given embedding provider.
func APIKeyEnvVar(provider EmbeddingProvider) string {
	switch provider {
	case EmbeddingOpenAI:
		return "OPENAI_API_KEY"
	default:
		return ""
	}
}
