package config

import "time"

// EmbeddingProvider identifies the service used to embed lessons for search.
type EmbeddingProvider string

const (
	EmbeddingNone   EmbeddingProvider = ""
	EmbeddingOpenAI EmbeddingProvider = "openai"
	EmbeddingOllama EmbeddingProvider = "ollama"
)

// Theme is the page colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Config is the top-level netcourse configuration, corresponding to .netcourse.yml.
type Config struct {
	Server   ServerConfig   `yaml:"server" koanf:"server"`
	Chat     ChatConfig     `yaml:"chat" koanf:"chat"`
	Terminal TerminalConfig `yaml:"terminal" koanf:"terminal"`
	Content  ContentConfig  `yaml:"content" koanf:"content"`
	Search   SearchConfig   `yaml:"search" koanf:"search"`
	Log      LogConfig      `yaml:"log" koanf:"log"`
	UI       UIConfig       `yaml:"ui" koanf:"ui"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// ChatConfig controls how questions reach the language-model backend.
type ChatConfig struct {
	// BaseURL is tried before the defaults. Usually set through
	// NETCOURSE_CHAT__BASE_URL.
	BaseURL string `yaml:"base_url" koanf:"base_url"`
	// DefaultBaseURLs overrides the built-in local fallback list when set.
	DefaultBaseURLs []string      `yaml:"default_base_urls,omitempty" koanf:"default_base_urls"`
	Timeout         time.Duration `yaml:"timeout" koanf:"timeout"`
	RateLimitRPM    int           `yaml:"rate_limit_rpm" koanf:"rate_limit_rpm"`
	MaxHistory      int           `yaml:"max_history" koanf:"max_history"`
}

// TerminalConfig points at the embedded terminal emulator.
type TerminalConfig struct {
	URL string `yaml:"url" koanf:"url"`
}

// ContentConfig locates optional Markdown lessons merged over the built-in course.
type ContentConfig struct {
	Dir     string   `yaml:"dir" koanf:"dir"`
	Include []string `yaml:"include,omitempty" koanf:"include"`
}

// SearchConfig enables semantic lesson search.
type SearchConfig struct {
	EmbeddingProvider EmbeddingProvider `yaml:"embedding_provider" koanf:"embedding_provider"`
	EmbeddingModel    string            `yaml:"embedding_model" koanf:"embedding_model"`
	OllamaURL         string            `yaml:"ollama_url" koanf:"ollama_url"`
	IndexDir          string            `yaml:"index_dir" koanf:"index_dir"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
	File   string `yaml:"file" koanf:"file"`
}

// UIConfig holds page defaults.
type UIConfig struct {
	DefaultTheme Theme `yaml:"default_theme" koanf:"default_theme"`
}
