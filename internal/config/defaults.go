package config

import "github.com/netcourse/netcourse/internal/chatclient"

// DefaultContentInclude matches lesson files inside Content.Dir.
var DefaultContentInclude = []string{"**/*.md"}

// defaultEmbeddingModels maps each embedding provider to its default model.
var defaultEmbeddingModels = map[EmbeddingProvider]string{
	EmbeddingOpenAI: "text-embedding-3-small",
	EmbeddingOllama: "nomic-embed-text",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			AllowAllOrigins: false,
		},
		Chat: ChatConfig{
			Timeout:      chatclient.DefaultTimeout,
			RateLimitRPM: 30,
			MaxHistory:   20,
		},
		Terminal: TerminalConfig{
			URL: "https://bellard.org/jslinux/vm.html?url=alpine-x86.cfg&mem=192",
		},
		Search: SearchConfig{
			IndexDir: ".netcourse/index",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		UI: UIConfig{
			DefaultTheme: ThemeLight,
		},
	}
}

// BaseURLs returns the fallback list the chat client should use.
func (c ChatConfig) BaseURLs() []string {
	if len(c.DefaultBaseURLs) > 0 {
		return c.DefaultBaseURLs
	}
	return chatclient.DefaultBaseURLs
}

// Patterns returns the include globs for content files.
func (c ContentConfig) Patterns() []string {
	if len(c.Include) > 0 {
		return c.Include
	}
	return DefaultContentInclude
}

// Model returns the configured embedding model or the provider default.
func (s SearchConfig) Model() string {
	if s.EmbeddingModel != "" {
		return s.EmbeddingModel
	}
	return defaultEmbeddingModels[s.EmbeddingProvider]
}

// Enabled reports whether lesson search is configured.
func (s SearchConfig) Enabled() bool {
	return s.EmbeddingProvider != EmbeddingNone
}
