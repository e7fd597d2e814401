package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netcourse/netcourse/internal/chatclient"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Chat.Timeout != 15*time.Second {
		t.Errorf("expected default chat timeout 15s, got %s", cfg.Chat.Timeout)
	}
	if cfg.Chat.BaseURL != "" {
		t.Errorf("expected no configured base url, got %q", cfg.Chat.BaseURL)
	}
	if cfg.UI.DefaultTheme != ThemeLight {
		t.Errorf("expected light theme, got %q", cfg.UI.DefaultTheme)
	}
	assert.Equal(t, chatclient.DefaultBaseURLs, cfg.Chat.BaseURLs())
	assert.Equal(t, DefaultContentInclude, cfg.Content.Patterns())
	assert.False(t, cfg.Search.Enabled())
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.netcourse.yml")

	original := DefaultConfig()
	original.Server.Port = 9090
	original.Chat.BaseURL = "https://tutor.example.com"
	original.Chat.DefaultBaseURLs = []string{"http://localhost:7000"}
	original.Chat.Timeout = 3 * time.Second
	original.Content.Dir = "lessons"
	original.Content.Include = []string{"**/*.md", "extra/*.markdown"}
	original.Search.EmbeddingProvider = EmbeddingOllama
	original.UI.DefaultTheme = ThemeDark

	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, original.Server.Port, loaded.Server.Port)
	assert.Equal(t, original.Chat.BaseURL, loaded.Chat.BaseURL)
	assert.Equal(t, original.Chat.DefaultBaseURLs, loaded.Chat.DefaultBaseURLs)
	assert.Equal(t, original.Chat.Timeout, loaded.Chat.Timeout)
	assert.Equal(t, original.Content.Include, loaded.Content.Include)
	assert.Equal(t, EmbeddingOllama, loaded.Search.EmbeddingProvider)
	assert.Equal(t, "nomic-embed-text", loaded.Search.Model())
	assert.Equal(t, ThemeDark, loaded.UI.DefaultTheme)
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")
	require.NoError(t, DefaultConfig().Save(path))

	t.Setenv("NETCOURSE_CHAT__BASE_URL", "http://10.0.0.5:5000")
	t.Setenv("NETCOURSE_SERVER__PORT", "9191")
	t.Setenv("NETCOURSE_CHAT__TIMEOUT", "5s")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:5000", loaded.Chat.BaseURL)
	assert.Equal(t, 9191, loaded.Server.Port)
	assert.Equal(t, 5*time.Second, loaded.Chat.Timeout)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("NETCOURSE_CHAT__BASE_URL=http://dotenv.local:5000\n"), 0o644))

	// Make sure the variable is unset for this test and restored afterwards.
	t.Setenv("NETCOURSE_CHAT__BASE_URL", "")
	os.Unsetenv("NETCOURSE_CHAT__BASE_URL")

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), envPath))

	cfg, err := Load(filepath.Join(dir, "none.yml"))
	require.NoError(t, err)
	assert.Equal(t, "http://dotenv.local:5000", cfg.Chat.BaseURL)
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"NETCOURSE_CHAT__BASE_URL":          "chat.base_url",
		"NETCOURSE_SERVER__PORT":            "server.port",
		"NETCOURSE_UI__DEFAULT_THEME":       "ui.default_theme",
		"NETCOURSE_SEARCH__EMBEDDING_MODEL": "search.embedding_model",
	}
	for in, want := range tests {
		assert.Equal(t, want, envKey(in), in)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"huge port", func(c *Config) { c.Server.Port = 70000 }},
		{"base url without scheme", func(c *Config) { c.Chat.BaseURL = "localhost:5000" }},
		{"base url ftp", func(c *Config) { c.Chat.BaseURL = "ftp://example.com" }},
		{"bad fallback url", func(c *Config) { c.Chat.DefaultBaseURLs = []string{"http://"} }},
		{"zero timeout", func(c *Config) { c.Chat.Timeout = 0 }},
		{"negative rate limit", func(c *Config) { c.Chat.RateLimitRPM = -1 }},
		{"negative history", func(c *Config) { c.Chat.MaxHistory = -1 }},
		{"bad terminal url", func(c *Config) { c.Terminal.URL = "not a url" }},
		{"unknown embedding provider", func(c *Config) { c.Search.EmbeddingProvider = "cohere" }},
		{"unknown log level", func(c *Config) { c.Log.Level = "trace" }},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }},
		{"unknown theme", func(c *Config) { c.UI.DefaultTheme = "solarized" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestAPIKeyEnvVar(t *testing.T) {
	tests := []struct {
		provider EmbeddingProvider
		want     string
	}{
		{EmbeddingOpenAI, "OPENAI_API_KEY"},
		{EmbeddingOllama, ""},
		{EmbeddingNone, ""},
	}
	for _, tt := range tests {
		got := APIKeyEnvVar(tt.provider)
		if got != tt.want {
			t.Errorf("APIKeyEnvVar(%q) = %q, want %q", tt.provider, got, tt.want)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"http://localhost:5000", []string{"http://localhost:5000"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, splitAndTrim(tt.input), tt.input)
	}
}
