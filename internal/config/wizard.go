package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to netcourse! Let's configure the course server.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Backend address.
	baseURLPrompt := promptui.Prompt{
		Label:   "LLM backend base URL (blank to use only the local defaults)",
		Default: os.Getenv(EnvPrefix + "CHAT__BASE_URL"),
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			return validateHTTPURL(strings.TrimSpace(s))
		},
	}
	baseURL, err := baseURLPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("backend url: %w", err)
	}
	cfg.Chat.BaseURL = strings.TrimSpace(baseURL)

	// 2. Fallback list.
	fallbackPrompt := promptui.Prompt{
		Label:   "Local fallback URLs (comma-separated)",
		Default: strings.Join(cfg.Chat.BaseURLs(), ","),
	}
	fallbackStr, err := fallbackPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("fallback urls: %w", err)
	}
	cfg.Chat.DefaultBaseURLs = splitAndTrim(fallbackStr)

	// 3. Listen port.
	portPrompt := promptui.Prompt{
		Label:   "Port for the course server",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 4. Theme.
	themePrompt := promptui.Select{
		Label: "Default theme",
		Items: []string{string(ThemeLight), string(ThemeDark)},
	}
	_, themeStr, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	cfg.UI.DefaultTheme = Theme(themeStr)

	// 5. Lesson search.
	searchPrompt := promptui.Select{
		Label: "Lesson search embeddings",
		Items: []string{
			"none   — disable semantic lesson search",
			"openai — text-embedding-3-small",
			"ollama — nomic-embed-text on a local Ollama",
		},
	}
	searchIdx, _, err := searchPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("search selection: %w", err)
	}
	providers := []EmbeddingProvider{EmbeddingNone, EmbeddingOpenAI, EmbeddingOllama}
	cfg.Search.EmbeddingProvider = providers[searchIdx]

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if envVar := APIKeyEnvVar(cfg.Search.EmbeddingProvider); envVar != "" && os.Getenv(envVar) == "" {
		fmt.Printf("\nNote: Set %s in your environment before running netcourse index.\n", envVar)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
