// Package embeddings turns lesson text into vectors for semantic search.
package embeddings

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/netcourse/netcourse/internal/config"
)

// Embedder defines the interface for generating text embeddings.
type Embedder interface {
	// Embed generates embeddings for one or more texts.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the number of dimensions in the embedding vectors.
	Dimensions() int

	// Name returns the name/identifier of the embedding model.
	Name() string
}

// ErrDisabled is returned by New when no embedding provider is configured.
var ErrDisabled = errors.New("lesson search is disabled: no embedding provider configured")

// New builds the embedder selected by the search configuration.
func New(cfg config.SearchConfig) (Embedder, error) {
	switch cfg.EmbeddingProvider {
	case config.EmbeddingNone:
		return nil, ErrDisabled
	case config.EmbeddingOpenAI:
		env := config.APIKeyEnvVar(config.EmbeddingOpenAI)
		apiKey := os.Getenv(env)
		if apiKey == "" {
			return nil, fmt.Errorf("%s environment variable is required for OpenAI embeddings", env)
		}
		return NewOpenAIEmbedder(apiKey, OpenAIModel(cfg.Model())), nil
	case config.EmbeddingOllama:
		return NewOllamaEmbedder(cfg.Model(), ollamaDimensions(cfg.Model()), cfg.OllamaURL), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.EmbeddingProvider)
	}
}
