package embeddings

import (
	"context"
	"errors"

	chromem "github.com/philippgille/chromem-go"
)

// ToChromemFunc adapts an Embedder to chromem's one-text-at-a-time signature.
func ToChromemFunc(e Embedder) chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		results, err := e.Embed(ctx, []string{text})
		if err != nil {
			return nil, err
		}
		if len(results) == 0 || len(results[0]) == 0 {
			return nil, errors.New("embedder returned no vector")
		}
		return results[0], nil
	}
}
