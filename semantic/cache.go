package semantic

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pricelens/pricelens/ai"
	"github.com/pricelens/pricelens/storage"
)

// CachedEmbedder wraps an ai.Embedder with a persistent vector cache, so a
// title or query embedded once never hits the model again. Cache failures
// degrade to a model call; they never fail the embedding.
type CachedEmbedder struct {
	inner  ai.Embedder
	cache  storage.EmbeddingCache
	logger *slog.Logger
}

var _ ai.Embedder = (*CachedEmbedder)(nil)

// NewCachedEmbedder wraps inner with the given cache.
func NewCachedEmbedder(inner ai.Embedder, cache storage.EmbeddingCache) (*CachedEmbedder, error) {
	if inner == nil {
		return nil, ErrNilEmbedder
	}
	if cache == nil {
		return nil, ErrNilCache
	}
	return &CachedEmbedder{
		inner:  inner,
		cache:  cache,
		logger: slog.Default().With("component", "cached-embedder"),
	}, nil
}

// EmbedText returns the cached vector for the text when present, otherwise
// embeds through the inner embedder and stores the result.
func (c *CachedEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vector, err := c.cache.GetEmbedding(ctx, text)
	if err == nil {
		return vector, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		c.logger.Warn("embedding cache read failed", "err", err)
	}

	vector, err = c.inner.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}

	if err := c.cache.PutEmbedding(ctx, text, vector); err != nil {
		c.logger.Warn("embedding cache write failed", "err", err)
	}
	return vector, nil
}

// EmbedTexts embeds each text through EmbedText so cache hits skip the
// model individually.
func (c *CachedEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vector, err := c.EmbedText(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = vector
	}
	return vectors, nil
}
