package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/pricelens/pricelens/storage"
)

// EmbeddingCache implements storage.EmbeddingCache for BadgerDB.
// Vectors are keyed by the content hash of their source text.
type EmbeddingCache struct {
	backend *Backend
}

var _ storage.EmbeddingCache = (*EmbeddingCache)(nil)

// NewEmbeddingCache creates a new EmbeddingCache.
func NewEmbeddingCache(backend *Backend) (*EmbeddingCache, error) {
	return &EmbeddingCache{backend: backend}, nil
}

// Close releases cache resources.
func (c *EmbeddingCache) Close() error {
	return nil
}

// GetEmbedding returns the cached vector for the text, or
// storage.ErrNotFound when the text has never been embedded.
func (c *EmbeddingCache) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	var vector []float32

	err := c.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeEmbeddingKey(text))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			vector, err = storage.UnmarshalVector(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return vector, nil
}

// PutEmbedding stores the vector for the text, replacing any previous entry.
func (c *EmbeddingCache) PutEmbedding(ctx context.Context, text string, vector []float32) error {
	return c.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeEmbeddingKey(text), storage.MarshalVector(vector)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
