package badger

import "github.com/pricelens/pricelens/storage"

// NewMemoryStores creates an in-memory listing repository and embedding
// cache for testing. Caller must close the repo, cache and backend when
// done.
func NewMemoryStores() (storage.ListingRepository, storage.EmbeddingCache, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, err
	}

	listings, err := NewListingRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, err
	}

	embeddings, err := NewEmbeddingCache(backend)
	if err != nil {
		listings.Close()
		backend.Close()
		return nil, nil, nil, err
	}

	return listings, embeddings, backend, nil
}
