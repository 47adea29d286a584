// Copyright 2026 Pricelens Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package badger

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/pricelens/pricelens/core"
	"github.com/pricelens/pricelens/storage"
)

// ListingRepository implements storage.ListingRepository for BadgerDB.
type ListingRepository struct {
	backend *Backend
}

var _ storage.ListingRepository = (*ListingRepository)(nil)

// NewListingRepository creates a new ListingRepository.
func NewListingRepository(backend *Backend) (*ListingRepository, error) {
	return &ListingRepository{backend: backend}, nil
}

// Close releases repository resources.
func (r *ListingRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ListingRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// UpsertListings inserts or updates listings keyed by URL hash. A record
// whose URL is already stored keeps its InsertedAt; everything else is
// overwritten from the incoming record.
func (r *ListingRepository) UpsertListings(ctx context.Context, records ...*core.ListingRecord) ([]*core.ListingRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Truncated to the codec's timestamp resolution so a round-trip
		// through storage compares equal.
		now := time.Now().UTC().Truncate(time.Microsecond)

		for _, record := range records {
			if err := core.ValidateListingRecord(record); err != nil {
				return err
			}

			record.Id = core.IDFromContent(record.URL)
			key := makeListingKey(record.Id)

			old, err := r.readListing(tx, key)
			if err != nil {
				return err
			}

			if old != nil {
				record.InsertedAt = old.InsertedAt
			} else {
				record.InsertedAt = now
			}
			record.UpdatedAt = now

			if err := tx.Set(key, storage.MarshalListingRecord(record)); err != nil {
				return err
			}

			// The platform index entry is keyed by ID, so rewriting it on
			// update is a harmless no-op.
			platformKey := makeListingPlatformKey(record.Platform, record.Id)
			if err := tx.Set(platformKey, storage.MarshalID(record.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// GetListing retrieves a single listing by ID.
func (r *ListingRepository) GetListing(ctx context.Context, id core.ID) (*core.ListingRecord, error) {
	var record *core.ListingRecord

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		found, err := r.readListing(tx, makeListingKey(id))
		if err != nil {
			return err
		}
		if found == nil {
			return storage.ErrNotFound
		}
		record = found
		return nil
	}, false)

	return record, err
}

// GetListingByURL retrieves a listing by its URL. URLs map to IDs by
// content hash, so this is a direct key lookup, not a scan.
func (r *ListingRepository) GetListingByURL(ctx context.Context, url string) (*core.ListingRecord, error) {
	return r.GetListing(ctx, core.IDFromContent(url))
}

// GetListingsByPlatform retrieves all stored listings for one marketplace,
// most recently updated first.
func (r *ListingRepository) GetListingsByPlatform(ctx context.Context, platform core.Platform) ([]*core.ListingRecord, error) {
	var records []*core.ListingRecord

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialListingPlatformKey(platform)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			record, err := r.readListing(tx, makeListingKey(id))
			if err != nil {
				return err
			}
			if record == nil {
				// Dangling index entry; skip rather than fail the listing.
				continue
			}
			records = append(records, record)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(records, func(a, b *core.ListingRecord) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return records, nil
}

// DeleteListings removes listings and their index entries by ID.
func (r *ListingRepository) DeleteListings(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeListingKey(id)

			record, err := r.readListing(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
			if err := tx.Delete(makeListingPlatformKey(record.Platform, id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// ClearPlatform removes every stored listing for one marketplace.
func (r *ListingRepository) ClearPlatform(ctx context.Context, platform core.Platform) (int, error) {
	removed := 0

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialListingPlatformKey(platform)
		iter := tx.NewIterator(opts)

		var indexKeys [][]byte
		var ids []core.ID
		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				iter.Close()
				return err
			}
			indexKeys = append(indexKeys, iter.Item().KeyCopy(nil))
			ids = append(ids, id)
		}
		// The iterator must be closed before Commit; badger panics on a
		// commit with open iterators.
		iter.Close()

		for i, id := range ids {
			if err := tx.Delete(makeListingKey(id)); err != nil {
				return err
			}
			if err := tx.Delete(indexKeys[i]); err != nil {
				return err
			}
			removed++
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return 0, err
	}

	r.backend.logger.Info("cleared platform listings",
		"platform", platform, "removed", removed)
	return removed, nil
}

// readListing fetches and decodes a listing inside a transaction.
// Returns (nil, nil) when the key does not exist.
func (r *ListingRepository) readListing(tx *badger.Txn, key []byte) (*core.ListingRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var record *core.ListingRecord
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalListingRecord(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
