// Package badger implements the storage interfaces on BadgerDB.
//
// Listings are stored under content-hash keys derived from their URL, which
// makes upsert-by-URL a plain key write, with a per-platform index for
// listing scans. Embedding vectors live under a separate key prefix in the
// same database.
package badger
