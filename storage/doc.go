// Package storage defines the persistence interfaces for listings and
// cached embeddings, along with the MUS binary codecs for the stored types.
// The BadgerDB implementation lives in storage/badger.
package storage
