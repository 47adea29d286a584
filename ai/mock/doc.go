// Package mock provides test doubles for the ai interfaces.
//
// The mocks generate deterministic embeddings by default and support
// behavior injection via function fields, so filtering logic can be tested
// without a running embedding service.
package mock
