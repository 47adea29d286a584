// Package ai provides abstractions for the embedding services used by
// Pricelens.
//
// The semantic filtering layer depends on the Embedder interface rather
// than any concrete model client, so providers can be swapped without
// touching the matching logic. Two implementation sub-packages exist:
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external services
//
// Public constructors (openai.NewProvider, openai.NewEmbedder) return
// interface types to enforce the abstraction. The mock constructors return
// concrete types so tests can inject behavior via function fields and
// assert on call counts.
package ai
