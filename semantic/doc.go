// Package semantic pre-filters scraped listings with embedding similarity
// before the attribute-level matching runs.
//
// A Filter embeds the user query and each listing title through an injected
// ai.Embedder, keeps listings whose cosine similarity meets the threshold,
// and drops accessories, refurbished stock, bundles and warranty add-ons
// via a keyword denylist. The denylist runs first, so an accessory is
// excluded no matter how similar its title is to the query.
package semantic
