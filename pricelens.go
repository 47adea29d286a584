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

package pricelens

import (
	"log/slog"
	"time"

	"github.com/pricelens/pricelens/ai"
	"github.com/pricelens/pricelens/ai/openai"
	"github.com/pricelens/pricelens/compare"
	"github.com/pricelens/pricelens/config"
	"github.com/pricelens/pricelens/match"
	"github.com/pricelens/pricelens/scrape"
	"github.com/pricelens/pricelens/scrape/amazon"
	"github.com/pricelens/pricelens/scrape/flipkart"
	"github.com/pricelens/pricelens/semantic"
	"github.com/pricelens/pricelens/storage"
	"github.com/pricelens/pricelens/storage/badger"
)

// App owns the long-lived resources of a pricelens run: the storage
// backend, its repositories and the embedding provider. Pipelines are
// created per comparison from these shared pieces.
type App struct {
	cfg        config.Config
	backend    *badger.Backend
	listings   storage.ListingRepository
	embedCache storage.EmbeddingCache
	provider   ai.EmbeddingProvider
	logger     *slog.Logger
}

// AppOption configures an App.
type AppOption func(*appOptions)

type appOptions struct {
	provider ai.EmbeddingProvider
}

// WithProvider overrides the embedding provider. Tests use this to supply
// a mock instead of a live model endpoint.
func WithProvider(provider ai.EmbeddingProvider) AppOption {
	return func(o *appOptions) {
		o.provider = provider
	}
}

// NewApp opens storage and the embedding provider for the given
// configuration.
func NewApp(cfg config.Config, opts ...AppOption) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &appOptions{}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(cfg.Database.Path, cfg.Database.InMemory)
	if err != nil {
		return nil, err
	}

	listings, err := badger.NewListingRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	embedCache, err := badger.NewEmbeddingCache(backend)
	if err != nil {
		listings.Close()
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(ai.NewConfig(
			ai.WithHost(cfg.Embedding.Host),
			ai.WithModel(cfg.Embedding.Model),
		))
		if err != nil {
			embedCache.Close()
			listings.Close()
			backend.Close()
			return nil, err
		}
	}

	return &App{
		cfg:        cfg,
		backend:    backend,
		listings:   listings,
		embedCache: embedCache,
		provider:   provider,
		logger:     slog.Default(),
	}, nil
}

// Close releases the provider, repositories and storage backend.
func (a *App) Close() error {
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing embedding provider", "err", err)
	}

	if err := a.embedCache.Close(); err != nil {
		a.logger.Error("error closing embedding cache", "err", err)
		return err
	}
	if err := a.listings.Close(); err != nil {
		a.logger.Error("error closing listing repository", "err", err)
		return err
	}

	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing storage backend", "err", err)
		return err
	}
	return nil
}

// ListingRepository returns the persistent listing store.
func (a *App) ListingRepository() storage.ListingRepository {
	return a.listings
}

// EmbeddingCache returns the persistent embedding cache.
func (a *App) EmbeddingCache() storage.EmbeddingCache {
	return a.embedCache
}

// Config returns the configuration the App was opened with.
func (a *App) Config() config.Config {
	return a.cfg
}

// NewComparePipeline assembles a comparison pipeline from the App's shared
// resources: browser-backed scrapers for both marketplaces, the semantic
// filter over a cached embedder, the matcher, and listing persistence.
// Options given here are applied after the App's own defaults, so callers
// can override any of them.
func (a *App) NewComparePipeline(opts ...compare.Option) (*compare.Pipeline, error) {
	embedder, err := semantic.NewCachedEmbedder(a.provider.Embedder(), a.embedCache)
	if err != nil {
		return nil, err
	}

	filter, err := semantic.NewFilter(embedder)
	if err != nil {
		return nil, err
	}

	matcher, err := match.NewMatcher()
	if err != nil {
		return nil, err
	}

	scrapeCfg := a.scrapeConfig()
	defaults := []compare.Option{
		compare.WithListingRepository(a.listings),
		compare.WithSearchLimit(a.cfg.Scraper.SearchLimit),
		compare.WithFilterOptions(semantic.FilterOptions{
			Threshold:          a.cfg.Filter.Threshold,
			ExcludeAccessories: a.cfg.Filter.ExcludeAccessories,
			MaxResults:         a.cfg.Filter.MaxResults,
		}),
	}

	return compare.NewPipeline(
		amazon.New(scrapeCfg),
		flipkart.New(scrapeCfg),
		filter,
		matcher,
		append(defaults, opts...)...,
	)
}

func (a *App) scrapeConfig() scrape.Config {
	cfg := scrape.DefaultConfig()
	if a.cfg.Scraper.UserAgent != "" {
		cfg.UserAgent = a.cfg.Scraper.UserAgent
	}
	if a.cfg.Scraper.PageTimeoutSeconds > 0 {
		cfg.PageTimeout = time.Duration(a.cfg.Scraper.PageTimeoutSeconds) * time.Second
	}
	if a.cfg.Scraper.MaxRetries > 0 {
		cfg.MaxRetries = a.cfg.Scraper.MaxRetries
	}
	cfg.ChromePath = a.cfg.Scraper.ChromePath
	return cfg
}
