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

package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds every tunable of the comparison pipeline. Zero values are
// filled in from Default by Load, so a config file only needs the keys it
// changes.
type Config struct {
	Database  Database  `toml:"database"`
	Scraper   Scraper   `toml:"scraper"`
	Embedding Embedding `toml:"embedding"`
	Filter    Filter    `toml:"filter"`
	Report    Report    `toml:"report"`
}

// Database configures listing and embedding persistence.
type Database struct {
	// Path is the BadgerDB directory. Ignored when InMemory is set.
	Path string `toml:"path"`

	// InMemory keeps all state in process memory, for tests and one-off
	// runs.
	InMemory bool `toml:"in_memory"`
}

// Scraper configures the marketplace scrapers.
type Scraper struct {
	UserAgent          string `toml:"user_agent"`
	PageTimeoutSeconds int    `toml:"page_timeout_seconds"`
	MaxRetries         int    `toml:"max_retries"`
	ChromePath         string `toml:"chrome_path"`
	SearchLimit        int    `toml:"search_limit"`
}

// Embedding configures the embedding model endpoint.
type Embedding struct {
	Host  string `toml:"host"`
	Model string `toml:"model"`
}

// Filter configures the semantic pre-filter.
type Filter struct {
	Threshold          float64 `toml:"threshold"`
	ExcludeAccessories bool    `toml:"exclude_accessories"`
	MaxResults         int     `toml:"max_results"`
}

// Report configures result output.
type Report struct {
	// CSVPath, when set, receives a CSV copy of every comparison.
	CSVPath string `toml:"csv_path"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Database: Database{
			Path: "pricelens.db",
		},
		Scraper: Scraper{
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
				"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			PageTimeoutSeconds: 60,
			MaxRetries:         3,
			SearchLimit:        20,
		},
		Embedding: Embedding{
			Host:  "http://localhost:11434/v1",
			Model: "embeddinggemma",
		},
		Filter: Filter{
			Threshold:          0.80,
			ExcludeAccessories: true,
		},
	}
}

// Load reads a TOML config file over the defaults. An empty path returns
// the defaults unchanged; a missing or malformed file is an error, since a
// path that was asked for but not honored hides misconfiguration.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	if !c.Database.InMemory && c.Database.Path == "" {
		return ErrNoDatabasePath
	}
	if c.Scraper.PageTimeoutSeconds <= 0 {
		return ErrInvalidTimeout
	}
	if c.Scraper.MaxRetries <= 0 {
		return ErrInvalidRetries
	}
	if c.Scraper.SearchLimit <= 0 {
		return ErrInvalidSearchLimit
	}
	if c.Filter.Threshold < 0 || c.Filter.Threshold > 1 {
		return ErrInvalidThreshold
	}
	if c.Embedding.Host == "" {
		return ErrNoEmbeddingHost
	}
	if c.Embedding.Model == "" {
		return ErrNoEmbeddingModel
	}
	return nil
}
