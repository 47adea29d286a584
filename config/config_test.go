package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricelens.toml")
	content := `
[database]
in_memory = true

[filter]
threshold = 0.65
exclude_accessories = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Database.InMemory)
	assert.Equal(t, 0.65, cfg.Filter.Threshold)
	// Untouched sections keep their defaults.
	assert.Equal(t, Default().Scraper, cfg.Scraper)
	assert.Equal(t, Default().Embedding, cfg.Embedding)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[database\npath ="), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"no database path", func(c *Config) { c.Database.Path = "" }, ErrNoDatabasePath},
		{"in-memory needs no path", func(c *Config) {
			c.Database.Path = ""
			c.Database.InMemory = true
		}, nil},
		{"zero timeout", func(c *Config) { c.Scraper.PageTimeoutSeconds = 0 }, ErrInvalidTimeout},
		{"zero retries", func(c *Config) { c.Scraper.MaxRetries = 0 }, ErrInvalidRetries},
		{"zero search limit", func(c *Config) { c.Scraper.SearchLimit = 0 }, ErrInvalidSearchLimit},
		{"threshold above one", func(c *Config) { c.Filter.Threshold = 1.5 }, ErrInvalidThreshold},
		{"empty embedding host", func(c *Config) { c.Embedding.Host = "" }, ErrNoEmbeddingHost},
		{"empty embedding model", func(c *Config) { c.Embedding.Model = "" }, ErrNoEmbeddingModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
