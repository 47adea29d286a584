// Package config loads pipeline settings from TOML files over built-in
// defaults.
package config
