// Package config loads, normalizes, and validates charkit configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// CHARKIT_CATALOG. The Config type gathers the output directory, keyboard
// catalog location, and extraction/matching knobs in one place so the
// commands never fall back to implicit working-directory state.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
