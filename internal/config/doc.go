// Package config loads KebabManager configuration from a JSON file with a
// KEBAB_* environment variable overlay on top. Defaults target a local
// in-memory run with no external services.
package config
