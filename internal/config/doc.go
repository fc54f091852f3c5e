// Package config loads and merges the application configuration from three
// sources (command-line flags, environment variables, and an optional JSON
// file), in that order of precedence. The merged result is an immutable
// [StructuredConfig] passed explicitly to every component at construction;
// no package reads configuration ambiently.
package config
