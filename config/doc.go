// Package config loads and validates the application configuration from a
// YAML file, with an environment override for the file location.
package config
