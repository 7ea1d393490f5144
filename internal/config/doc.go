// Package config defines the application configuration structure and
// loading logic. Configuration is read from environment variables with the
// TASKBOARD_ prefix, optionally merged with a config.yaml file, and
// validated before use.
package config
