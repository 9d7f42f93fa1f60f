// Package config defines the application configuration structure and
// loading. Configuration comes from defaults, an optional config.yaml and
// TPREP_-prefixed environment variables, in increasing order of precedence,
// and is validated before use.
package config
