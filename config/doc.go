// Package config loads flowkit runtime configuration (logging, tracing,
// metrics) from YAML files and environment variables.
//
// Precedence: environment variables override .env entries, which override
// the YAML file. File locations are searched in standard places or given
// explicitly via options.
//
//	cfg, err := config.Bootstrap("ingest",
//	    config.WithConfigFile("config.yml"))
package config
