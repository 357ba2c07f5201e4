package config

import (
	"fmt"

	"github.com/kbukum/flowkit/logger"
	"github.com/kbukum/flowkit/observability"
)

// Config is the runtime configuration for applications embedding flowkit.
type Config struct {
	Logging logger.Config              `yaml:"logging" mapstructure:"logging"`
	Tracing observability.TracerConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics observability.MeterConfig  `yaml:"metrics" mapstructure:"metrics"`
}

// ApplyDefaults fills unset fields with defaults.
func (c *Config) ApplyDefaults(serviceName string) {
	c.Logging.ApplyDefaults()
	if c.Tracing.ServiceName == "" {
		c.Tracing = observability.DefaultTracerConfig(serviceName)
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics = observability.DefaultMeterConfig(serviceName)
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("invalid logging config: %w", err)
	}
	return nil
}

// Bootstrap loads configuration for serviceName, applies defaults, and
// initializes the global logger. Tracer and meter initialization is left to
// the caller, since both need a context and a shutdown hook.
func Bootstrap(serviceName string, opts ...LoaderOption) (*Config, error) {
	var cfg Config
	if err := Load(serviceName, &cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults(serviceName)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Init(cfg.Logging)
	return &cfg, nil
}
