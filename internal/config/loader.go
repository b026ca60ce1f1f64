package config

import "time"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (LoadWithOverrides, fed by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.Apply(config)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides. Nil fields are left
// untouched.
type ConfigOverrides struct {
	// Database overrides
	DBDir          *string
	DBFilename     *string
	DBQueryTimeout *time.Duration
	DBWriteTimeout *time.Duration

	// Server overrides
	ServerAddr      *string
	ShutdownTimeout *time.Duration

	// Validation overrides
	TextMaxLength *int
	StrictReorder *bool

	// Logging overrides
	LogLevel  *string
	LogFormat *string

	// Client overrides
	APIURL        *string
	ClientTimeout *time.Duration

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// Apply copies every set override onto config.
func (o *ConfigOverrides) Apply(config *Config) {
	if o.DBDir != nil {
		config.Database.Dir = *o.DBDir
	}
	if o.DBFilename != nil {
		config.Database.Filename = *o.DBFilename
	}
	if o.DBQueryTimeout != nil {
		config.Database.QueryTimeout = *o.DBQueryTimeout
	}
	if o.DBWriteTimeout != nil {
		config.Database.WriteTimeout = *o.DBWriteTimeout
	}

	if o.ServerAddr != nil {
		config.Server.Addr = *o.ServerAddr
	}
	if o.ShutdownTimeout != nil {
		config.Server.ShutdownTimeout = *o.ShutdownTimeout
	}

	if o.TextMaxLength != nil {
		config.Validation.TextMaxLength = *o.TextMaxLength
	}
	if o.StrictReorder != nil {
		config.Validation.StrictReorder = *o.StrictReorder
	}

	if o.LogLevel != nil {
		config.Logging.Level = *o.LogLevel
	}
	if o.LogFormat != nil {
		config.Logging.Format = *o.LogFormat
	}

	if o.APIURL != nil {
		config.Client.BaseURL = *o.APIURL
	}
	if o.ClientTimeout != nil {
		config.Client.Timeout = *o.ClientTimeout
	}

	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}
}
