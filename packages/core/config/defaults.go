package config

import "time"

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Timeout:         30 * time.Second,
		FollowRedirects: BoolPtr(true),
		MaxRedirects:    10,
		ValidateSSL:     BoolPtr(true),
		Proxy:           "",
		AcceptAnyStatus: BoolPtr(false),
		NoColor:         BoolPtr(false),
		Verbose:         BoolPtr(false),
	}
}
