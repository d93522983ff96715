// Package config holds the settings of a rest session.
//
// Settings come from command-line flags only: rest reads no configuration
// files and no environment variables. Unset values fall back to
// DefaultConfig.
package config
