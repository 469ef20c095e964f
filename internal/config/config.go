// Package config holds process configuration for the simplecrud service.
package config

import (
	"net"

	"github.com/spf13/viper"
)

// Config holds all configuration for the simplecrud service
type Config struct {
	Host string
	Port string
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Host: "",
		Port: "8080",
	}
}

// FromViper builds a Config from bound flags and SIMPLECRUD_* environment
// variables, keeping defaults for anything unset.
func FromViper(v *viper.Viper) *Config {
	cfg := NewConfig()
	if host := v.GetString("host"); host != "" {
		cfg.Host = host
	}
	if port := v.GetString("port"); port != "" {
		cfg.Port = port
	}
	return cfg
}

// Addr renders the listen address for the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}
