package server

import (
	"net"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the server binds to. Empty binds all interfaces.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080" validate:"required,numeric"`
	// ReadTimeoutSeconds bounds reading a full request. Zero disables the limit.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"15" validate:"gte=0"`
	// WriteTimeoutSeconds bounds writing a response. Zero disables the limit.
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" default:"15" validate:"gte=0"`
}

// Address returns the host:port pair passed to the listener.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// ReadTimeout returns the configured read timeout.
func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the configured write timeout.
func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}
