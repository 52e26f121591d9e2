package config

import "fmt"

// Config is the main configuration struct, loaded from YAML and overlaid
// with environment variables and flags.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
	Security SecurityConfig `yaml:"security"`
}

// ServerConfig holds listen address and storage settings.
type ServerConfig struct {
	Address string `yaml:"address"`
	Port    int    `yaml:"port"`
	DBPath  string `yaml:"db_path"`
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// SecurityConfig holds request-admission settings.
type SecurityConfig struct {
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig bounds per-client request rate.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// Addr returns the listen address in host:port form. An empty config
// yields ":8000".
func (c *Config) Addr() string {
	port := c.Server.Port
	if port == 0 {
		port = 8000
	}
	return fmt.Sprintf("%s:%d", c.Server.Address, port)
}
