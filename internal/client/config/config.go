package config

import (
	"os"
	"time"
)

type Config struct {
	ServerEndpointAddr string
	AccessToken        string
	RequestTimeout     time.Duration
	AuditTimeout       time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 30 * time.Second
	c.AuditTimeout = 30 * time.Minute
}

func parseEnv(c *Config) {
	if v, ok := os.LookupEnv("AUDITCTL_ADDRESS"); ok && v != "" {
		c.ServerEndpointAddr = v
	}
	if v, ok := os.LookupEnv("AUDITCTL_TOKEN"); ok {
		c.AccessToken = v
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
