// Package config loads gateway configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config is the full gateway configuration. The ADH connection parameters
// match the environment the original deployment used; the rest tune the HTTP
// server and logging.
type Config struct {
	APIVersion   string `envconfig:"API_VERSION"`
	TenantID     string `envconfig:"TENANT_ID"`
	NamespaceID  string `envconfig:"NAMESPACE_ID"`
	ClientID     string `envconfig:"CLIENT_ID"`
	ClientSecret string `envconfig:"CLIENT_SECRET"`
	Resource     string `envconfig:"RESOURCE"`

	HTTPPort       int      `envconfig:"HTTP_PORT" default:"8000"`
	RequestTimeout int      `envconfig:"REQUEST_TIMEOUT" default:"30"`
	CORSOrigins    []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:3000"`
	LogLevel       string   `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty      bool     `envconfig:"LOG_PRETTY" default:"false"`
}

// Load reads configuration from the environment and validates the required
// connection parameters.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every missing required variable at once so a broken
// environment is fixed in one pass.
func (c *Config) Validate() error {
	required := []struct {
		name, value string
	}{
		{"API_VERSION", c.APIVersion},
		{"TENANT_ID", c.TenantID},
		{"RESOURCE", c.Resource},
		{"CLIENT_ID", c.ClientID},
		{"CLIENT_SECRET", c.ClientSecret},
		{"NAMESPACE_ID", c.NamespaceID},
	}

	var missing []string
	for _, v := range required {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
