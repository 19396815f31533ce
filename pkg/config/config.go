package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config holds the service principal credentials and the Power BI endpoints.
type Config struct {
	ClientID      string `envconfig:"APP_ID"`
	ClientSecret  string `envconfig:"CLIENT_SECRET"`
	TenantID      string `envconfig:"TENANT_ID"`
	AuthorityHost string `envconfig:"PBI_AUTHORITY_HOST" default:"https://login.microsoftonline.com/"`
	Scope         string `envconfig:"PBI_SCOPE" default:"https://analysis.windows.net/powerbi/api/.default"`
	APIURL        string `envconfig:"PBI_API_URL" default:"https://api.powerbi.com/v1.0/myorg"`
}

// ParseConfig parses the configuration from the process environment, optionally
// loading an env file first. Credential fields may still be empty at this point,
// the caller is expected to overlay command line flags and call Validate.
func ParseConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, errors.Wrapf(err, "failed to load env file %s", envFile)
		}
	}
	c := new(Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return c, nil
}

// Validate checks that every credential field is set. This runs before any
// network call is made.
func (c *Config) Validate() error {
	if c.ClientID == "" {
		return errors.New("client ID is required")
	}
	if c.ClientSecret == "" {
		return errors.New("client secret is required")
	}
	if c.TenantID == "" {
		return errors.New("tenant ID is required")
	}
	return nil
}
