package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/poofware/pm-dashboard/internal/utils"
)

const (
	OrganizationName = utils.OrganizationName
	DefaultAppName   = "pm-dashboard"
)

// build-time override, set with -ldflags
var AppName string

type Config struct {
	OrganizationName string
	AppName          string

	APIBaseURL string        `env:"PMD_API_BASE_URL,required"`
	APITimeout time.Duration `env:"PMD_API_TIMEOUT" envDefault:"30s"`
	AppPort    string        `env:"PMD_APP_PORT" envDefault:"8085"`
	AppUrl     string        `env:"PMD_APP_URL" envDefault:"*"`
}

// LoadConfig reads the environment. It returns an error rather than exiting
// so the CLI can print usage.
func LoadConfig() (*Config, error) {
	appName := AppName
	if appName == "" {
		appName = DefaultAppName
	}
	utils.Logger.Debug("Loading config for app: ", appName)

	cfg := &Config{
		OrganizationName: OrganizationName,
		AppName:          appName,
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	utils.Logger.Debugf("Loaded config for %s (api=%s, timeout=%s)", cfg.AppName, cfg.APIBaseURL, cfg.APITimeout)
	return cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("PMD_API_BASE_URL %q is not an absolute URL", c.APIBaseURL)
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("PMD_API_TIMEOUT must be positive, got %s", c.APITimeout)
	}
	if c.AppPort == "" {
		return fmt.Errorf("PMD_APP_PORT must not be empty")
	}
	return nil
}

// ResolvedAppName is the app name used before config is loaded, e.g. for
// the logger prefix.
func ResolvedAppName() string {
	if AppName == "" {
		return DefaultAppName
	}
	return AppName
}
