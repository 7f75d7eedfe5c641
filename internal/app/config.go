// Package app loads configuration and assembles the application from the
// core infrastructure and the domain packages.
package app

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/m3rciful/trainbot/core/config"
	coredatabase "github.com/m3rciful/trainbot/core/database"
)

// WebConfig holds the companion JSON API settings.
type WebConfig struct {
	Listen string `yaml:"listen" envconfig:"WEB_LISTEN"`
}

// DialogConfig controls profile dialog sessions. A zero TTL keeps open
// dialogs until completion or /cancel.
type DialogConfig struct {
	TTLMinutes int `yaml:"ttl_minutes" envconfig:"DIALOG_TTL_MINUTES"`
}

// Config aggregates the core configuration with the bot-specific sections.
type Config struct {
	Core     coreconfig.Config   `yaml:",inline"`
	Database coredatabase.Config `yaml:"database"`
	Web      WebConfig           `yaml:"web"`
	Dialog   DialogConfig        `yaml:"dialog"`
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Core
}

// Load reads configuration from a YAML file and environment variables.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("app: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("app: parse config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("app: process env: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Core); err != nil {
		return nil, err
	}
	if cfg.Web.Listen == "" {
		cfg.Web.Listen = ":8080"
	}
	if cfg.Dialog.TTLMinutes < 0 {
		return nil, fmt.Errorf("app: dialog.ttl_minutes must be >= 0")
	}
	return &cfg, nil
}
