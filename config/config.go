// Package config loads the host-facing drainly settings.
package config

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/drainly/quota"
	"github.com/viant/drainly/weight"
	"gopkg.in/yaml.v3"
)

// Costs captures the storage weight a host charges around each run: one read
// to load the executor and one write to persist it back.
type Costs struct {
	Read  uint64 `yaml:"read" json:"read"`
	Write uint64 `yaml:"write" json:"write"`
}

// Config mirrors the drainly section of a host configuration file.
type Config struct {
	// Quota is the per-execution weight cap.
	Quota uint64 `yaml:"quota" json:"quota"`

	// Costs is the storage accounting applied by Service.Run.
	Costs Costs `yaml:"costs" json:"costs"`
}

// Default returns the built-in settings used when no configuration is
// supplied.
func Default() *Config {
	return &Config{Quota: 10}
}

// Load reads YAML from URL (any scheme afs understands, e.g. file, mem, s3)
// and overlays it on the defaults.  An empty URL yields the defaults only.
func Load(ctx context.Context, URL string) (*Config, error) {
	cfg := Default()
	if URL == "" {
		return cfg, nil
	}
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", URL, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", URL, err)
	}
	return cfg, nil
}

// Provider exposes the configured quota as a quota.Provider.
func (c *Config) Provider() quota.Provider {
	return quota.Fixed(c.Quota)
}

// ReadWeight returns the per-run storage read charge.
func (c *Config) ReadWeight() weight.Weight {
	return weight.Weight(c.Costs.Read)
}

// WriteWeight returns the per-run storage write charge.
func (c *Config) WriteWeight() weight.Weight {
	return weight.Weight(c.Costs.Write)
}
