// Package config loads tool configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/galaxydraft/internal/draft"
)

// Config represents the complete tool configuration. Every block is
// optional; missing blocks and fields fall back to defaults.
type Config struct {
	Draft     *DraftSettings     `hcl:"draft,block"`
	Rebalance *RebalanceSettings `hcl:"rebalance,block"`
	History   *HistorySettings   `hcl:"history,block"`
	Log       *LogSettings       `hcl:"log,block"`
}

// DraftSettings controls slice generation
type DraftSettings struct {
	Players       int `hcl:"players,optional"`
	RedsPerSlice  int `hcl:"reds_per_slice,optional"`
	BluesPerSlice int `hcl:"blues_per_slice,optional"`
	Retries       int `hcl:"retries,optional"`
	GlobalRetries int `hcl:"global_retries,optional"`
}

// RebalanceSettings controls the slice value floors
type RebalanceSettings struct {
	MinTotal           float64  `hcl:"min_total,optional"`
	MinEffResources    *float64 `hcl:"min_eff_resources,optional"`
	MinEffInfluence    *float64 `hcl:"min_eff_influence,optional"`
	MinStrictResources *float64 `hcl:"min_strict_resources,optional"`
	MinStrictInfluence *float64 `hcl:"min_strict_influence,optional"`
	MaxIterations      int      `hcl:"max_iterations,optional"`
}

// HistorySettings controls the local draft database
type HistorySettings struct {
	Enabled bool   `hcl:"enabled,optional"`
	Path    string `hcl:"path,optional"`
}

// LogSettings contains logging configuration
type LogSettings struct {
	Level string `hcl:"level,optional"`
}

// Default returns the default configuration
func Default() *Config {
	defaults := draft.DefaultConfig()
	return &Config{
		Draft: &DraftSettings{
			Players:       defaults.Options.Slices,
			RedsPerSlice:  defaults.Options.RedsPerSlice,
			BluesPerSlice: defaults.Options.BluesPerSlice,
			Retries:       defaults.Options.Retries,
			GlobalRetries: defaults.GlobalRetries,
		},
		Rebalance: &RebalanceSettings{
			MinTotal:      defaults.Rebalance.MinTotal,
			MaxIterations: defaults.Rebalance.MaxIterations,
		},
		History: &HistorySettings{
			Enabled: true,
			Path:    "galaxydraft.db",
		},
		Log: &LogSettings{
			Level: "info",
		},
	}
}

// Load loads configuration from an HCL file, returning defaults when
// the file does not exist
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

// applyDefaults fills missing blocks and zero-valued fields.
func (c *Config) applyDefaults() {
	defaults := Default()
	if c.Draft == nil {
		c.Draft = defaults.Draft
	}
	if c.Rebalance == nil {
		c.Rebalance = defaults.Rebalance
	}
	if c.History == nil {
		c.History = defaults.History
	}
	if c.Log == nil {
		c.Log = defaults.Log
	}

	if c.Draft.Players == 0 {
		c.Draft.Players = defaults.Draft.Players
	}
	if c.Draft.RedsPerSlice == 0 {
		c.Draft.RedsPerSlice = defaults.Draft.RedsPerSlice
	}
	if c.Draft.BluesPerSlice == 0 {
		c.Draft.BluesPerSlice = defaults.Draft.BluesPerSlice
	}
	if c.Draft.Retries == 0 {
		c.Draft.Retries = defaults.Draft.Retries
	}
	if c.Draft.GlobalRetries == 0 {
		c.Draft.GlobalRetries = defaults.Draft.GlobalRetries
	}
	if c.Rebalance.MinTotal == 0 {
		c.Rebalance.MinTotal = defaults.Rebalance.MinTotal
	}
	if c.Rebalance.MaxIterations == 0 {
		c.Rebalance.MaxIterations = defaults.Rebalance.MaxIterations
	}
	if c.History.Path == "" {
		c.History.Path = defaults.History.Path
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// DraftConfig converts the file settings into the pipeline config.
func (c *Config) DraftConfig() draft.Config {
	return draft.Config{
		Options: draft.Options{
			Slices:        c.Draft.Players,
			RedsPerSlice:  c.Draft.RedsPerSlice,
			BluesPerSlice: c.Draft.BluesPerSlice,
			Retries:       c.Draft.Retries,
		},
		Rebalance: draft.RebalanceConfig{
			MinTotal:           c.Rebalance.MinTotal,
			MinEffResources:    c.Rebalance.MinEffResources,
			MinEffInfluence:    c.Rebalance.MinEffInfluence,
			MinStrictResources: c.Rebalance.MinStrictResources,
			MinStrictInfluence: c.Rebalance.MinStrictInfluence,
			MaxIterations:      c.Rebalance.MaxIterations,
		},
		GlobalRetries: c.Draft.GlobalRetries,
	}
}
