package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// AnalyzerMode selects which Python metrics provider is used.
type AnalyzerMode string

const (
	AnalyzerAuto  AnalyzerMode = "auto"
	AnalyzerRich  AnalyzerMode = "rich"
	AnalyzerBasic AnalyzerMode = "basic"
)

// ValidAnalyzerModes enumerates all recognized analyzer modes.
var ValidAnalyzerModes = []AnalyzerMode{AnalyzerAuto, AnalyzerRich, AnalyzerBasic}

// DefaultWorkers is the number of files reviewed concurrently.
const DefaultWorkers = 4

// ProjectConfig holds project-level configuration loaded from .smartreview.yaml.
type ProjectConfig struct {
	ExcludePaths []string     `yaml:"exclude_paths" json:"exclude_paths,omitempty"`
	Workers      int          `yaml:"workers"       json:"workers,omitempty"`
	Analyzer     AnalyzerMode `yaml:"analyzer"      json:"analyzer,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Workers:  DefaultWorkers,
		Analyzer: AnalyzerAuto,
	}
}

// WithDefaults fills unset fields from DefaultConfig.
func (c ProjectConfig) WithDefaults() ProjectConfig {
	d := DefaultConfig()
	if c.Workers == 0 {
		c.Workers = d.Workers
	}
	if c.Analyzer == "" {
		c.Analyzer = d.Analyzer
	}
	return c
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be positive (received %d)", c.Workers)
	}

	if c.Analyzer != "" && !slices.Contains(ValidAnalyzerModes, c.Analyzer) {
		names := make([]string, len(ValidAnalyzerModes))
		for i, m := range ValidAnalyzerModes {
			names[i] = string(m)
		}
		return fmt.Errorf("unknown analyzer %q (valid: %s)", c.Analyzer, strings.Join(names, ", "))
	}

	for _, p := range c.ExcludePaths {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid exclude pattern %q", p)
		}
	}
	return nil
}
