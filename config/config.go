// Package config provides configuration loading and management for the
// ontology engine.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/ontograph/export"
	"github.com/c360studio/ontograph/extract"
	"github.com/c360studio/ontograph/hierarchy"
	"github.com/c360studio/ontograph/validate"
)

// Config represents the complete engine configuration.
type Config struct {
	Extraction extract.Config   `yaml:"extraction"`
	Hierarchy  hierarchy.Config `yaml:"hierarchy"`
	Validation validate.Config  `yaml:"validation"`
	Export     ExportConfig     `yaml:"export"`
}

// ExportConfig configures RDF export defaults.
type ExportConfig struct {
	// Format is the default serialization format.
	Format export.Format `yaml:"format"`
	// Profile is the default ontology alignment profile.
	Profile export.Profile `yaml:"profile"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Extraction: extract.DefaultConfig(),
		Hierarchy:  hierarchy.DefaultConfig(),
		Validation: validate.DefaultConfig(),
		Export: ExportConfig{
			Format:  export.FormatTurtle,
			Profile: export.ProfileSKOS,
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Extraction.Validate(); err != nil {
		return fmt.Errorf("extraction: %w", err)
	}
	if err := c.Hierarchy.Validate(); err != nil {
		return fmt.Errorf("hierarchy: %w", err)
	}
	if err := c.Validation.Validate(); err != nil {
		return fmt.Errorf("validation: %w", err)
	}
	if _, ok := export.GetFormatInfo(c.Export.Format); !ok {
		return fmt.Errorf("export: unknown format %q", c.Export.Format)
	}
	if _, ok := export.Profiles[c.Export.Profile]; !ok {
		return fmt.Errorf("export: unknown profile %q", c.Export.Profile)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file layered over defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	mergeExtraction(&c.Extraction, other.Extraction)
	mergeHierarchy(&c.Hierarchy, other.Hierarchy)
	mergeValidation(&c.Validation, other.Validation)

	if other.Export.Format != "" {
		c.Export.Format = other.Export.Format
	}
	if other.Export.Profile != "" {
		c.Export.Profile = other.Export.Profile
	}
}

func mergeExtraction(dst *extract.Config, src extract.Config) {
	if src.MinTermLength != 0 {
		dst.MinTermLength = src.MinTermLength
	}
	if src.MaxPhraseWords != 0 {
		dst.MaxPhraseWords = src.MaxPhraseWords
	}
	if src.MinTermFrequency != 0 {
		dst.MinTermFrequency = src.MinTermFrequency
	}
	if src.MinPhraseFrequency != 0 {
		dst.MinPhraseFrequency = src.MinPhraseFrequency
	}
	if src.MinSentenceChars != 0 {
		dst.MinSentenceChars = src.MinSentenceChars
	}
	if src.MinStrength != 0 {
		dst.MinStrength = src.MinStrength
	}
	if src.ConsolidationStep != 0 {
		dst.ConsolidationStep = src.ConsolidationStep
	}
}

func mergeHierarchy(dst *hierarchy.Config, src hierarchy.Config) {
	if src.SpecificityLow != 0 {
		dst.SpecificityLow = src.SpecificityLow
	}
	if src.SpecificityHigh != 0 {
		dst.SpecificityHigh = src.SpecificityHigh
	}
	if src.MinParentScore != 0 {
		dst.MinParentScore = src.MinParentScore
	}
	if src.MaxDepth != 0 {
		dst.MaxDepth = src.MaxDepth
	}
	if src.MaxBranching != 0 {
		dst.MaxBranching = src.MaxBranching
	}
	if src.OrphanConfidence != 0 {
		dst.OrphanConfidence = src.OrphanConfidence
	}
}

func mergeValidation(dst *validate.Config, src validate.Config) {
	if src.MaxDepth != 0 {
		dst.MaxDepth = src.MaxDepth
	}
	if src.MaxBranching != 0 {
		dst.MaxBranching = src.MaxBranching
	}
	if src.MaxRoots != 0 {
		dst.MaxRoots = src.MaxRoots
	}
	if src.SimilarityThreshold != 0 {
		dst.SimilarityThreshold = src.SimilarityThreshold
	}
	if len(src.ContradictoryPairs) > 0 {
		dst.ContradictoryPairs = src.ContradictoryPairs
	}
}
