package validate

import "fmt"

// ContradictionPair names two relation types that cannot both hold between
// the same ordered (source, target) pair.
type ContradictionPair struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

// Config holds validator thresholds and the contradiction table.
type Config struct {
	// MaxDepth triggers a hierarchy-shape warning when exceeded.
	MaxDepth int `yaml:"max_depth"`

	// MaxBranching triggers a hierarchy-shape warning when the average
	// branching factor exceeds it.
	MaxBranching float64 `yaml:"max_branching"`

	// MaxRoots triggers a suggestion to introduce intermediate categories.
	MaxRoots int `yaml:"max_roots"`

	// SimilarityThreshold is the minimum weighted similarity at which two
	// orphaned classes earn a merge suggestion.
	SimilarityThreshold float64 `yaml:"similarity_threshold"`

	// ContradictoryPairs lists mutually exclusive relation type pairs.
	ContradictoryPairs []ContradictionPair `yaml:"contradictory_pairs"`
}

// DefaultConfig returns validator defaults.
func DefaultConfig() Config {
	return Config{
		MaxDepth:            8,
		MaxBranching:        12,
		MaxRoots:            5,
		SimilarityThreshold: 0.5,
		ContradictoryPairs: []ContradictionPair{
			{A: "is-a", B: "part-of"},
			{A: "similar-to", B: "different-from"},
			{A: "causes", B: "caused-by"},
			{A: "enables", B: "prevents"},
			{A: "depends-on", B: "independent-of"},
		},
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	if c.MaxBranching <= 0 {
		return fmt.Errorf("max_branching must be positive, got %f", c.MaxBranching)
	}
	if c.MaxRoots < 1 {
		return fmt.Errorf("max_roots must be positive, got %d", c.MaxRoots)
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity_threshold must be within [0,1], got %f", c.SimilarityThreshold)
	}
	return nil
}
