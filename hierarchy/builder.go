package hierarchy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/ontograph/extract"
)

// Config holds hierarchy construction thresholds. The specificity bands are
// deliberately tunable; the stock 0.3/0.7 banding misclassifies
// domain-specific jargon on some corpora.
type Config struct {
	// SpecificityLow is the upper bound of the low band; concepts below it
	// attach directly to their kind parent.
	SpecificityLow float64 `yaml:"specificity_low"`

	// SpecificityHigh separates the mid and high bands.
	SpecificityHigh float64 `yaml:"specificity_high"`

	// MinParentScore is the lowest candidate-parent score accepted before
	// falling back to the kind parent.
	MinParentScore float64 `yaml:"min_parent_score"`

	// MaxDepth triggers an excessive-depth warning when exceeded.
	MaxDepth int `yaml:"max_depth"`

	// MaxBranching triggers an over-flat warning when the average
	// branching factor exceeds it.
	MaxBranching float64 `yaml:"max_branching"`

	// OrphanConfidence flags weakly placed leaves below this confidence.
	OrphanConfidence float64 `yaml:"orphan_confidence"`
}

// DefaultConfig returns hierarchy defaults.
func DefaultConfig() Config {
	return Config{
		SpecificityLow:   0.3,
		SpecificityHigh:  0.7,
		MinParentScore:   0.3,
		MaxDepth:         8,
		MaxBranching:     15,
		OrphanConfidence: 0.55,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.SpecificityLow < 0 || c.SpecificityLow > 1 {
		return fmt.Errorf("specificity_low must be within [0,1], got %f", c.SpecificityLow)
	}
	if c.SpecificityHigh < c.SpecificityLow || c.SpecificityHigh > 1 {
		return fmt.Errorf("specificity_high must be within [specificity_low,1], got %f", c.SpecificityHigh)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	return nil
}

// Builder assembles a taxonomy forest from concepts and relationships.
type Builder struct {
	cfg Config
}

// NewBuilder creates a hierarchy builder.
func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// Build runs the placement steps in order: explicit is-a wiring, kind
// parents with specificity-banded attachment, constituent-word attachment
// for multi-word concepts, then a kind-parent fallback. Every edge
// insertion is cycle-guarded; a rejected edge is skipped, never forced.
func (b *Builder) Build(concepts []extract.Concept, relationships []extract.Relationship) *Forest {
	forest := NewForest()

	byName := make(map[string]extract.Concept, len(concepts))
	maxFreq := 0
	docs := make(map[string]struct{})
	for _, c := range concepts {
		byName[c.Name] = c
		node := forest.AddNode(c.Name)
		node.Confidence = c.Confidence
		if c.Frequency > maxFreq {
			maxFreq = c.Frequency
		}
		for _, ctx := range c.Contexts {
			docs[ctx] = struct{}{}
		}
	}

	for _, c := range concepts {
		node := forest.Node(c.Name)
		node.Specificity = Specificity(
			len(strings.Fields(c.Name)), c.Frequency, len(c.Contexts), maxFreq, len(docs))
	}

	// Step 1: explicit is-a relationships become parent→child edges.
	for _, rel := range relationships {
		if rel.Type != "is-a" {
			continue
		}
		if forest.Node(rel.Source) == nil || forest.Node(rel.Target) == nil {
			continue
		}
		if forest.Node(rel.Source).Parent != "" {
			continue
		}
		// A rejected edge (cycle) is a no-op by design.
		_ = forest.AttachChild(rel.Target, rel.Source)
	}

	// Step 2: specificity-banded placement under kind parents or more
	// general concepts. Ordered walk keeps the result deterministic.
	ordered := make([]extract.Concept, len(concepts))
	copy(ordered, concepts)
	sort.Slice(ordered, func(i, j int) bool {
		si := forest.Node(ordered[i].Name).Specificity
		sj := forest.Node(ordered[j].Name).Specificity
		if si != sj {
			return si < sj
		}
		return ordered[i].Name < ordered[j].Name
	})

	for _, c := range ordered {
		node := forest.Node(c.Name)
		if node.Parent != "" {
			continue
		}
		if node.Specificity < b.cfg.SpecificityLow {
			b.attachToKind(forest, c)
			continue
		}
		if parent := b.bestParent(forest, byName, c); parent != "" {
			_ = forest.AttachChild(parent, c.Name)
		}
	}

	// Step 3: multi-word concepts attach to a constituent-word concept.
	for _, c := range concepts {
		node := forest.Node(c.Name)
		if node.Parent != "" {
			continue
		}
		words := strings.Fields(c.Name)
		if len(words) < 2 {
			continue
		}
		for _, w := range words {
			w = extract.Singularize(w)
			if w == c.Name {
				continue
			}
			if forest.Node(w) != nil {
				if err := forest.AttachChild(w, c.Name); err == nil {
					break
				}
			}
		}
	}

	// Remaining unparented concepts fall back to their kind parent.
	for _, c := range concepts {
		if forest.Node(c.Name).Parent == "" {
			b.attachToKind(forest, c)
		}
	}

	forest.ComputeDepths()
	return forest
}

// attachToKind synthesizes (or reuses) the abstract parent named after the
// concept's kind and attaches the concept beneath it.
func (b *Builder) attachToKind(forest *Forest, c extract.Concept) {
	kindName := string(c.Kind)
	if kindName == c.Name {
		return
	}
	parent := forest.AddNode(kindName)
	if parent.Parent == "" && len(parent.Children) == 0 && parent.Confidence == 0 {
		parent.Synthetic = true
	}
	_ = forest.AttachChild(kindName, c.Name)
}

// bestParent scores candidate parents from the next lower specificity band
// using shared-context overlap, substring containment, and relative
// frequency. Returns "" when nothing clears the threshold.
func (b *Builder) bestParent(forest *Forest, byName map[string]extract.Concept, child extract.Concept) string {
	childNode := forest.Node(child.Name)
	var bandLow, bandHigh float64
	if childNode.Specificity >= b.cfg.SpecificityHigh {
		bandLow, bandHigh = b.cfg.SpecificityLow, b.cfg.SpecificityHigh
	} else {
		bandLow, bandHigh = 0, b.cfg.SpecificityLow
	}

	bestName := ""
	bestScore := 0.0
	for _, node := range forest.Nodes() {
		if node.Name == child.Name || node.Synthetic {
			continue
		}
		if node.Specificity < bandLow || node.Specificity >= bandHigh {
			continue
		}
		candidate, ok := byName[node.Name]
		if !ok {
			continue
		}
		score := parentScore(candidate, child)
		if score > bestScore {
			bestScore = score
			bestName = node.Name
		}
	}

	if bestScore < b.cfg.MinParentScore {
		return ""
	}
	return bestName
}

// parentScore rates how well parent generalises child.
func parentScore(parent, child extract.Concept) float64 {
	overlap := contextOverlap(parent.Contexts, child.Contexts)

	containment := 0.0
	if strings.Contains(child.Name, parent.Name) {
		containment = 1.0
	}

	relFreq := 0.0
	if parent.Frequency+child.Frequency > 0 {
		relFreq = float64(parent.Frequency) / float64(parent.Frequency+child.Frequency)
	}

	return 0.4*overlap + 0.3*containment + 0.3*relFreq
}

// contextOverlap returns the fraction of the child's contexts shared with
// the parent.
func contextOverlap(parent, child []string) float64 {
	if len(child) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(parent))
	for _, p := range parent {
		set[p] = struct{}{}
	}
	shared := 0
	for _, c := range child {
		if _, ok := set[c]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(child))
}
