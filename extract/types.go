// Package extract derives concepts, relationships, and thematic domains from
// a corpus snapshot. All detection is deterministic: pattern tables and
// frequency counts only, so identical corpora yield identical results.
package extract

// Kind classifies what a concept denotes.
type Kind string

const (
	// KindEntity is a concrete thing or actor.
	KindEntity Kind = "entity"

	// KindProcess is an activity or transformation.
	KindProcess Kind = "process"

	// KindQuality is an attribute or measurable characteristic.
	KindQuality Kind = "quality"

	// KindAbstract is the fallback for ideas without stronger cues.
	KindAbstract Kind = "abstract"
)

// Concept is a named idea observed in the corpus.
type Concept struct {
	// Name is the canonical lower-cased term or phrase.
	Name string `json:"name"`

	// Kind is the inferred concept kind.
	Kind Kind `json:"kind"`

	// Frequency is the total occurrence count across the corpus.
	Frequency int `json:"frequency"`

	// Confidence in [0,1], derived from orthographic and structural cues.
	Confidence float64 `json:"confidence"`

	// Contexts lists the documents the concept was observed in, sorted.
	Contexts []string `json:"contexts"`
}

// Relationship is a consolidated, typed link between two concepts.
type Relationship struct {
	// Source and Target are concept names; Source appears first in the
	// observed sentences.
	Source string `json:"source"`
	Target string `json:"target"`

	// Type is the relation tag, e.g. "is-a" or "has-a".
	Type string `json:"type"`

	// Strength in [0,1]; accumulates across repeated observations.
	Strength float64 `json:"strength"`

	// Evidence holds one sentence snippet per observation.
	Evidence []string `json:"evidence"`

	// Bidirectional marks intrinsically symmetric relation types.
	Bidirectional bool `json:"bidirectional"`
}

// Domain is a thematic grouping of concepts.
type Domain struct {
	// ID is the slug identifier of the domain.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Scope describes what the domain covers.
	Scope string `json:"scope"`

	// Concepts lists member concept names, sorted.
	Concepts []string `json:"concepts"`

	// Coverage is the fraction of all concepts that belong to this domain.
	Coverage float64 `json:"coverage"`

	// Coherence in [0,1] estimates how thematically unified the members are.
	Coherence float64 `json:"coherence"`
}
