// Package ontology holds the authoritative in-memory repository of classes,
// properties, relationships, and domains, with store-level referential
// integrity and an acyclic super/sub-class relation.
package ontology

import "time"

// Provenance records where a model element came from.
type Provenance string

const (
	// ProvenanceManual marks elements authored directly.
	ProvenanceManual Provenance = "manual"

	// ProvenanceInferred marks elements derived from other elements.
	ProvenanceInferred Provenance = "inferred"

	// ProvenanceExtracted marks elements produced by corpus analysis.
	ProvenanceExtracted Provenance = "extracted"
)

// Metadata tracks lifecycle and origin of a model element.
type Metadata struct {
	Created    time.Time  `json:"created"`
	Modified   time.Time  `json:"modified"`
	Confidence float64    `json:"confidence"`
	Provenance Provenance `json:"provenance"`
}

// Class is a formally registered concept.
type Class struct {
	// ID is the slug derived from Name.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Description is optional prose.
	Description string `json:"description,omitempty"`

	// Kind carries the extracted concept kind when known.
	Kind string `json:"kind,omitempty"`

	// SuperClasses and SubClasses are sets of class ids. The relation is a
	// DAG; SubClasses is maintained by the store as the exact inverse of
	// SuperClasses references.
	SuperClasses []string `json:"super_classes,omitempty"`
	SubClasses   []string `json:"sub_classes,omitempty"`

	// Properties lists property ids applying to this class.
	Properties []string `json:"properties,omitempty"`

	// Constraints are class-level constraints checked by the validator.
	Constraints []Constraint `json:"constraints,omitempty"`

	// Instances lists document ids treated as members.
	Instances []string `json:"instances,omitempty"`

	Metadata Metadata `json:"metadata"`
}

// ConstraintType selects how a constraint is evaluated.
type ConstraintType string

const (
	// ConstraintCardinality bounds instance counts.
	ConstraintCardinality ConstraintType = "cardinality"

	// ConstraintValue checks a value expression against the class.
	ConstraintValue ConstraintType = "value"

	// ConstraintLogical checks a boolean expression against the class.
	ConstraintLogical ConstraintType = "logical"
)

// ConstraintSeverity routes a failed constraint to errors or warnings.
type ConstraintSeverity string

const (
	// ConstraintError reports failures as validation errors.
	ConstraintError ConstraintSeverity = "error"

	// ConstraintWarning reports failures as validation warnings.
	ConstraintWarning ConstraintSeverity = "warning"
)

// Constraint is a class-level rule evaluated during validation. Value and
// logical constraints carry a CEL expression over the class snapshot.
type Constraint struct {
	ID         string             `json:"id"`
	Type       ConstraintType     `json:"type"`
	Severity   ConstraintSeverity `json:"severity"`
	Message    string             `json:"message,omitempty"`
	Expression string             `json:"expression,omitempty"`

	// MinInstances/MaxInstances bound cardinality constraints. A nil
	// MaxInstances means unbounded.
	MinInstances int  `json:"min_instances,omitempty"`
	MaxInstances *int `json:"max_instances,omitempty"`
}

// PropertyType distinguishes datatype, object, and annotation properties.
type PropertyType string

const (
	// PropertyDatatype relates a class to a literal value.
	PropertyDatatype PropertyType = "datatype"

	// PropertyObject relates a class to another class.
	PropertyObject PropertyType = "object"

	// PropertyAnnotation attaches documentation-only values.
	PropertyAnnotation PropertyType = "annotation"
)

// Cardinality bounds how many values a property may take. Max nil means
// unbounded.
type Cardinality struct {
	Min int  `json:"min"`
	Max *int `json:"max,omitempty"`
}

// Property is a formal property definition.
type Property struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Domain      []string     `json:"domain,omitempty"`
	Range       []string     `json:"range,omitempty"`
	Type        PropertyType `json:"type"`
	Cardinality Cardinality  `json:"cardinality"`
	Constraints []Constraint `json:"constraints,omitempty"`
	Metadata    Metadata     `json:"metadata"`
}

// Relationship is a formal, store-resident relationship between classes.
type Relationship struct {
	ID            string            `json:"id"`
	Type          string            `json:"type"`
	Source        string            `json:"source"`
	Target        string            `json:"target"`
	Confidence    float64           `json:"confidence"`
	Bidirectional bool              `json:"bidirectional"`
	Properties    map[string]string `json:"properties,omitempty"`
	Metadata      Metadata          `json:"metadata"`
}

// Domain is a thematic grouping registered in the store.
type Domain struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Scope     string   `json:"scope,omitempty"`
	Concepts  []string `json:"concepts,omitempty"`
	Classes   []string `json:"classes,omitempty"`
	Coverage  float64  `json:"coverage"`
	Coherence float64  `json:"coherence"`
}

// Statistics summarises store contents for callers.
type Statistics struct {
	Classes       int     `json:"classes"`
	Properties    int     `json:"properties"`
	Relationships int     `json:"relationships"`
	Domains       int     `json:"domains"`
	Roots         int     `json:"roots"`
	MaxDepth      int     `json:"max_depth"`
	AvgBranching  float64 `json:"avg_branching"`
}
