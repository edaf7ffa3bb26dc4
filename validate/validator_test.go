package validate_test

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontograph/ontology"
	"github.com/c360studio/ontograph/validate"
)

func newValidator(t *testing.T, cfg validate.Config) *validate.Validator {
	t.Helper()
	v, err := validate.NewValidator(cfg, slog.Default())
	require.NoError(t, err)
	return v
}

func snapshotOf(classes ...ontology.Class) *ontology.Snapshot {
	snap := &ontology.Snapshot{
		Classes:       make(map[string]ontology.Class),
		Properties:    make(map[string]ontology.Property),
		Relationships: make(map[string]ontology.Relationship),
		Domains:       make(map[string]ontology.Domain),
	}
	for _, c := range classes {
		snap.Classes[c.ID] = c
	}
	return snap
}

func TestNewValidator_RejectsInvalidConfig(t *testing.T) {
	cfg := validate.DefaultConfig()
	cfg.MaxDepth = 0

	_, err := validate.NewValidator(cfg, nil)
	assert.Error(t, err)
}

func TestValidate_CleanOntologyIsValid(t *testing.T) {
	v := newValidator(t, validate.DefaultConfig())

	snap := snapshotOf(
		ontology.Class{ID: "animal", Name: "Animal", Description: "A living creature", SubClasses: []string{"dog"}},
		ontology.Class{ID: "dog", Name: "Dog", Description: "A domestic canine", SuperClasses: []string{"animal"}},
	)

	result := v.Validate(snap)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 8, result.RulesRun)
	assert.NotEmpty(t, result.ID)
	assert.False(t, result.CheckedAt.IsZero())
}

func TestValidate_DetectsSuperclassCycle(t *testing.T) {
	v := newValidator(t, validate.DefaultConfig())

	snap := snapshotOf(
		ontology.Class{ID: "alpha", Name: "Alpha", SuperClasses: []string{"beta"}},
		ontology.Class{ID: "beta", Name: "Beta", SuperClasses: []string{"alpha"}},
	)

	result := v.Validate(snap)
	assert.False(t, result.Valid)

	require.Len(t, result.Errors, 1)
	issue := result.Errors[0]
	assert.Equal(t, validate.TypeCircularDependency, issue.Type)
	assert.Equal(t, validate.SeverityCritical, issue.Severity)
	assert.Equal(t, "circular-dependency", issue.Rule)
	assert.ElementsMatch(t, []string{"alpha", "beta"}, issue.Elements)
	assert.NotEmpty(t, issue.Remediation)
}

func TestValidate_MissingSuperclassIsMajorNotCritical(t *testing.T) {
	v := newValidator(t, validate.DefaultConfig())

	snap := snapshotOf(
		ontology.Class{ID: "dog", Name: "Dog", SuperClasses: []string{"animal"}},
	)

	result := v.Validate(snap)
	assert.True(t, result.Valid, "major errors must not invalidate")

	require.NotEmpty(t, result.Errors)
	issue := result.Errors[0]
	assert.Equal(t, validate.TypeMissingReference, issue.Type)
	assert.Equal(t, validate.SeverityMajor, issue.Severity)
	assert.Contains(t, issue.Elements, "animal")
}

func TestValidate_PropertyDomainRangeChecks(t *testing.T) {
	v := newValidator(t, validate.DefaultConfig())

	snap := snapshotOf(ontology.Class{ID: "dog", Name: "Dog"})
	max := 0
	snap.Properties["has-part"] = ontology.Property{
		ID:          "has-part",
		Name:        "hasPart",
		Type:        ontology.PropertyObject,
		Domain:      []string{"dog"},
		Range:       []string{"tail"},
		Cardinality: ontology.Cardinality{Min: 2, Max: &max},
	}

	result := v.Validate(snap)

	var missingRange, badCardinality bool
	for _, issue := range result.Errors {
		switch issue.Type {
		case validate.TypeMissingReference:
			missingRange = true
			assert.Contains(t, issue.Elements, "tail")
		case validate.TypeConstraintViolation:
			badCardinality = true
		}
	}
	assert.True(t, missingRange, "range referencing a missing class must be reported")
	assert.True(t, badCardinality, "max below min must be reported")
}

func TestValidate_ContradictoryRelationships(t *testing.T) {
	v := newValidator(t, validate.DefaultConfig())

	snap := snapshotOf(
		ontology.Class{ID: "wheel", Name: "Wheel"},
		ontology.Class{ID: "car", Name: "Car"},
	)
	snap.Relationships["wheel-is-a-car"] = ontology.Relationship{
		ID: "wheel-is-a-car", Type: "is-a", Source: "wheel", Target: "car",
	}
	snap.Relationships["wheel-part-of-car"] = ontology.Relationship{
		ID: "wheel-part-of-car", Type: "part-of", Source: "wheel", Target: "car",
	}

	result := v.Validate(snap)
	assert.True(t, result.Valid)

	var found bool
	for _, issue := range result.Errors {
		if issue.Type == validate.TypeLogicalInconsistency {
			found = true
			assert.Equal(t, validate.SeverityMajor, issue.Severity)
			assert.ElementsMatch(t, []string{"wheel-is-a-car", "wheel-part-of-car"}, issue.Elements)
		}
	}
	assert.True(t, found, "is-a and part-of over the same pair must contradict")
}

func TestValidate_BidirectionalWithoutMirror(t *testing.T) {
	v := newValidator(t, validate.DefaultConfig())

	snap := snapshotOf(
		ontology.Class{ID: "dog", Name: "Dog"},
		ontology.Class{ID: "cat", Name: "Cat"},
	)
	snap.Relationships["dog-similar-to-cat"] = ontology.Relationship{
		ID: "dog-similar-to-cat", Type: "similar-to", Source: "dog", Target: "cat",
		Bidirectional: true,
	}

	result := v.Validate(snap)

	var found bool
	for _, issue := range result.Warnings {
		if issue.Type == validate.TypeLogicalInconsistency {
			found = true
			assert.Contains(t, issue.Message, "cat-similar-to-dog")
		}
	}
	assert.True(t, found, "missing mirror must produce a warning")
}

func TestValidate_OrphanedClassesAndMergeSuggestion(t *testing.T) {
	v := newValidator(t, validate.DefaultConfig())

	snap := snapshotOf(
		ontology.Class{ID: "storage-tank", Name: "Storage Tank", Description: "holds water"},
		ontology.Class{ID: "water-tank", Name: "Storage Tank", Description: "holds water"},
	)

	result := v.Validate(snap)

	orphanWarnings := 0
	for _, issue := range result.Warnings {
		if issue.Type == validate.TypeOrphanedClass {
			orphanWarnings++
		}
	}
	assert.Equal(t, 2, orphanWarnings)

	require.NotEmpty(t, result.Suggestions)
	suggestion := result.Suggestions[0]
	assert.Equal(t, validate.TypeOrphanedClass, suggestion.Type)
	assert.ElementsMatch(t, []string{"storage-tank", "water-tank"}, suggestion.Elements)
}

func TestValidate_OrphanBelowThresholdNotSuggested(t *testing.T) {
	v := newValidator(t, validate.DefaultConfig())

	snap := snapshotOf(
		ontology.Class{ID: "engine", Name: "Engine", Description: "converts fuel"},
		ontology.Class{ID: "poem", Name: "Poem", Description: "verse composition"},
	)

	result := v.Validate(snap)
	assert.Empty(t, result.Suggestions)
}

func TestValidate_NamingConventions(t *testing.T) {
	v := newValidator(t, validate.DefaultConfig())

	snap := snapshotOf(
		ontology.Class{ID: "2nd-stage", Name: "2nd_stage"},
	)
	snap.Properties["has-part"] = ontology.Property{ID: "has-part", Name: "Has Part"}

	result := v.Validate(snap)
	assert.True(t, result.Valid, "naming findings are warnings only")

	var classFlagged, propFlagged bool
	for _, issue := range result.Warnings {
		if issue.Type != validate.TypeNamingConvention {
			continue
		}
		switch issue.Elements[0] {
		case "2nd-stage":
			classFlagged = true
		case "has-part":
			propFlagged = true
		}
	}
	assert.True(t, classFlagged)
	assert.True(t, propFlagged)
}

func TestValidate_HierarchyDepthWarning(t *testing.T) {
	cfg := validate.DefaultConfig()
	cfg.MaxDepth = 2
	v := newValidator(t, cfg)

	snap := snapshotOf(
		ontology.Class{ID: "a", Name: "A", SubClasses: []string{"b"}},
		ontology.Class{ID: "b", Name: "B", SuperClasses: []string{"a"}, SubClasses: []string{"c"}},
		ontology.Class{ID: "c", Name: "C", SuperClasses: []string{"b"}, SubClasses: []string{"d"}},
		ontology.Class{ID: "d", Name: "D", SuperClasses: []string{"c"}},
	)

	result := v.Validate(snap)

	var found bool
	for _, issue := range result.Warnings {
		if issue.Type == validate.TypeHierarchyShape {
			found = true
		}
	}
	assert.True(t, found, "depth 3 must exceed the configured maximum of 2")
}

func TestValidate_TooManyRootsSuggestion(t *testing.T) {
	cfg := validate.DefaultConfig()
	cfg.MaxRoots = 1
	v := newValidator(t, cfg)

	snap := snapshotOf(
		ontology.Class{ID: "a", Name: "A", SubClasses: []string{"x"}},
		ontology.Class{ID: "b", Name: "B", SubClasses: []string{"x"}},
		ontology.Class{ID: "x", Name: "X", SuperClasses: []string{"a", "b"}},
	)

	result := v.Validate(snap)

	var found bool
	for _, issue := range result.Suggestions {
		if issue.Type == validate.TypeHierarchyShape {
			found = true
		}
	}
	assert.True(t, found, "two roots must exceed the configured maximum of 1")
}

func TestValidate_CardinalityConstraint(t *testing.T) {
	v := newValidator(t, validate.DefaultConfig())

	snap := snapshotOf(ontology.Class{
		ID:   "reactor",
		Name: "Reactor",
		Constraints: []ontology.Constraint{{
			ID:           "needs-instances",
			Type:         ontology.ConstraintCardinality,
			Severity:     ontology.ConstraintError,
			MinInstances: 2,
		}},
	})

	result := v.Validate(snap)
	assert.True(t, result.Valid)

	var found bool
	for _, issue := range result.Errors {
		if issue.Type == validate.TypeConstraintViolation {
			found = true
			assert.Equal(t, validate.SeverityMajor, issue.Severity)
			assert.Contains(t, issue.Elements, "reactor")
		}
	}
	assert.True(t, found)
}

func TestValidate_ExpressionConstraintRouting(t *testing.T) {
	v := newValidator(t, validate.DefaultConfig())

	snap := snapshotOf(ontology.Class{
		ID:       "sensor",
		Name:     "Sensor",
		Metadata: ontology.Metadata{Confidence: 0.4},
		Constraints: []ontology.Constraint{
			{
				ID:         "confident",
				Type:       ontology.ConstraintLogical,
				Severity:   ontology.ConstraintWarning,
				Expression: "confidence >= 0.9",
				Message:    "sensor confidence too low",
			},
			{
				ID:         "described",
				Type:       ontology.ConstraintValue,
				Severity:   ontology.ConstraintError,
				Expression: "description != ''",
			},
		},
	})

	result := v.Validate(snap)

	var warned, errored bool
	for _, issue := range result.Warnings {
		if issue.Type == validate.TypeConstraintViolation && issue.Message == "sensor confidence too low" {
			warned = true
		}
	}
	for _, issue := range result.Errors {
		if issue.Type == validate.TypeConstraintViolation {
			errored = true
			assert.Equal(t, validate.SeverityMajor, issue.Severity)
		}
	}
	assert.True(t, warned, "warning-severity constraint must route to warnings")
	assert.True(t, errored, "error-severity constraint must route to errors")
}

func TestValidate_UnevaluableExpressionDegradesToWarning(t *testing.T) {
	v := newValidator(t, validate.DefaultConfig())

	snap := snapshotOf(ontology.Class{
		ID:   "sensor",
		Name: "Sensor",
		Constraints: []ontology.Constraint{{
			ID:         "broken",
			Type:       ontology.ConstraintLogical,
			Severity:   ontology.ConstraintError,
			Expression: "no_such_variable > 1",
		}},
	})

	result := v.Validate(snap)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)

	var found bool
	for _, issue := range result.Warnings {
		if issue.Type == validate.TypeConstraintViolation {
			found = true
			assert.Contains(t, issue.Message, "could not be evaluated")
		}
	}
	assert.True(t, found)
}

func TestValidate_SatisfiedConstraintsAreSilent(t *testing.T) {
	v := newValidator(t, validate.DefaultConfig())

	snap := snapshotOf(ontology.Class{
		ID:          "sensor",
		Name:        "Sensor",
		Description: "measures things",
		Metadata:    ontology.Metadata{Confidence: 0.95},
		Constraints: []ontology.Constraint{{
			ID:         "confident",
			Type:       ontology.ConstraintLogical,
			Severity:   ontology.ConstraintError,
			Expression: "confidence >= 0.9 && description != ''",
		}},
	})

	result := v.Validate(snap)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidate_ConcurrentConstraintEvaluation(t *testing.T) {
	v := newValidator(t, validate.DefaultConfig())

	snap := snapshotOf(ontology.Class{
		ID:       "sensor",
		Name:     "Sensor",
		Metadata: ontology.Metadata{Confidence: 0.95},
		Constraints: []ontology.Constraint{{
			ID:         "confident",
			Type:       ontology.ConstraintLogical,
			Severity:   ontology.ConstraintError,
			Expression: "confidence >= 0.9",
		}},
	})

	var wg sync.WaitGroup
	results := make([]validate.Result, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = v.Validate(snap)
		}(i)
	}
	wg.Wait()

	for _, result := range results {
		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
	}
}

func TestValidate_EmptySnapshotScoresPerfect(t *testing.T) {
	v := newValidator(t, validate.DefaultConfig())

	result := v.Validate(snapshotOf())
	assert.True(t, result.Valid)
	assert.InDelta(t, 1.0, result.Metrics.Consistency, 0.0001)
	assert.InDelta(t, 1.0, result.Metrics.Completeness, 0.0001)
	assert.InDelta(t, 1.0, result.Metrics.Clarity, 0.0001)
	assert.InDelta(t, 1.0, result.Metrics.Coverage, 0.0001)
}
