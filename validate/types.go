// Package validate runs a fixed, ordered battery of consistency and quality
// rules over a read-only ontology snapshot and produces a structured report
// with numeric quality metrics.
package validate

import "time"

// Severity grades a validation issue.
type Severity string

const (
	// SeverityCritical invalidates the ontology.
	SeverityCritical Severity = "critical"

	// SeverityMajor marks defects that need fixing but do not invalidate.
	SeverityMajor Severity = "major"

	// SeverityMinor marks cosmetic or advisory findings.
	SeverityMinor Severity = "minor"
)

// IssueType classifies what went wrong. The first four form the recoverable
// error taxonomy shared with the store; the rest are report-only kinds.
type IssueType string

const (
	TypeCircularDependency   IssueType = "circular-dependency"
	TypeMissingReference     IssueType = "missing-reference"
	TypeConstraintViolation  IssueType = "constraint-violation"
	TypeLogicalInconsistency IssueType = "logical-inconsistency"
	TypeOrphanedClass        IssueType = "orphaned-class"
	TypeNamingConvention     IssueType = "naming-convention"
	TypeHierarchyShape       IssueType = "hierarchy-shape"
	TypeRuleFailure          IssueType = "rule-failure"
)

// Issue is one finding from one rule.
type Issue struct {
	// Type classifies the finding.
	Type IssueType `json:"type"`

	// Severity grades it.
	Severity Severity `json:"severity"`

	// Rule names the rule that produced it.
	Rule string `json:"rule"`

	// Message is the human-readable description.
	Message string `json:"message"`

	// Elements lists the affected element ids.
	Elements []string `json:"elements,omitempty"`

	// Remediation optionally suggests a fix.
	Remediation string `json:"remediation,omitempty"`
}

// Metrics are the four aggregate quality scores, each in [0,1]. They are
// always computed, independent of validity.
type Metrics struct {
	Consistency  float64 `json:"consistency"`
	Completeness float64 `json:"completeness"`
	Clarity      float64 `json:"clarity"`
	Coverage     float64 `json:"coverage"`
}

// Result is the full validation report.
type Result struct {
	// ID identifies this report.
	ID string `json:"id"`

	// Valid is true iff no rule produced a critical error.
	Valid bool `json:"valid"`

	// Errors, Warnings, and Suggestions in rule order.
	Errors      []Issue `json:"errors"`
	Warnings    []Issue `json:"warnings"`
	Suggestions []Issue `json:"suggestions"`

	// Metrics are the aggregate quality scores.
	Metrics Metrics `json:"metrics"`

	// RulesRun counts the rules evaluated.
	RulesRun int `json:"rules_run"`

	// CheckedAt is when validation ran.
	CheckedAt time.Time `json:"checked_at"`
}

// ruleReport is one rule's contribution before merging.
type ruleReport struct {
	errors      []Issue
	warnings    []Issue
	suggestions []Issue
}

func (r *ruleReport) addError(i Issue)      { r.errors = append(r.errors, i) }
func (r *ruleReport) addWarning(i Issue)    { r.warnings = append(r.warnings, i) }
func (r *ruleReport) addSuggestion(i Issue) { r.suggestions = append(r.suggestions, i) }
