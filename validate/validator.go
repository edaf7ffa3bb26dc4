package validate

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/ontograph/ontology"
)

// Validator runs the rule battery against ontology snapshots. It is safe
// for concurrent use once constructed.
type Validator struct {
	cfg         Config
	rules       []rule
	constraints *constraintEvaluator
	logger      *slog.Logger
}

// NewValidator builds a validator with the default rule set.
func NewValidator(cfg Config, logger *slog.Logger) (*Validator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid validator config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	evaluator, err := newConstraintEvaluator()
	if err != nil {
		return nil, fmt.Errorf("create constraint evaluator: %w", err)
	}
	return &Validator{
		cfg:         cfg,
		rules:       defaultRules(),
		constraints: evaluator,
		logger:      logger,
	}, nil
}

// Validate runs every rule in order over the snapshot and merges their
// findings. A panicking rule is isolated: it contributes a single critical
// rule-failure issue and the remaining rules still run. Metrics are always
// computed, valid or not.
func (v *Validator) Validate(snap *ontology.Snapshot) Result {
	result := Result{
		ID:          uuid.NewString(),
		Errors:      []Issue{},
		Warnings:    []Issue{},
		Suggestions: []Issue{},
		CheckedAt:   time.Now().UTC(),
	}

	for _, r := range v.rules {
		report := v.runRule(r, snap)
		for i := range report.errors {
			report.errors[i].Rule = r.name
		}
		for i := range report.warnings {
			report.warnings[i].Rule = r.name
		}
		for i := range report.suggestions {
			report.suggestions[i].Rule = r.name
		}
		result.Errors = append(result.Errors, report.errors...)
		result.Warnings = append(result.Warnings, report.warnings...)
		result.Suggestions = append(result.Suggestions, report.suggestions...)
		result.RulesRun++
	}

	result.Valid = true
	for _, issue := range result.Errors {
		if issue.Severity == SeverityCritical {
			result.Valid = false
			break
		}
	}

	result.Metrics = ComputeMetrics(snap, len(result.Errors), len(result.Warnings))

	v.logger.Debug("validation complete",
		"report_id", result.ID,
		"valid", result.Valid,
		"errors", len(result.Errors),
		"warnings", len(result.Warnings),
		"suggestions", len(result.Suggestions))

	return result
}

func (v *Validator) runRule(r rule, snap *ontology.Snapshot) (report *ruleReport) {
	report = &ruleReport{}
	defer func() {
		if rec := recover(); rec != nil {
			v.logger.Error("validation rule panicked", "rule", r.name, "panic", rec)
			report.errors = append(report.errors, Issue{
				Type:     TypeRuleFailure,
				Severity: SeverityCritical,
				Message:  fmt.Sprintf("rule %q failed: %v", r.name, rec),
			})
		}
	}()
	r.check(v, snap, report)
	return report
}
