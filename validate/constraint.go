package validate

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/c360studio/ontograph/ontology"
)

// constraintEvaluator compiles and caches CEL programs for value and
// logical class constraints. Expressions see a small, stable set of
// variables describing the class under check. The program cache is
// mutex-guarded so concurrent validations share compiled expressions.
type constraintEvaluator struct {
	env *cel.Env

	mu       sync.Mutex
	programs map[string]cel.Program
}

func newConstraintEvaluator() (*constraintEvaluator, error) {
	env, err := cel.NewEnv(
		cel.Variable("name", cel.StringType),
		cel.Variable("description", cel.StringType),
		cel.Variable("kind", cel.StringType),
		cel.Variable("confidence", cel.DoubleType),
		cel.Variable("instance_count", cel.IntType),
		cel.Variable("property_count", cel.IntType),
		cel.Variable("super_count", cel.IntType),
		cel.Variable("sub_count", cel.IntType),
	)
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}
	return &constraintEvaluator{
		env:      env,
		programs: make(map[string]cel.Program),
	}, nil
}

// Evaluate runs one expression constraint against a class. It returns
// (satisfied, nil) on a clean evaluation and an error for expressions that
// fail to compile, do not produce a boolean, or fault at runtime.
func (e *constraintEvaluator) Evaluate(expr string, class ontology.Class) (bool, error) {
	prg, err := e.program(expr)
	if err != nil {
		return false, err
	}

	out, _, err := prg.Eval(map[string]any{
		"name":           class.Name,
		"description":    class.Description,
		"kind":           class.Kind,
		"confidence":     class.Metadata.Confidence,
		"instance_count": int64(len(class.Instances)),
		"property_count": int64(len(class.Properties)),
		"super_count":    int64(len(class.SuperClasses)),
		"sub_count":      int64(len(class.SubClasses)),
	})
	if err != nil {
		return false, fmt.Errorf("evaluate constraint expression: %w", err)
	}

	satisfied, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("constraint expression %q is not boolean", expr)
	}
	return satisfied, nil
}

// program returns the cached compiled program for expr, compiling it on
// first use.
func (e *constraintEvaluator) program(expr string) (cel.Program, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if prg, ok := e.programs[expr]; ok {
		return prg, nil
	}

	ast, iss := e.env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("compile constraint expression: %w", iss.Err())
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("build constraint program: %w", err)
	}
	e.programs[expr] = prg
	return prg, nil
}
