package policy

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/veracomply/sdk/assessment"
)

// GapFilter is a compiled predicate over assessment gaps.
// A GapFilter is immutable after compilation and safe for concurrent use.
type GapFilter struct {
	expr    string
	program cel.Program
}

// gapEnv declares the variables gap expressions may reference.
func gapEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("severity", cel.StringType),
		cel.Variable("category", cel.StringType),
		cel.Variable("title", cel.StringType),
		cel.Variable("description", cel.StringType),
		cel.Variable("priority", cel.IntType),
		cel.Variable("size", cel.DoubleType),
	)
}

// CompileGapFilter compiles a CEL expression into a gap predicate.
// The expression must evaluate to a boolean.
func CompileGapFilter(expr string) (*GapFilter, error) {
	env, err := gapEnv()
	if err != nil {
		return nil, fmt.Errorf("policy: failed to build gap environment: %w", err)
	}

	program, err := compileBool(env, expr)
	if err != nil {
		return nil, err
	}

	return &GapFilter{
		expr:    expr,
		program: program,
	}, nil
}

// Expr returns the source expression the filter was compiled from.
func (f *GapFilter) Expr() string {
	return f.expr
}

// Match evaluates the filter against one gap.
func (f *GapFilter) Match(gap assessment.Gap) (bool, error) {
	return evalBool(f.program, map[string]any{
		"severity":    gap.Severity.String(),
		"category":    gap.Category.String(),
		"title":       gap.Title,
		"description": gap.Description,
		"priority":    int64(gap.Priority),
		"size":        gap.EffectiveSize(),
	})
}

// Apply returns the gaps matching the filter, preserving order.
func (f *GapFilter) Apply(gaps []assessment.Gap) ([]assessment.Gap, error) {
	matched := make([]assessment.Gap, 0, len(gaps))
	for _, gap := range gaps {
		ok, err := f.Match(gap)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, gap)
		}
	}
	return matched, nil
}

// RiskFilter is a compiled predicate over assessment risks.
// A RiskFilter is immutable after compilation and safe for concurrent use.
type RiskFilter struct {
	expr    string
	program cel.Program
}

// riskEnv declares the variables risk expressions may reference.
func riskEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("category", cel.StringType),
		cel.Variable("level", cel.StringType),
		cel.Variable("likelihood", cel.StringType),
		cel.Variable("impact", cel.StringType),
		cel.Variable("title", cel.StringType),
		cel.Variable("control", cel.DoubleType),
	)
}

// CompileRiskFilter compiles a CEL expression into a risk predicate.
// The expression must evaluate to a boolean.
func CompileRiskFilter(expr string) (*RiskFilter, error) {
	env, err := riskEnv()
	if err != nil {
		return nil, fmt.Errorf("policy: failed to build risk environment: %w", err)
	}

	program, err := compileBool(env, expr)
	if err != nil {
		return nil, err
	}

	return &RiskFilter{
		expr:    expr,
		program: program,
	}, nil
}

// Expr returns the source expression the filter was compiled from.
func (f *RiskFilter) Expr() string {
	return f.expr
}

// Match evaluates the filter against one risk.
func (f *RiskFilter) Match(risk assessment.Risk) (bool, error) {
	return evalBool(f.program, map[string]any{
		"category":   risk.Category.String(),
		"level":      risk.Level.String(),
		"likelihood": risk.Likelihood.String(),
		"impact":     risk.Impact.String(),
		"title":      risk.Title,
		"control":    risk.EffectiveControl(),
	})
}

// Apply returns the risks matching the filter, preserving order.
func (f *RiskFilter) Apply(risks []assessment.Risk) ([]assessment.Risk, error) {
	matched := make([]assessment.Risk, 0, len(risks))
	for _, risk := range risks {
		ok, err := f.Match(risk)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, risk)
		}
	}
	return matched, nil
}

// compileBool compiles an expression in the given environment and rejects
// non-boolean results at compile time.
func compileBool(env *cel.Env, expr string) (cel.Program, error) {
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("policy: failed to compile %q: %w", expr, issues.Err())
	}
	if ast.OutputType() != cel.BoolType {
		return nil, fmt.Errorf("policy: expression %q must evaluate to a boolean, got %s", expr, ast.OutputType())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("policy: failed to build program for %q: %w", expr, err)
	}
	return program, nil
}

// evalBool evaluates a compiled program against an activation map.
func evalBool(program cel.Program, vars map[string]any) (bool, error) {
	out, _, err := program.Eval(vars)
	if err != nil {
		return false, fmt.Errorf("policy: evaluation failed: %w", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("policy: expression returned %T, expected bool", out.Value())
	}
	return result, nil
}
