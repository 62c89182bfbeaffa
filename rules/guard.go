package rules

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Guard is an optional CEL constraint attached to a flag restriction.
// The expression is evaluated against a single variable `flags`, the
// current flag map, and must evaluate to a boolean. While the owning flag
// is enabled the expression must hold; a false result is a validation
// error using Message (or a generated fallback).
//
// Guards compile once, at manifest load time. Evaluating an uncompiled
// guard is a configuration error, keeping expensive expression parsing
// out of the per-validation hot path.
type Guard struct {
	Expr    string `yaml:"expr"`
	Message string `yaml:"message"`

	prg cel.Program
}

// NewEnv returns the CEL environment guards compile against: a single
// `flags` variable typed as map<string, dyn>.
func NewEnv() (*cel.Env, error) {
	return cel.NewEnv(cel.Variable("flags", cel.MapType(cel.StringType, cel.DynType)))
}

// Compile parses and checks the guard expression in env and caches the
// evaluable program. A guard with an empty expression compiles to nothing
// and always passes.
func (g *Guard) Compile(env *cel.Env) error {
	if g.Expr == "" {
		return nil
	}
	ast, iss := env.Compile(g.Expr)
	if iss != nil && iss.Err() != nil {
		return fmt.Errorf("compile %q: %w", g.Expr, iss.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return fmt.Errorf("program %q: %w", g.Expr, err)
	}
	g.prg = prg
	return nil
}

// Compiled reports whether the guard holds an evaluable program.
func (g *Guard) Compiled() bool {
	return g.Expr == "" || g.prg != nil
}

// Eval evaluates the guard against the flag map. Guards with an empty
// expression pass unconditionally.
func (g *Guard) Eval(flags FlagMap) (bool, error) {
	if g.Expr == "" {
		return true, nil
	}
	if g.prg == nil {
		return false, fmt.Errorf("guard %q: not compiled", g.Expr)
	}
	out, _, err := g.prg.Eval(map[string]any{"flags": map[string]any(flags)})
	if err != nil {
		return false, fmt.Errorf("guard %q: %w", g.Expr, err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("guard %q: expression is not boolean", g.Expr)
	}
	return b, nil
}

// CompileGuards compiles every constraint expression in the ruleset.
// Called by the manifest loader after decoding; a compile failure is a
// configuration error and fails the load.
func CompileGuards(rs *RuleSet) error {
	env, err := NewEnv()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRuleSet, err)
	}
	for flag, r := range rs.FlagRestrictions {
		if r.Constraint == nil {
			continue
		}
		if err := r.Constraint.Compile(env); err != nil {
			return fmt.Errorf("%w: constraint for flag '%s': %v", ErrInvalidRuleSet, flag, err)
		}
	}
	return nil
}

// CheckGuards evaluates the constraints of every enabled flag. Violations
// are validation errors; an uncompiled guard or an evaluation failure is
// a configuration error returned separately.
func CheckGuards(flags FlagMap, restrictions map[string]FlagRestriction) (bool, []string, error) {
	var errs []string

	for _, flag := range sortedKeys(flags) {
		if !Enabled(flags[flag]) {
			continue
		}
		g := restrictions[flag].Constraint
		if g == nil {
			continue
		}
		ok, err := g.Eval(flags)
		if err != nil {
			return false, nil, fmt.Errorf("%w: constraint for flag '%s': %v", ErrInvalidRuleSet, flag, err)
		}
		if !ok {
			msg := g.Message
			if msg == "" {
				msg = fmt.Sprintf("Flag '%s' violates constraint '%s'", flag, g.Expr)
			}
			errs = append(errs, msg)
		}
	}

	return len(errs) == 0, errs, nil
}
