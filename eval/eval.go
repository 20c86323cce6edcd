package eval

import (
	"fmt"

	"github.com/Knetic/govaluate"
)

// Compiled is an expression that has passed parsing and can be
// evaluated against per-frame variables.
type Compiled interface {
	// Evaluate computes the expression's value for one variable snapshot.
	Evaluate(vars Variables) (float64, error)
	// Source returns the original expression text.
	Source() string
}

// Service compiles expression source strings. Compilation validates the
// expression up front so per-frame evaluation failures are exceptional.
type Service interface {
	Compile(src string) (Compiled, error)
}

// DefaultService is the govaluate-backed expression service.
type DefaultService struct{}

// NewService creates the default expression service.
func NewService() *DefaultService {
	return &DefaultService{}
}

// Compile parses the expression and returns an evaluatable handle.
func (s *DefaultService) Compile(src string) (Compiled, error) {
	expr, err := govaluate.NewEvaluableExpression(src)
	if err != nil {
		return nil, fmt.Errorf("compile expression %q: %w", src, err)
	}
	return &compiledExpr{src: src, expr: expr}, nil
}

// compiledExpr wraps a parsed govaluate expression.
type compiledExpr struct {
	src  string
	expr *govaluate.EvaluableExpression
}

// Evaluate runs the expression against the variable snapshot and
// coerces the result to a float64.
func (c *compiledExpr) Evaluate(vars Variables) (float64, error) {
	result, err := c.expr.Evaluate(vars.Map())
	if err != nil {
		return 0, fmt.Errorf("evaluate expression %q: %w", c.src, err)
	}
	value, ok := result.(float64)
	if !ok {
		return 0, fmt.Errorf("expression %q yielded non-numeric result %v", c.src, result)
	}
	return value, nil
}

// Source returns the expression text the handle was compiled from.
func (c *compiledExpr) Source() string {
	return c.src
}
