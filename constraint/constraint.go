// Package constraint evaluates the invariants declared on type descriptors.
//
// Builders only enforce structural rules. Invariants spanning several fields,
// like "orderDetail SHALL only be present if code is present", are declared
// as FHIRPath expressions and checked here on demand.
package constraint

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gofhir/fhirpath"
	"github.com/rs/zerolog"

	"github.com/damedic/fhir-model-go/fhirjson"
	"github.com/damedic/fhir-model-go/model"
)

// Issue is a violated or unevaluable invariant.
type Issue struct {
	Key      string
	Severity string
	Human    string
	// Expression is the FHIRPath expression of the invariant.
	Expression string
	// Path locates the element the invariant is declared on, e.g. "ServiceRequest.quantity".
	Path string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s at %s: %s", i.Severity, i.Key, i.Path, i.Human)
}

// Evaluator checks invariants with FHIRPath. It is safe for concurrent use.
type Evaluator struct {
	logger zerolog.Logger

	mu    sync.RWMutex
	cache map[string]*fhirpath.Expression
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger, by default nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Evaluator) { e.logger = logger }
}

// New creates an Evaluator.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		logger: zerolog.Nop(),
		cache:  map[string]*fhirpath.Expression{},
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Validate evaluates the invariants of r and of every element and contained resource within.
//
// The extra constraints are evaluated against r itself. Invariants which cannot
// be compiled or evaluated are reported as warning issues. The returned error
// is only set if r cannot be serialized.
func (e *Evaluator) Validate(r model.Resource, extra ...model.Constraint) ([]Issue, error) {
	if model.IsNil(r) {
		return nil, nil
	}

	c := collector{}
	if err := model.Walk(&c, r.TypeName(), -1, r); err != nil {
		return nil, err
	}
	if len(extra) > 0 {
		if len(c.targets) > 0 && c.targets[0].elem == model.Element(r) {
			c.targets[0].constraints = slices.Concat(c.targets[0].constraints, extra)
		} else {
			c.targets = append([]target{{path: r.TypeName(), elem: r, constraints: extra}}, c.targets...)
		}
	}

	var issues []Issue
	for _, t := range c.targets {
		data, err := fhirjson.Marshal(t.elem)
		if err != nil {
			return nil, fmt.Errorf("serialize %s: %w", t.path, err)
		}
		for _, con := range t.constraints {
			if issue, ok := e.evaluate(con, data, t.path); !ok {
				issues = append(issues, issue)
			}
		}
	}
	return issues, nil
}

// evaluate reports false together with an issue if con does not hold on data.
func (e *Evaluator) evaluate(con model.Constraint, data []byte, path string) (Issue, bool) {
	issue := Issue{
		Key:        con.Key,
		Severity:   con.Severity,
		Human:      con.Human,
		Expression: con.Expression,
		Path:       path,
	}
	if con.Expression == "" {
		return issue, true
	}

	expr, err := e.compile(con.Expression)
	if err != nil {
		e.logger.Warn().Err(err).Str("key", con.Key).Msg("cannot compile invariant")
		issue.Severity = "warning"
		issue.Human = fmt.Sprintf("invariant %s could not be compiled: %v", con.Key, err)
		return issue, false
	}

	result, err := expr.Evaluate(data)
	if err != nil {
		e.logger.Warn().Err(err).Str("key", con.Key).Str("path", path).Msg("cannot evaluate invariant")
		issue.Severity = "warning"
		issue.Human = fmt.Sprintf("invariant %s could not be evaluated: %v", con.Key, err)
		return issue, false
	}

	if passed(result) {
		return issue, true
	}
	e.logger.Debug().Str("key", con.Key).Str("path", path).Msg("invariant violated")
	return issue, false
}

func (e *Evaluator) compile(expression string) (*fhirpath.Expression, error) {
	e.mu.RLock()
	expr, ok := e.cache[expression]
	e.mu.RUnlock()
	if ok {
		return expr, nil
	}

	expr, err := fhirpath.Compile(expression)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.cache[expression] = expr
	e.mu.Unlock()
	return expr, nil
}

// passed treats an empty or non-boolean result as satisfied.
func passed(result fhirpath.Collection) bool {
	if result.Empty() {
		return true
	}
	b, err := result.ToBoolean()
	if err != nil {
		return true
	}
	return b
}

type target struct {
	path        string
	elem        model.Element
	constraints []model.Constraint
}

// collector records every element carrying invariants, in traversal order.
type collector struct {
	model.BaseVisitor
	paths   []string
	targets []target
}

func (c *collector) VisitStart(name string, index int, e model.Element) error {
	path := name
	if len(c.paths) > 0 {
		path = c.paths[len(c.paths)-1] + "." + name
	}
	if index >= 0 {
		path = fmt.Sprintf("%s[%d]", path, index)
	}
	c.paths = append(c.paths, path)

	if cs := e.Descriptor().Constraints; len(cs) > 0 {
		c.targets = append(c.targets, target{path: path, elem: e, constraints: cs})
	}
	return nil
}

func (c *collector) VisitEnd(string, int, model.Element) error {
	c.paths = c.paths[:len(c.paths)-1]
	return nil
}
