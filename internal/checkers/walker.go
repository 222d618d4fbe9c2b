package checkers

import (
	"fmt"

	"github.com/romarionagy/pylint/internal/ast"
	"github.com/romarionagy/pylint/internal/diag"
	"github.com/romarionagy/pylint/internal/infer"
)

// Checker runs the implicit-booleaness rules over one module tree. It never
// mutates the tree; every visit is an independent read-only computation, so
// running it twice over the same input yields the same diagnostic set.
type Checker struct {
	builder  *ast.Builder
	engine   infer.Engine
	rules    *RuleSet
	reporter diag.Reporter
}

// New wires a Checker to a tree, an inference engine, the active rule set
// and the sink findings go to. A nil rules falls back to the defaults.
func New(b *ast.Builder, eng infer.Engine, rules *RuleSet, r diag.Reporter) *Checker {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Checker{
		builder:  b,
		engine:   eng,
		rules:    rules,
		reporter: r,
	}
}

// Run makes a single pass over the node arena, dispatching each node kind
// to the detectors interested in it. Kinds whose rules are all disabled
// are skipped without inspection.
func (c *Checker) Run() {
	for raw := uint32(1); raw <= c.builder.Len(); raw++ {
		c.visit(ast.NodeID(raw))
	}
}

func (c *Checker) visit(id ast.NodeID) {
	kind := c.builder.KindOf(id)
	if !c.rules.WantsKind(kind) {
		return
	}
	switch kind {
	case ast.KindCall:
		c.checkLenCall(id)
	case ast.KindUnaryOp:
		c.checkNegatedLen(id)
	case ast.KindCompare:
		if c.rules.Enabled(diag.ImplicitBooleanessNotComparison) {
			c.checkEmptyLiteralComparison(id)
		}
		if c.rules.Enabled(diag.ImplicitBooleanessNotComparisonToZero) {
			c.checkZeroComparison(id)
		}
		if c.rules.Enabled(diag.ImplicitBooleanessNotComparisonToString) {
			c.checkEmptyStringComparison(id)
		}
	}
}

// message renders the rule template into a convention-level diagnostic
// anchored at the given node.
func (c *Checker) message(code diag.Code, anchor ast.NodeID, conf diag.Confidence, args ...any) diag.Diagnostic {
	def, _ := MessageByCode(code)
	msg := def.Template
	if len(args) > 0 {
		msg = fmt.Sprintf(def.Template, args...)
	}
	return diag.NewConvention(code, c.builder.Span(anchor), msg).WithConfidence(conf)
}
