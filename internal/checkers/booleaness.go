package checkers

import (
	"fmt"

	"github.com/romarionagy/pylint/internal/ast"
	"github.com/romarionagy/pylint/internal/astfmt"
	"github.com/romarionagy/pylint/internal/diag"
	"github.com/romarionagy/pylint/internal/infer"
)

// checkLenCall flags `len(x)` used directly as a boolean test. A len()
// call nested in and/or chains still counts: the walk unwinds enclosing
// boolean operators before deciding whether the call feeds a condition.
func (c *Checker) checkLenCall(id ast.NodeID) {
	if !c.isCallOfName(id, "len") {
		return
	}
	parent := c.builder.Parent(id)
	for c.builder.KindOf(parent) == ast.KindBoolOp {
		parent = c.builder.Parent(parent)
	}
	if !c.isTestCondition(id, parent) {
		return
	}
	call, _ := c.builder.Call(id)
	if len(call.Args) == 0 {
		return
	}
	lenArg := call.Args[0]

	// len() over a comprehension or generator is a misuse no matter what
	// the elements turn out to be.
	if c.builder.KindOf(lenArg).IsComprehension() {
		c.reporter.Report(c.message(diag.ImplicitBooleanessNotLen, id, diag.ConfidenceHigh))
		return
	}

	instance := infer.FirstOf(c.engine, c.builder, lenArg)
	if instance == nil {
		// Probably an undefined variable; abort rather than guess.
		return
	}
	motherClasses := infer.BaseNamesOf(instance)
	affectedByPEP8 := hasAny(motherClasses, "str", "tuple", "list", "set")
	if hasAny(motherClasses, "range") ||
		(affectedByPEP8 && !infer.HasBoolOverride(instance)) {
		c.reporter.Report(c.message(diag.ImplicitBooleanessNotLen, id, diag.ConfidenceInference))
	}
}

// checkNegatedLen flags `not len(x)`. The negation already proves the
// result is only consumed for truthiness, so no surrounding context and no
// inference is consulted.
func (c *Checker) checkNegatedLen(id ast.NodeID) {
	data, ok := c.builder.UnaryOp(id)
	if !ok || data.Op != ast.UnaryNot {
		return
	}
	if !c.isCallOfName(data.Operand, "len") {
		return
	}
	c.reporter.Report(c.message(diag.ImplicitBooleanessNotLen, id, diag.ConfidenceHigh))
}

// checkEmptyLiteralComparison flags comparisons where exactly one side of
// an operator is an empty container literal, e.g. `x == []`. The left side
// is the chain head for every operator position; literals are paired with
// each comparator directly rather than through a sliding window.
func (c *Checker) checkEmptyLiteralComparison(id ast.NodeID) {
	data, ok := c.builder.Compare(id)
	if !ok {
		return
	}
	leftIsLiteral := c.isEmptyContainerLiteral(data.Left)
	for _, link := range data.Ops {
		rightIsLiteral := c.isEmptyContainerLiteral(link.Comparator)
		// Both-literal comparisons are trivially constant and neither-literal
		// ones are not a booleaness issue, so exactly one side must match.
		if rightIsLiteral == leftIsLiteral {
			continue
		}
		target := data.Left
		literal := link.Comparator
		if leftIsLiteral {
			target, literal = link.Comparator, data.Left
		}

		instance := infer.SafeInfer(c.engine, c.builder, target)
		if instance == nil {
			continue
		}
		motherClasses := infer.BaseNamesOf(instance)
		isContainerType := hasAny(motherClasses, "tuple", "list", "dict", "set")
		// A type that is not one of the container kinds and defines its own
		// truthiness keeps the explicit comparison. A real container subtype
		// is flagged even with an override: comparing it to an empty literal
		// is wrong regardless.
		if !isContainerType && infer.HasBoolOverride(instance) {
			continue
		}
		switch link.Op {
		case ast.CmpEq, ast.CmpNotEq, ast.CmpGtE, ast.CmpGt, ast.CmpLtE, ast.CmpLt:
			original, suggestion, description := comparisonMessageArgs(c.builder, literal, link.Op, target)
			d := c.message(diag.ImplicitBooleanessNotComparison, id, diag.ConfidenceHigh,
				original, suggestion, description)
			if len(data.Ops) == 1 {
				d = d.WithFix(fmt.Sprintf("replace with '%s'", suggestion),
					diag.FixEdit{Span: c.builder.Span(id), NewText: suggestion})
			}
			c.reporter.Report(d)
		}
	}
}

var identityEqualityOps = map[ast.CmpOp]bool{
	ast.CmpEq:    true,
	ast.CmpNotEq: true,
	ast.CmpIs:    true,
	ast.CmpIsNot: true,
}

// checkZeroComparison flags `x == 0` and its mirrored and chained forms
// over the flattened comparison sequence. The literal False never matches
// even though Python considers it equal to 0.
func (c *Checker) checkZeroComparison(id ast.NodeID) {
	chain := FlattenCompare(c.builder, id)
	for i := 0; i+2 < len(chain); i++ {
		e1, e2, e3 := chain[i], chain[i+1], chain[i+2]
		if e1.IsOp || !e2.IsOp || e3.IsOp || !identityEqualityOps[e2.Op] {
			continue
		}
		var target ast.NodeID
		switch {
		case c.isZeroConst(e1.Node):
			target = e3.Node
		case c.isZeroConst(e3.Node):
			target = e1.Node
		default:
			continue
		}
		original := fmt.Sprintf("%s %s %s",
			astfmt.NodeString(c.builder, e1.Node), e2.Op, astfmt.NodeString(c.builder, e3.Node))
		suggestion := astfmt.NodeString(c.builder, target)
		if e2.Op == ast.CmpEq || e2.Op == ast.CmpIs {
			suggestion = "not " + suggestion
		}
		d := c.message(diag.ImplicitBooleanessNotComparisonToZero, id, diag.ConfidenceHigh,
			original, suggestion)
		if len(chain) == 3 {
			d = d.WithFix(fmt.Sprintf("replace with '%s'", suggestion),
				diag.FixEdit{Span: c.builder.Span(id), NewText: suggestion})
		}
		c.reporter.Report(d)
	}
}

// checkEmptyStringComparison flags `s == ""` and its mirrored and chained
// forms; the original text in the message is the whole comparison.
func (c *Checker) checkEmptyStringComparison(id ast.NodeID) {
	chain := FlattenCompare(c.builder, id)
	for i := 0; i+2 < len(chain); i++ {
		e1, e2, e3 := chain[i], chain[i+1], chain[i+2]
		if e1.IsOp || !e2.IsOp || e3.IsOp || !identityEqualityOps[e2.Op] {
			continue
		}
		var target ast.NodeID
		switch {
		case c.isEmptyStrConst(e1.Node):
			target = e3.Node
		case c.isEmptyStrConst(e3.Node):
			target = e1.Node
		default:
			continue
		}
		name := astfmt.NodeString(c.builder, target)
		suggestion := name
		if e2.Op == ast.CmpEq || e2.Op == ast.CmpIs {
			suggestion = "not " + name
		}
		d := c.message(diag.ImplicitBooleanessNotComparisonToString, id, diag.ConfidenceHigh,
			astfmt.NodeString(c.builder, id), suggestion)
		if len(chain) == 3 {
			d = d.WithFix(fmt.Sprintf("replace with '%s'", suggestion),
				diag.FixEdit{Span: c.builder.Span(id), NewText: suggestion})
		}
		c.reporter.Report(d)
	}
}

// isTestCondition reports whether node sits in a position consumed only
// for truth: the condition of an if/while/assert or ternary, a
// comprehension filter, or the argument of a bool(...) call.
func (c *Checker) isTestCondition(node, parent ast.NodeID) bool {
	if !parent.IsValid() {
		parent = c.builder.Parent(node)
	}
	switch c.builder.KindOf(parent) {
	case ast.KindIf:
		data, _ := c.builder.If(parent)
		return c.inTest(node, data.Test)
	case ast.KindWhile:
		data, _ := c.builder.While(parent)
		return c.inTest(node, data.Test)
	case ast.KindAssert:
		data, _ := c.builder.Assert(parent)
		return c.inTest(node, data.Test)
	case ast.KindIfExp:
		data, _ := c.builder.IfExp(parent)
		return c.inTest(node, data.Test)
	case ast.KindListComp, ast.KindSetComp, ast.KindDictComp, ast.KindGeneratorExp:
		data, _ := c.builder.Comprehension(parent)
		for _, cond := range data.Ifs {
			if node == cond {
				return true
			}
		}
		return false
	}
	return c.isCallOfName(parent, "bool") && c.builder.HasAncestor(node, parent)
}

func (c *Checker) inTest(node, test ast.NodeID) bool {
	return node == test || c.builder.HasAncestor(node, test)
}

func (c *Checker) isCallOfName(id ast.NodeID, name string) bool {
	call, ok := c.builder.Call(id)
	if !ok {
		return false
	}
	fn, ok := c.builder.Name(call.Func)
	return ok && c.builder.LookupString(fn.Ident) == name
}

// isEmptyContainerLiteral matches empty list/tuple/set literals and `{}`;
// only syntactic literals count, never inferred values.
func (c *Checker) isEmptyContainerLiteral(id ast.NodeID) bool {
	switch c.builder.KindOf(id) {
	case ast.KindList, ast.KindTuple, ast.KindSet:
		data, _ := c.builder.Sequence(id)
		return len(data.Elts) == 0
	case ast.KindDict:
		data, _ := c.builder.Dict(id)
		return len(data.Keys) == 0
	}
	return false
}

func (c *Checker) isZeroConst(id ast.NodeID) bool {
	data, ok := c.builder.Const(id)
	return ok && data.Value.IsZeroNumber()
}

func (c *Checker) isEmptyStrConst(id ast.NodeID) bool {
	data, ok := c.builder.Const(id)
	return ok && data.Value.IsEmptyStr()
}

func hasAny(names []string, wanted ...string) bool {
	for _, name := range names {
		for _, w := range wanted {
			if name == w {
				return true
			}
		}
	}
	return false
}
