package checkers

import (
	"strings"
	"testing"

	"github.com/romarionagy/pylint/internal/ast"
	"github.com/romarionagy/pylint/internal/diag"
	"github.com/romarionagy/pylint/internal/infer"
	"github.com/romarionagy/pylint/internal/source"
)

type fixture struct {
	b   *ast.Builder
	u   *infer.Universe
	eng *infer.TableEngine
	bag *diag.Bag
}

func newFixture() *fixture {
	u := infer.NewUniverse()
	return &fixture{
		b:   ast.NewBuilder(0),
		u:   u,
		eng: infer.NewTableEngine(u),
		bag: diag.NewBag(64),
	}
}

func (f *fixture) run(rules *RuleSet) []diag.Diagnostic {
	New(f.b, f.eng, rules, diag.BagReporter{Bag: f.bag}).Run()
	return f.bag.Items()
}

// allRules enables the default-off comparison rules as well.
func allRules(t *testing.T) *RuleSet {
	t.Helper()
	rs := DefaultRules()
	for _, name := range []string{
		"use-implicit-booleaness-not-comparison-to-zero",
		"use-implicit-booleaness-not-comparison-to-string",
	} {
		if err := rs.Enable(name); err != nil {
			t.Fatalf("enable %s: %v", name, err)
		}
	}
	return rs
}

func (f *fixture) name(ident string) ast.NodeID {
	return f.b.NewName(source.Span{}, f.b.Intern(ident))
}

func (f *fixture) lenCall(arg ast.NodeID) ast.NodeID {
	return f.b.NewCall(source.Span{}, f.name("len"), []ast.NodeID{arg})
}

// ifStmt wraps test into `if test: pass`.
func (f *fixture) ifStmt(test ast.NodeID) ast.NodeID {
	body := f.b.NewExprStmt(source.Span{}, f.b.NewConst(source.Span{}, ast.NoneValue()))
	return f.b.NewIf(source.Span{}, test, []ast.NodeID{body}, nil)
}

func (f *fixture) bindList(ident string) {
	cls, _ := f.u.Lookup("list")
	f.eng.BindIdent(ident, cls)
}

func TestLenInIfCondition(t *testing.T) {
	f := newFixture()
	f.bindList("my_list")
	f.ifStmt(f.lenCall(f.name("my_list")))

	items := f.run(nil)
	if len(items) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(items))
	}
	if items[0].Code != diag.ImplicitBooleanessNotLen {
		t.Fatalf("wrong code: %s", items[0].Code.ID())
	}
	if items[0].Confidence != diag.ConfidenceInference {
		t.Fatalf("type-based match must carry inference confidence, got %v", items[0].Confidence)
	}
}

func TestLenOutsideConditionNotFlagged(t *testing.T) {
	f := newFixture()
	f.bindList("x")
	// y = len(x) is a value use, not a truth test.
	f.b.NewAssign(source.Span{}, []ast.NodeID{f.name("y")}, f.lenCall(f.name("x")))

	if items := f.run(nil); len(items) != 0 {
		t.Fatalf("assignment context must not be flagged, got %d", len(items))
	}
}

func TestLenUnwindsBooleanOperators(t *testing.T) {
	f := newFixture()
	f.bindList("x")
	inner := f.b.NewBoolOp(source.Span{}, ast.BoolOr,
		[]ast.NodeID{f.name("z"), f.lenCall(f.name("x"))})
	outer := f.b.NewBoolOp(source.Span{}, ast.BoolAnd,
		[]ast.NodeID{f.name("w"), inner})
	f.ifStmt(outer)

	items := f.run(nil)
	if len(items) != 1 {
		t.Fatalf("len nested in and/or inside a condition must be flagged, got %d", len(items))
	}
}

func TestLenOfComprehensionIsHighConfidence(t *testing.T) {
	f := newFixture()
	comp := f.b.NewListComp(source.Span{}, f.name("x"), f.name("x"), f.name("items"), nil)
	f.ifStmt(f.lenCall(comp))

	items := f.run(nil)
	if len(items) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(items))
	}
	if items[0].Confidence != diag.ConfidenceHigh {
		t.Fatalf("comprehension argument must bypass inference, got %v", items[0].Confidence)
	}
}

func TestLenInferenceFailureSuppresses(t *testing.T) {
	f := newFixture()
	f.ifStmt(f.lenCall(f.name("mystery")))

	if items := f.run(nil); len(items) != 0 {
		t.Fatalf("uninferable argument must suppress, got %d diagnostics", len(items))
	}
}

func TestLenOfRange(t *testing.T) {
	f := newFixture()
	rangeCall := f.b.NewCall(source.Span{}, f.name("range"),
		[]ast.NodeID{f.b.NewConst(source.Span{}, ast.IntValue(10))})
	test := f.lenCall(rangeCall)
	body := f.b.NewExprStmt(source.Span{}, f.b.NewConst(source.Span{}, ast.NoneValue()))
	f.b.NewWhile(source.Span{}, test, []ast.NodeID{body}, nil)

	items := f.run(nil)
	if len(items) != 1 {
		t.Fatalf("len(range(...)) in a while condition must be flagged, got %d", len(items))
	}
	if items[0].Confidence != diag.ConfidenceInference {
		t.Fatalf("got %v", items[0].Confidence)
	}
}

func TestLenCustomBoolSuppressed(t *testing.T) {
	f := newFixture()
	custom := f.u.Define("Widget")
	custom.Define("__bool__")
	f.eng.BindIdent("w", custom)
	f.ifStmt(f.lenCall(f.name("w")))

	if items := f.run(nil); len(items) != 0 {
		t.Fatalf("type with bool override must not be flagged, got %d", len(items))
	}
}

func TestLenStringSubclassFlagged(t *testing.T) {
	f := newFixture()
	strClass, _ := f.u.Lookup("str")
	sub := f.u.Define("Path", strClass)
	f.eng.BindIdent("p", sub)
	f.ifStmt(f.lenCall(f.name("p")))

	if items := f.run(nil); len(items) != 1 {
		t.Fatalf("str subclass without bool override must be flagged, got %d", len(items))
	}
}

func TestLenInsideBoolCall(t *testing.T) {
	f := newFixture()
	f.bindList("x")
	wrapped := f.b.NewCall(source.Span{}, f.name("bool"), []ast.NodeID{f.lenCall(f.name("x"))})
	f.ifStmt(wrapped)

	items := f.run(nil)
	// bool(len(x)) proves the result is only consumed for truth.
	count := 0
	for _, d := range items {
		if d.Code == diag.ImplicitBooleanessNotLen {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("len inside bool(...) must be flagged once, got %d", count)
	}
}

func TestLenInComprehensionFilter(t *testing.T) {
	f := newFixture()
	f.bindList("q")
	cond := f.lenCall(f.name("q"))
	f.b.NewGeneratorExp(source.Span{}, f.name("x"), f.name("x"), f.name("items"),
		[]ast.NodeID{cond})

	if items := f.run(nil); len(items) != 1 {
		t.Fatalf("len as a comprehension filter must be flagged, got %d", len(items))
	}
}

func TestLenInTernaryCondition(t *testing.T) {
	f := newFixture()
	f.bindList("x")
	f.b.NewIfExp(source.Span{}, f.lenCall(f.name("x")), f.name("a"), f.name("b"))

	if items := f.run(nil); len(items) != 1 {
		t.Fatalf("ternary condition must count as a truth test, got %d", len(items))
	}
}

func TestLenWithoutArgumentsIgnored(t *testing.T) {
	f := newFixture()
	call := f.b.NewCall(source.Span{}, f.name("len"), nil)
	f.ifStmt(call)

	if items := f.run(nil); len(items) != 0 {
		t.Fatalf("malformed len() must simply not match, got %d", len(items))
	}
}

func TestNotLenAlwaysFlagged(t *testing.T) {
	f := newFixture()
	// No binding for x and no condition context: `y = not len(x)`.
	negated := f.b.NewUnaryOp(source.Span{}, ast.UnaryNot, f.lenCall(f.name("x")))
	f.b.NewAssign(source.Span{}, []ast.NodeID{f.name("y")}, negated)

	items := f.run(nil)
	if len(items) != 1 {
		t.Fatalf("not len(x) must be flagged unconditionally, got %d", len(items))
	}
	if items[0].Confidence != diag.ConfidenceHigh {
		t.Fatalf("structural rule must be high confidence, got %v", items[0].Confidence)
	}
}

func TestOtherUnaryOpsIgnored(t *testing.T) {
	f := newFixture()
	f.b.NewUnaryOp(source.Span{}, ast.UnaryNeg, f.lenCall(f.name("x")))

	if items := f.run(nil); len(items) != 0 {
		t.Fatalf("-len(x) is not a truth test, got %d diagnostics", len(items))
	}
}

func (f *fixture) compare(left ast.NodeID, links ...ast.CompareOp) ast.NodeID {
	return f.b.NewCompare(source.Span{}, left, links)
}

func TestZeroComparisonSuggestions(t *testing.T) {
	tests := []struct {
		name       string
		op         ast.CmpOp
		zeroOnLeft bool
		want       string
	}{
		{"x == 0", ast.CmpEq, false, "'x == 0' can be simplified to 'not x', if it is strictly an int or float value, as 0 is falsey"},
		{"x != 0", ast.CmpNotEq, false, "'x != 0' can be simplified to 'x', if it is strictly an int or float value, as 0 is falsey"},
		{"x is 0", ast.CmpIs, false, "'x is 0' can be simplified to 'not x', if it is strictly an int or float value, as 0 is falsey"},
		{"x is not 0", ast.CmpIsNot, false, "'x is not 0' can be simplified to 'x', if it is strictly an int or float value, as 0 is falsey"},
		{"0 == x", ast.CmpEq, true, "'0 == x' can be simplified to 'not x', if it is strictly an int or float value, as 0 is falsey"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			zero := f.b.NewConst(source.Span{}, ast.IntValue(0))
			x := f.name("x")
			if tt.zeroOnLeft {
				f.compare(zero, ast.CompareOp{Op: tt.op, Comparator: x})
			} else {
				f.compare(x, ast.CompareOp{Op: tt.op, Comparator: zero})
			}
			items := f.run(allRules(t))
			if len(items) != 1 {
				t.Fatalf("expected 1 diagnostic, got %d", len(items))
			}
			if items[0].Message != tt.want {
				t.Fatalf("message mismatch:\nwant %q\ngot  %q", tt.want, items[0].Message)
			}
			if items[0].Confidence != diag.ConfidenceHigh {
				t.Fatalf("got %v", items[0].Confidence)
			}
		})
	}
}

func TestFalseLiteralNeverMatchesZero(t *testing.T) {
	f := newFixture()
	f.compare(f.name("x"),
		ast.CompareOp{Op: ast.CmpEq, Comparator: f.b.NewConst(source.Span{}, ast.BoolValue(false))})

	if items := f.run(allRules(t)); len(items) != 0 {
		t.Fatalf("False must not match the zero rule, got %d diagnostics", len(items))
	}
}

func TestFloatZeroMatches(t *testing.T) {
	f := newFixture()
	f.compare(f.name("ratio"),
		ast.CompareOp{Op: ast.CmpNotEq, Comparator: f.b.NewConst(source.Span{}, ast.FloatValue(0))})

	items := f.run(allRules(t))
	if len(items) != 1 {
		t.Fatalf("0.0 is a numeric zero, got %d diagnostics", len(items))
	}
	if !strings.Contains(items[0].Message, "'ratio'") {
		t.Fatalf("suggestion for != must stay unnegated: %q", items[0].Message)
	}
}

func TestChainedZeroComparison(t *testing.T) {
	f := newFixture()
	// a == 0 != b: the window slides over the flattened chain, so both the
	// (a, ==, 0) and the (0, !=, b) windows match.
	f.compare(f.name("a"),
		ast.CompareOp{Op: ast.CmpEq, Comparator: f.b.NewConst(source.Span{}, ast.IntValue(0))},
		ast.CompareOp{Op: ast.CmpNotEq, Comparator: f.name("b")})

	items := f.run(allRules(t))
	if len(items) != 2 {
		t.Fatalf("expected 2 diagnostics from the chain, got %d", len(items))
	}
	if !strings.Contains(items[0].Message, "'not a'") {
		t.Fatalf("first window: %q", items[0].Message)
	}
	if !strings.Contains(items[1].Message, "'b'") {
		t.Fatalf("second window: %q", items[1].Message)
	}
}

func TestZeroComparisonOffByDefault(t *testing.T) {
	f := newFixture()
	f.compare(f.name("x"),
		ast.CompareOp{Op: ast.CmpEq, Comparator: f.b.NewConst(source.Span{}, ast.IntValue(0))})

	if items := f.run(nil); len(items) != 0 {
		t.Fatalf("zero comparison rule is off by default, got %d diagnostics", len(items))
	}
}

func TestEmptyStringComparison(t *testing.T) {
	tests := []struct {
		name        string
		op          ast.CmpOp
		strOnLeft   bool
		suggestion  string
		originalSub string
	}{
		{"s != ''", ast.CmpNotEq, false, "'s'", "'s != ''"},
		{"s == ''", ast.CmpEq, false, "'not s'", "'s == ''"},
		{"'' == s", ast.CmpEq, true, "'not s'", "''' == s'"},
		{"s is not ''", ast.CmpIsNot, false, "'s'", "'s is not ''"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			empty := f.b.NewConst(source.Span{}, ast.StrValue(f.b.Intern("")))
			s := f.name("s")
			if tt.strOnLeft {
				f.compare(empty, ast.CompareOp{Op: tt.op, Comparator: s})
			} else {
				f.compare(s, ast.CompareOp{Op: tt.op, Comparator: empty})
			}
			items := f.run(allRules(t))
			if len(items) != 1 {
				t.Fatalf("expected 1 diagnostic, got %d", len(items))
			}
			if items[0].Code != diag.ImplicitBooleanessNotComparisonToString {
				t.Fatalf("wrong code: %s", items[0].Code.ID())
			}
			if !strings.Contains(items[0].Message, "can be simplified to "+tt.suggestion) {
				t.Fatalf("suggestion mismatch: %q", items[0].Message)
			}
			if !strings.Contains(items[0].Message, tt.originalSub) {
				t.Fatalf("original text mismatch: %q", items[0].Message)
			}
		})
	}
}

func TestNonEmptyStringIgnored(t *testing.T) {
	f := newFixture()
	f.compare(f.name("s"),
		ast.CompareOp{Op: ast.CmpEq, Comparator: f.b.NewConst(source.Span{}, ast.StrValue(f.b.Intern("go")))})

	if items := f.run(allRules(t)); len(items) != 0 {
		t.Fatalf("comparison with a non-empty string must pass, got %d", len(items))
	}
}

func TestEmptyLiteralComparison(t *testing.T) {
	f := newFixture()
	f.bindList("my_obj")
	f.compare(f.name("my_obj"),
		ast.CompareOp{Op: ast.CmpEq, Comparator: f.b.NewList(source.Span{}, nil)})

	items := f.run(nil)
	if len(items) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(items))
	}
	want := "'my_obj == []' can be simplified to 'not my_obj', if it is strictly a sequence, as an empty list is falsey"
	if items[0].Message != want {
		t.Fatalf("message mismatch:\nwant %q\ngot  %q", want, items[0].Message)
	}
	if len(items[0].Fixes) != 1 || items[0].Fixes[0].Edits[0].NewText != "not my_obj" {
		t.Fatalf("expected a structured rewrite, got %+v", items[0].Fixes)
	}
}

func TestEmptyLiteralNotEqualSuggestion(t *testing.T) {
	f := newFixture()
	f.bindList("my_obj")
	f.compare(f.b.NewTuple(source.Span{}, nil),
		ast.CompareOp{Op: ast.CmpNotEq, Comparator: f.name("my_obj")})

	items := f.run(nil)
	if len(items) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(items))
	}
	want := "'my_obj != ()' can be simplified to 'my_obj', if it is strictly a sequence, as an empty tuple is falsey"
	if items[0].Message != want {
		t.Fatalf("message mismatch:\nwant %q\ngot  %q", want, items[0].Message)
	}
}

func TestEmptyLiteralBothOrNeitherSkipped(t *testing.T) {
	f := newFixture()
	f.bindList("a")
	f.bindList("b")
	// [] == [] is trivially constant; a == b has no literal side.
	f.compare(f.b.NewList(source.Span{}, nil),
		ast.CompareOp{Op: ast.CmpEq, Comparator: f.b.NewList(source.Span{}, nil)})
	f.compare(f.name("a"), ast.CompareOp{Op: ast.CmpEq, Comparator: f.name("b")})

	if items := f.run(nil); len(items) != 0 {
		t.Fatalf("XOR rule violated, got %d diagnostics", len(items))
	}
}

func TestEmptyLiteralInferenceFailureSkips(t *testing.T) {
	f := newFixture()
	f.compare(f.name("unknown"),
		ast.CompareOp{Op: ast.CmpEq, Comparator: f.b.NewList(source.Span{}, nil)})

	if items := f.run(nil); len(items) != 0 {
		t.Fatalf("uninferable target must be skipped, got %d", len(items))
	}
}

func TestEmptyLiteralCustomBoolSuppressed(t *testing.T) {
	f := newFixture()
	custom := f.u.Define("Result")
	custom.Define("__bool__")
	f.eng.BindIdent("r", custom)
	f.compare(f.name("r"),
		ast.CompareOp{Op: ast.CmpEq, Comparator: f.b.NewList(source.Span{}, nil)})

	if items := f.run(nil); len(items) != 0 {
		t.Fatalf("non-container with bool override must be suppressed, got %d", len(items))
	}
}

func TestEmptyLiteralContainerSubclassStillFlagged(t *testing.T) {
	f := newFixture()
	listClass, _ := f.u.Lookup("list")
	sub := f.u.Define("TaskList", listClass)
	sub.Define("__bool__")
	f.eng.BindIdent("tasks", sub)
	f.compare(f.name("tasks"),
		ast.CompareOp{Op: ast.CmpEq, Comparator: f.b.NewList(source.Span{}, nil)})

	if items := f.run(nil); len(items) != 1 {
		t.Fatalf("list subclass is flagged even with a bool override, got %d", len(items))
	}
}

func TestEmptyLiteralIdentityOperatorExcluded(t *testing.T) {
	f := newFixture()
	f.bindList("x")
	f.compare(f.name("x"),
		ast.CompareOp{Op: ast.CmpIs, Comparator: f.b.NewList(source.Span{}, nil)})

	if items := f.run(nil); len(items) != 0 {
		t.Fatalf("identity comparison is out of scope for the literal rule, got %d", len(items))
	}
}

func TestEmptyLiteralOrderingOperator(t *testing.T) {
	f := newFixture()
	f.bindList("x")
	f.compare(f.name("x"),
		ast.CompareOp{Op: ast.CmpGt, Comparator: f.b.NewList(source.Span{}, nil)})

	items := f.run(nil)
	if len(items) != 1 {
		t.Fatalf("ordering against an empty literal is flagged, got %d", len(items))
	}
	if !strings.Contains(items[0].Message, "'x > []'") {
		t.Fatalf("original rendering: %q", items[0].Message)
	}
}

func TestEmptyLiteralCallTarget(t *testing.T) {
	f := newFixture()
	dictClass, _ := f.u.Lookup("dict")
	f.eng.BindCall("load", dictClass)
	call := f.b.NewCall(source.Span{}, f.name("load"), []ast.NodeID{f.name("path")})
	f.compare(call,
		ast.CompareOp{Op: ast.CmpEq, Comparator: f.b.NewDict(source.Span{}, nil, nil)})

	items := f.run(nil)
	if len(items) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(items))
	}
	want := "'load(...) == {}' can be simplified to 'not load(...)', if it is strictly a sequence, as an empty dict is falsey"
	if items[0].Message != want {
		t.Fatalf("message mismatch:\nwant %q\ngot  %q", want, items[0].Message)
	}
}

func TestEmptySetLiteralFallsBackToIterable(t *testing.T) {
	f := newFixture()
	f.bindList("x")
	f.compare(f.name("x"),
		ast.CompareOp{Op: ast.CmpEq, Comparator: f.b.NewSet(source.Span{}, nil)})

	items := f.run(nil)
	if len(items) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(items))
	}
	if !strings.Contains(items[0].Message, "an empty iterable is falsey") {
		t.Fatalf("set literal must use the iterable fallback: %q", items[0].Message)
	}
}

func TestIdempotence(t *testing.T) {
	build := func() *fixture {
		f := newFixture()
		f.bindList("x")
		f.ifStmt(f.lenCall(f.name("x")))
		f.compare(f.name("x"),
			ast.CompareOp{Op: ast.CmpEq, Comparator: f.b.NewList(source.Span{}, nil)})
		f.compare(f.name("s"),
			ast.CompareOp{Op: ast.CmpEq, Comparator: f.b.NewConst(source.Span{}, ast.StrValue(f.b.Intern("")))})
		return f
	}

	first := build()
	second := build()
	a := first.run(allRules(t))
	b := second.run(allRules(t))
	if len(a) != len(b) {
		t.Fatalf("run lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Message != b[i].Message || a[i].Code != b[i].Code || a[i].Confidence != b[i].Confidence {
			t.Fatalf("diagnostic %d differs between identical runs", i)
		}
	}
}
