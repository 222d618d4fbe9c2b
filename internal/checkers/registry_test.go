package checkers

import (
	"testing"

	"github.com/romarionagy/pylint/internal/ast"
	"github.com/romarionagy/pylint/internal/diag"
)

func TestDefaultRuleActivation(t *testing.T) {
	rs := DefaultRules()
	if !rs.Enabled(diag.ImplicitBooleanessNotLen) {
		t.Fatalf("C1802 must default on")
	}
	if !rs.Enabled(diag.ImplicitBooleanessNotComparison) {
		t.Fatalf("C1803 must default on")
	}
	if rs.Enabled(diag.ImplicitBooleanessNotComparisonToString) {
		t.Fatalf("C1804 must default off")
	}
	if rs.Enabled(diag.ImplicitBooleanessNotComparisonToZero) {
		t.Fatalf("C1805 must default off")
	}
}

func TestResolveRuleAliases(t *testing.T) {
	tests := []struct {
		name string
		code diag.Code
	}{
		{"use-implicit-booleaness-not-len", diag.ImplicitBooleanessNotLen},
		{"C1802", diag.ImplicitBooleanessNotLen},
		{"len-as-condition", diag.ImplicitBooleanessNotLen},
		{"C1801", diag.ImplicitBooleanessNotLen},
		{"compare-to-empty-string", diag.ImplicitBooleanessNotComparisonToString},
		{"C2001", diag.ImplicitBooleanessNotComparisonToZero},
		{"USE-IMPLICIT-BOOLEANESS-NOT-COMPARISON", diag.ImplicitBooleanessNotComparison},
	}
	for _, tt := range tests {
		def, ok := ResolveRule(tt.name)
		if !ok {
			t.Fatalf("ResolveRule(%q) failed", tt.name)
		}
		if def.Code != tt.code {
			t.Fatalf("ResolveRule(%q) = %s, want %s", tt.name, def.Code.ID(), tt.code.ID())
		}
	}
	if _, ok := ResolveRule("no-such-rule"); ok {
		t.Fatalf("unknown name must not resolve")
	}
}

func TestRuleSetEnableDisable(t *testing.T) {
	rs := DefaultRules()
	if err := rs.Enable("compare-to-zero"); err != nil {
		t.Fatalf("enable by legacy alias: %v", err)
	}
	if !rs.Enabled(diag.ImplicitBooleanessNotComparisonToZero) {
		t.Fatalf("legacy alias did not enable the rule")
	}
	if err := rs.Disable("C1802"); err != nil {
		t.Fatalf("disable by code: %v", err)
	}
	if rs.Enabled(diag.ImplicitBooleanessNotLen) {
		t.Fatalf("disable by code did not take effect")
	}
	if err := rs.Enable("bogus"); err == nil {
		t.Fatalf("unknown rule must error")
	}
}

func TestWantsKindGating(t *testing.T) {
	rs := DefaultRules()
	if !rs.WantsKind(ast.KindCall) || !rs.WantsKind(ast.KindCompare) {
		t.Fatalf("call and compare kinds are wanted by default")
	}
	if rs.WantsKind(ast.KindAssign) {
		t.Fatalf("no rule is interested in assignments")
	}

	if err := rs.Disable("use-implicit-booleaness-not-len"); err != nil {
		t.Fatal(err)
	}
	if rs.WantsKind(ast.KindCall) || rs.WantsKind(ast.KindUnaryOp) {
		t.Fatalf("call and unary kinds must drop out once C1802 is off")
	}
	if !rs.WantsKind(ast.KindCompare) {
		t.Fatalf("compare stays wanted through C1803")
	}
}

func TestMessageByCode(t *testing.T) {
	def, ok := MessageByCode(diag.ImplicitBooleanessNotComparison)
	if !ok {
		t.Fatalf("C1803 must be declared")
	}
	if def.Symbol != "use-implicit-booleaness-not-comparison" {
		t.Fatalf("unexpected symbol %q", def.Symbol)
	}
	if _, ok := MessageByCode(diag.UnknownCode); ok {
		t.Fatalf("unknown code must not be declared")
	}
	if got := len(Messages()); got != 4 {
		t.Fatalf("expected 4 declared rules, got %d", got)
	}
}
