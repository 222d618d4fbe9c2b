package ast

import (
	"testing"

	"github.com/romarionagy/pylint/internal/source"
)

func TestBuilderParentLinks(t *testing.T) {
	b := NewBuilder(0)

	// if len(x): pass
	x := b.NewName(source.Span{Start: 7, End: 8}, b.Intern("x"))
	lenName := b.NewName(source.Span{Start: 3, End: 6}, b.Intern("len"))
	call := b.NewCall(source.Span{Start: 3, End: 9}, lenName, []NodeID{x})
	ifStmt := b.NewIf(source.Span{Start: 0, End: 14}, call, nil, nil)
	module := b.NewModule(source.Span{Start: 0, End: 14}, []NodeID{ifStmt})

	if got := b.Parent(x); got != call {
		t.Fatalf("arg parent: expected %d, got %d", call, got)
	}
	if got := b.Parent(lenName); got != call {
		t.Fatalf("callee parent: expected %d, got %d", call, got)
	}
	if got := b.Parent(call); got != ifStmt {
		t.Fatalf("call parent: expected %d, got %d", ifStmt, got)
	}
	if got := b.Parent(ifStmt); got != module {
		t.Fatalf("if parent: expected %d, got %d", module, got)
	}
	if got := b.Parent(module); got != NoNodeID {
		t.Fatalf("module must be a root, got parent %d", got)
	}
}

func TestBuilderHasAncestor(t *testing.T) {
	b := NewBuilder(0)

	x := b.NewName(source.Span{}, b.Intern("x"))
	y := b.NewName(source.Span{}, b.Intern("y"))
	inner := b.NewBoolOp(source.Span{}, BoolOr, []NodeID{x, y})
	cond := b.NewUnaryOp(source.Span{}, UnaryNot, inner)
	ifStmt := b.NewIf(source.Span{}, cond, nil, nil)

	if !b.HasAncestor(x, ifStmt) {
		t.Fatalf("x must have the if statement as an ancestor")
	}
	if !b.HasAncestor(x, cond) {
		t.Fatalf("x must have the unary op as an ancestor")
	}
	if b.HasAncestor(ifStmt, x) {
		t.Fatalf("ancestry is not symmetric")
	}
	if b.HasAncestor(x, x) {
		t.Fatalf("a node is not its own ancestor")
	}
}

func TestBuilderAccessorsRejectWrongKind(t *testing.T) {
	b := NewBuilder(0)

	name := b.NewName(source.Span{}, b.Intern("seq"))
	if _, ok := b.Call(name); ok {
		t.Fatalf("Call accessor must reject a Name node")
	}
	if _, ok := b.Compare(NoNodeID); ok {
		t.Fatalf("accessors must reject NoNodeID")
	}

	list := b.NewList(source.Span{}, nil)
	seq, ok := b.Sequence(list)
	if !ok || len(seq.Elts) != 0 {
		t.Fatalf("Sequence accessor must work for list literals")
	}
	dict := b.NewDict(source.Span{}, nil, nil)
	if _, ok := b.Sequence(dict); ok {
		t.Fatalf("Sequence accessor must reject dict literals")
	}
}

func TestBuilderCompareData(t *testing.T) {
	b := NewBuilder(0)

	a := b.NewName(source.Span{}, b.Intern("a"))
	zero := b.NewConst(source.Span{}, IntValue(0))
	c := b.NewName(source.Span{}, b.Intern("c"))
	cmp := b.NewCompare(source.Span{}, a, []CompareOp{
		{Op: CmpEq, Comparator: zero},
		{Op: CmpNotEq, Comparator: c},
	})

	data, ok := b.Compare(cmp)
	if !ok {
		t.Fatalf("expected compare data")
	}
	if data.Left != a || len(data.Ops) != 2 {
		t.Fatalf("unexpected compare payload: %+v", data)
	}
	if data.Ops[0].Op != CmpEq || data.Ops[1].Op != CmpNotEq {
		t.Fatalf("operators out of order: %+v", data.Ops)
	}
	if b.Parent(zero) != cmp || b.Parent(c) != cmp {
		t.Fatalf("comparators must be adopted by the compare node")
	}
}

func TestConstValueZeroAndEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value ConstValue
		zero  bool
		empty bool
	}{
		{"int zero", IntValue(0), true, false},
		{"int nonzero", IntValue(7), false, false},
		{"float zero", FloatValue(0), true, false},
		{"bool false is not numeric zero", BoolValue(false), false, false},
		{"bool true", BoolValue(true), false, false},
		{"empty string", StrValue(source.NoStringID), false, true},
		{"none", NoneValue(), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.IsZeroNumber(); got != tt.zero {
				t.Fatalf("IsZeroNumber = %v, expected %v", got, tt.zero)
			}
			if got := tt.value.IsEmptyStr(); got != tt.empty {
				t.Fatalf("IsEmptyStr = %v, expected %v", got, tt.empty)
			}
		})
	}
}

func TestConstRepr(t *testing.T) {
	in := source.NewInterner()
	tests := []struct {
		value    ConstValue
		expected string
	}{
		{IntValue(0), "0"},
		{BoolValue(false), "False"},
		{BoolValue(true), "True"},
		{NoneValue(), "None"},
		{StrValue(in.Intern("hi")), "'hi'"},
		{StrValue(source.NoStringID), "''"},
		{FloatValue(1.5), "1.5"},
	}
	for _, tt := range tests {
		if got := tt.value.Repr(in); got != tt.expected {
			t.Fatalf("Repr: expected %q, got %q", tt.expected, got)
		}
	}
}
