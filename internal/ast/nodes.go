package ast

import (
	"github.com/romarionagy/pylint/internal/source"
)

// Node is the fixed-size header every AST node shares. Parent is a
// back-reference into the same arena (NoNodeID for the root), so ancestor
// walks never touch pointers and cannot outlive the tree.
type Node struct {
	Kind    Kind
	Span    source.Span
	Parent  NodeID
	Payload PayloadID
}

// ModuleData is the body of a parsed module.
type ModuleData struct {
	Body []NodeID
}

// IfData covers both "if" and "elif" forms; an elif arrives as a nested
// If inside Orelse.
type IfData struct {
	Test   NodeID
	Body   []NodeID
	Orelse []NodeID
}

type WhileData struct {
	Test   NodeID
	Body   []NodeID
	Orelse []NodeID
}

// AssertData holds the asserted test and the optional failure message.
type AssertData struct {
	Test NodeID
	Msg  NodeID
}

type AssignData struct {
	Targets []NodeID
	Value   NodeID
}

// ExprStmtData wraps an expression evaluated for effect.
type ExprStmtData struct {
	Value NodeID
}

type NameData struct {
	Ident source.StringID
}

type AttributeData struct {
	Value NodeID
	Attr  source.StringID
}

type ConstData struct {
	Value ConstValue
}

type CallData struct {
	Func NodeID
	Args []NodeID
}

// CompareOp is one (operator, comparator) link in a chained comparison.
type CompareOp struct {
	Op         CmpOp
	Comparator NodeID
}

// CompareData keeps the leftmost operand separate from the operator
// links, mirroring how chained comparisons parse.
type CompareData struct {
	Left NodeID
	Ops  []CompareOp
}

type BoolOpData struct {
	Op     BoolOpKind
	Values []NodeID
}

type UnaryOpData struct {
	Op      UnaryOpKind
	Operand NodeID
}

type BinOpData struct {
	Op    BinOpKind
	Left  NodeID
	Right NodeID
}

type SubscriptData struct {
	Value NodeID
	Index NodeID
}

// SequenceData backs list, tuple and set literals; the node kind
// disambiguates them.
type SequenceData struct {
	Elts []NodeID
}

type DictData struct {
	Keys   []NodeID
	Values []NodeID
}

// CompData backs the four comprehension forms. Key is only set for dict
// comprehensions.
type CompData struct {
	Elt    NodeID
	Key    NodeID
	Target NodeID
	Iter   NodeID
	Ifs    []NodeID
}

type IfExpData struct {
	Test   NodeID
	Body   NodeID
	Orelse NodeID
}
