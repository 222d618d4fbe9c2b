package ast

import (
	"github.com/romarionagy/pylint/internal/source"
)

// Builder owns the node arena and the per-kind payload arenas. Nodes are
// immutable once allocated; the only slot written after allocation is the
// parent back-reference, wired when the enclosing node is built.
type Builder struct {
	Strings *source.Interner

	Nodes *Arena[Node]

	Modules    *Arena[ModuleData]
	Ifs        *Arena[IfData]
	Whiles     *Arena[WhileData]
	Asserts    *Arena[AssertData]
	Assigns    *Arena[AssignData]
	ExprStmts  *Arena[ExprStmtData]
	Names      *Arena[NameData]
	Attributes *Arena[AttributeData]
	Consts     *Arena[ConstData]
	Calls      *Arena[CallData]
	Compares   *Arena[CompareData]
	BoolOps    *Arena[BoolOpData]
	UnaryOps   *Arena[UnaryOpData]
	BinOps     *Arena[BinOpData]
	Subscripts *Arena[SubscriptData]
	Seqs       *Arena[SequenceData]
	Dicts      *Arena[DictData]
	Comps      *Arena[CompData]
	IfExps     *Arena[IfExpData]
}

// NewBuilder creates a Builder with arenas preallocated to capHint
// (defaults to 1<<8 when zero).
func NewBuilder(capHint uint) *Builder {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Builder{
		Strings:    source.NewInterner(),
		Nodes:      NewArena[Node](capHint),
		Modules:    NewArena[ModuleData](1),
		Ifs:        NewArena[IfData](capHint / 8),
		Whiles:     NewArena[WhileData](capHint / 8),
		Asserts:    NewArena[AssertData](capHint / 8),
		Assigns:    NewArena[AssignData](capHint / 8),
		ExprStmts:  NewArena[ExprStmtData](capHint / 8),
		Names:      NewArena[NameData](capHint),
		Attributes: NewArena[AttributeData](capHint / 4),
		Consts:     NewArena[ConstData](capHint / 2),
		Calls:      NewArena[CallData](capHint / 4),
		Compares:   NewArena[CompareData](capHint / 4),
		BoolOps:    NewArena[BoolOpData](capHint / 8),
		UnaryOps:   NewArena[UnaryOpData](capHint / 8),
		BinOps:     NewArena[BinOpData](capHint / 8),
		Subscripts: NewArena[SubscriptData](capHint / 8),
		Seqs:       NewArena[SequenceData](capHint / 8),
		Dicts:      NewArena[DictData](capHint / 8),
		Comps:      NewArena[CompData](capHint / 8),
		IfExps:     NewArena[IfExpData](capHint / 8),
	}
}

func (b *Builder) new(kind Kind, span source.Span, payload PayloadID) NodeID {
	return NodeID(b.Nodes.Allocate(Node{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// adopt records parent as the parent of every given child.
func (b *Builder) adopt(parent NodeID, children ...NodeID) {
	for _, child := range children {
		if !child.IsValid() {
			continue
		}
		if node := b.Nodes.Get(uint32(child)); node != nil {
			node.Parent = parent
		}
	}
}

// Get returns the node header for the given ID, nil when invalid.
func (b *Builder) Get(id NodeID) *Node {
	return b.Nodes.Get(uint32(id))
}

// KindOf returns the node kind, KindInvalid for an invalid ID.
func (b *Builder) KindOf(id NodeID) Kind {
	if node := b.Get(id); node != nil {
		return node.Kind
	}
	return KindInvalid
}

// Parent returns the parent node ID, NoNodeID at the root.
func (b *Builder) Parent(id NodeID) NodeID {
	if node := b.Get(id); node != nil {
		return node.Parent
	}
	return NoNodeID
}

// Span returns the source span of the node.
func (b *Builder) Span(id NodeID) source.Span {
	if node := b.Get(id); node != nil {
		return node.Span
	}
	return source.Span{}
}

// Len reports how many nodes the arena holds; valid IDs are 1..Len.
func (b *Builder) Len() uint32 {
	return b.Nodes.Len()
}

// NewModule creates the module root holding the top-level statements.
func (b *Builder) NewModule(span source.Span, body []NodeID) NodeID {
	payload := b.Modules.Allocate(ModuleData{Body: append([]NodeID(nil), body...)})
	id := b.new(KindModule, span, PayloadID(payload))
	b.adopt(id, body...)
	return id
}

// Module returns the module data for the given node ID.
func (b *Builder) Module(id NodeID) (*ModuleData, bool) {
	node := b.Get(id)
	if node == nil || node.Kind != KindModule {
		return nil, false
	}
	return b.Modules.Get(uint32(node.Payload)), true
}

// NewIf creates an if statement.
func (b *Builder) NewIf(span source.Span, test NodeID, body, orelse []NodeID) NodeID {
	payload := b.Ifs.Allocate(IfData{
		Test:   test,
		Body:   append([]NodeID(nil), body...),
		Orelse: append([]NodeID(nil), orelse...),
	})
	id := b.new(KindIf, span, PayloadID(payload))
	b.adopt(id, test)
	b.adopt(id, body...)
	b.adopt(id, orelse...)
	return id
}

// If returns the if data for the given node ID.
func (b *Builder) If(id NodeID) (*IfData, bool) {
	node := b.Get(id)
	if node == nil || node.Kind != KindIf {
		return nil, false
	}
	return b.Ifs.Get(uint32(node.Payload)), true
}

// NewWhile creates a while statement.
func (b *Builder) NewWhile(span source.Span, test NodeID, body, orelse []NodeID) NodeID {
	payload := b.Whiles.Allocate(WhileData{
		Test:   test,
		Body:   append([]NodeID(nil), body...),
		Orelse: append([]NodeID(nil), orelse...),
	})
	id := b.new(KindWhile, span, PayloadID(payload))
	b.adopt(id, test)
	b.adopt(id, body...)
	b.adopt(id, orelse...)
	return id
}

// While returns the while data for the given node ID.
func (b *Builder) While(id NodeID) (*WhileData, bool) {
	node := b.Get(id)
	if node == nil || node.Kind != KindWhile {
		return nil, false
	}
	return b.Whiles.Get(uint32(node.Payload)), true
}

// NewAssert creates an assert statement; msg may be NoNodeID.
func (b *Builder) NewAssert(span source.Span, test, msg NodeID) NodeID {
	payload := b.Asserts.Allocate(AssertData{Test: test, Msg: msg})
	id := b.new(KindAssert, span, PayloadID(payload))
	b.adopt(id, test, msg)
	return id
}

// Assert returns the assert data for the given node ID.
func (b *Builder) Assert(id NodeID) (*AssertData, bool) {
	node := b.Get(id)
	if node == nil || node.Kind != KindAssert {
		return nil, false
	}
	return b.Asserts.Get(uint32(node.Payload)), true
}

// NewAssign creates an assignment statement.
func (b *Builder) NewAssign(span source.Span, targets []NodeID, value NodeID) NodeID {
	payload := b.Assigns.Allocate(AssignData{
		Targets: append([]NodeID(nil), targets...),
		Value:   value,
	})
	id := b.new(KindAssign, span, PayloadID(payload))
	b.adopt(id, targets...)
	b.adopt(id, value)
	return id
}

// Assign returns the assignment data for the given node ID.
func (b *Builder) Assign(id NodeID) (*AssignData, bool) {
	node := b.Get(id)
	if node == nil || node.Kind != KindAssign {
		return nil, false
	}
	return b.Assigns.Get(uint32(node.Payload)), true
}

// NewExprStmt creates an expression statement.
func (b *Builder) NewExprStmt(span source.Span, value NodeID) NodeID {
	payload := b.ExprStmts.Allocate(ExprStmtData{Value: value})
	id := b.new(KindExprStmt, span, PayloadID(payload))
	b.adopt(id, value)
	return id
}

// ExprStmt returns the expression statement data for the given node ID.
func (b *Builder) ExprStmt(id NodeID) (*ExprStmtData, bool) {
	node := b.Get(id)
	if node == nil || node.Kind != KindExprStmt {
		return nil, false
	}
	return b.ExprStmts.Get(uint32(node.Payload)), true
}

// NewName creates an identifier expression.
func (b *Builder) NewName(span source.Span, ident source.StringID) NodeID {
	payload := b.Names.Allocate(NameData{Ident: ident})
	return b.new(KindName, span, PayloadID(payload))
}

// Name returns the identifier data for the given node ID.
func (b *Builder) Name(id NodeID) (*NameData, bool) {
	node := b.Get(id)
	if node == nil || node.Kind != KindName {
		return nil, false
	}
	return b.Names.Get(uint32(node.Payload)), true
}

// NewAttribute creates an attribute access expression.
func (b *Builder) NewAttribute(span source.Span, value NodeID, attr source.StringID) NodeID {
	payload := b.Attributes.Allocate(AttributeData{Value: value, Attr: attr})
	id := b.new(KindAttribute, span, PayloadID(payload))
	b.adopt(id, value)
	return id
}

// Attribute returns the attribute data for the given node ID.
func (b *Builder) Attribute(id NodeID) (*AttributeData, bool) {
	node := b.Get(id)
	if node == nil || node.Kind != KindAttribute {
		return nil, false
	}
	return b.Attributes.Get(uint32(node.Payload)), true
}

// NewConst creates a constant literal expression.
func (b *Builder) NewConst(span source.Span, value ConstValue) NodeID {
	payload := b.Consts.Allocate(ConstData{Value: value})
	return b.new(KindConst, span, PayloadID(payload))
}

// Const returns the constant data for the given node ID.
func (b *Builder) Const(id NodeID) (*ConstData, bool) {
	node := b.Get(id)
	if node == nil || node.Kind != KindConst {
		return nil, false
	}
	return b.Consts.Get(uint32(node.Payload)), true
}

// NewCall creates a call expression.
func (b *Builder) NewCall(span source.Span, fn NodeID, args []NodeID) NodeID {
	payload := b.Calls.Allocate(CallData{
		Func: fn,
		Args: append([]NodeID(nil), args...),
	})
	id := b.new(KindCall, span, PayloadID(payload))
	b.adopt(id, fn)
	b.adopt(id, args...)
	return id
}

// Call returns the call data for the given node ID.
func (b *Builder) Call(id NodeID) (*CallData, bool) {
	node := b.Get(id)
	if node == nil || node.Kind != KindCall {
		return nil, false
	}
	return b.Calls.Get(uint32(node.Payload)), true
}

// NewCompare creates a chained comparison expression.
func (b *Builder) NewCompare(span source.Span, left NodeID, ops []CompareOp) NodeID {
	payload := b.Compares.Allocate(CompareData{
		Left: left,
		Ops:  append([]CompareOp(nil), ops...),
	})
	id := b.new(KindCompare, span, PayloadID(payload))
	b.adopt(id, left)
	for _, op := range ops {
		b.adopt(id, op.Comparator)
	}
	return id
}

// Compare returns the comparison data for the given node ID.
func (b *Builder) Compare(id NodeID) (*CompareData, bool) {
	node := b.Get(id)
	if node == nil || node.Kind != KindCompare {
		return nil, false
	}
	return b.Compares.Get(uint32(node.Payload)), true
}

// NewBoolOp creates an and/or expression.
func (b *Builder) NewBoolOp(span source.Span, op BoolOpKind, values []NodeID) NodeID {
	payload := b.BoolOps.Allocate(BoolOpData{
		Op:     op,
		Values: append([]NodeID(nil), values...),
	})
	id := b.new(KindBoolOp, span, PayloadID(payload))
	b.adopt(id, values...)
	return id
}

// BoolOp returns the boolean-operator data for the given node ID.
func (b *Builder) BoolOp(id NodeID) (*BoolOpData, bool) {
	node := b.Get(id)
	if node == nil || node.Kind != KindBoolOp {
		return nil, false
	}
	return b.BoolOps.Get(uint32(node.Payload)), true
}

// NewUnaryOp creates a unary expression.
func (b *Builder) NewUnaryOp(span source.Span, op UnaryOpKind, operand NodeID) NodeID {
	payload := b.UnaryOps.Allocate(UnaryOpData{Op: op, Operand: operand})
	id := b.new(KindUnaryOp, span, PayloadID(payload))
	b.adopt(id, operand)
	return id
}

// UnaryOp returns the unary data for the given node ID.
func (b *Builder) UnaryOp(id NodeID) (*UnaryOpData, bool) {
	node := b.Get(id)
	if node == nil || node.Kind != KindUnaryOp {
		return nil, false
	}
	return b.UnaryOps.Get(uint32(node.Payload)), true
}

// NewBinOp creates an arithmetic binary expression.
func (b *Builder) NewBinOp(span source.Span, op BinOpKind, left, right NodeID) NodeID {
	payload := b.BinOps.Allocate(BinOpData{Op: op, Left: left, Right: right})
	id := b.new(KindBinOp, span, PayloadID(payload))
	b.adopt(id, left, right)
	return id
}

// BinOp returns the binary data for the given node ID.
func (b *Builder) BinOp(id NodeID) (*BinOpData, bool) {
	node := b.Get(id)
	if node == nil || node.Kind != KindBinOp {
		return nil, false
	}
	return b.BinOps.Get(uint32(node.Payload)), true
}

// NewSubscript creates an index expression.
func (b *Builder) NewSubscript(span source.Span, value, index NodeID) NodeID {
	payload := b.Subscripts.Allocate(SubscriptData{Value: value, Index: index})
	id := b.new(KindSubscript, span, PayloadID(payload))
	b.adopt(id, value, index)
	return id
}

// Subscript returns the subscript data for the given node ID.
func (b *Builder) Subscript(id NodeID) (*SubscriptData, bool) {
	node := b.Get(id)
	if node == nil || node.Kind != KindSubscript {
		return nil, false
	}
	return b.Subscripts.Get(uint32(node.Payload)), true
}

func (b *Builder) newSequence(kind Kind, span source.Span, elts []NodeID) NodeID {
	payload := b.Seqs.Allocate(SequenceData{Elts: append([]NodeID(nil), elts...)})
	id := b.new(kind, span, PayloadID(payload))
	b.adopt(id, elts...)
	return id
}

// NewList creates a list literal.
func (b *Builder) NewList(span source.Span, elts []NodeID) NodeID {
	return b.newSequence(KindList, span, elts)
}

// NewTuple creates a tuple literal.
func (b *Builder) NewTuple(span source.Span, elts []NodeID) NodeID {
	return b.newSequence(KindTuple, span, elts)
}

// NewSet creates a set literal.
func (b *Builder) NewSet(span source.Span, elts []NodeID) NodeID {
	return b.newSequence(KindSet, span, elts)
}

// Sequence returns the element list for a list, tuple or set literal.
func (b *Builder) Sequence(id NodeID) (*SequenceData, bool) {
	node := b.Get(id)
	if node == nil {
		return nil, false
	}
	switch node.Kind {
	case KindList, KindTuple, KindSet:
		return b.Seqs.Get(uint32(node.Payload)), true
	}
	return nil, false
}

// NewDict creates a dict literal; keys and values run in parallel.
func (b *Builder) NewDict(span source.Span, keys, values []NodeID) NodeID {
	payload := b.Dicts.Allocate(DictData{
		Keys:   append([]NodeID(nil), keys...),
		Values: append([]NodeID(nil), values...),
	})
	id := b.new(KindDict, span, PayloadID(payload))
	b.adopt(id, keys...)
	b.adopt(id, values...)
	return id
}

// Dict returns the dict data for the given node ID.
func (b *Builder) Dict(id NodeID) (*DictData, bool) {
	node := b.Get(id)
	if node == nil || node.Kind != KindDict {
		return nil, false
	}
	return b.Dicts.Get(uint32(node.Payload)), true
}

func (b *Builder) newComp(kind Kind, span source.Span, data CompData) NodeID {
	data.Ifs = append([]NodeID(nil), data.Ifs...)
	payload := b.Comps.Allocate(data)
	id := b.new(kind, span, PayloadID(payload))
	b.adopt(id, data.Elt, data.Key, data.Target, data.Iter)
	b.adopt(id, data.Ifs...)
	return id
}

// NewListComp creates a list comprehension.
func (b *Builder) NewListComp(span source.Span, elt, target, iter NodeID, ifs []NodeID) NodeID {
	return b.newComp(KindListComp, span, CompData{Elt: elt, Target: target, Iter: iter, Ifs: ifs})
}

// NewSetComp creates a set comprehension.
func (b *Builder) NewSetComp(span source.Span, elt, target, iter NodeID, ifs []NodeID) NodeID {
	return b.newComp(KindSetComp, span, CompData{Elt: elt, Target: target, Iter: iter, Ifs: ifs})
}

// NewDictComp creates a dict comprehension.
func (b *Builder) NewDictComp(span source.Span, key, value, target, iter NodeID, ifs []NodeID) NodeID {
	return b.newComp(KindDictComp, span, CompData{Elt: value, Key: key, Target: target, Iter: iter, Ifs: ifs})
}

// NewGeneratorExp creates a generator expression.
func (b *Builder) NewGeneratorExp(span source.Span, elt, target, iter NodeID, ifs []NodeID) NodeID {
	return b.newComp(KindGeneratorExp, span, CompData{Elt: elt, Target: target, Iter: iter, Ifs: ifs})
}

// Comprehension returns the comprehension data for any of the four
// comprehension kinds.
func (b *Builder) Comprehension(id NodeID) (*CompData, bool) {
	node := b.Get(id)
	if node == nil || !node.Kind.IsComprehension() {
		return nil, false
	}
	return b.Comps.Get(uint32(node.Payload)), true
}

// NewIfExp creates a ternary conditional expression.
func (b *Builder) NewIfExp(span source.Span, test, body, orelse NodeID) NodeID {
	payload := b.IfExps.Allocate(IfExpData{Test: test, Body: body, Orelse: orelse})
	id := b.new(KindIfExp, span, PayloadID(payload))
	b.adopt(id, test, body, orelse)
	return id
}

// IfExp returns the ternary data for the given node ID.
func (b *Builder) IfExp(id NodeID) (*IfExpData, bool) {
	node := b.Get(id)
	if node == nil || node.Kind != KindIfExp {
		return nil, false
	}
	return b.IfExps.Get(uint32(node.Payload)), true
}

// Intern is a convenience wrapper over the builder's interner.
func (b *Builder) Intern(s string) source.StringID {
	return b.Strings.Intern(s)
}

// LookupString resolves an interned ID, returning "" when invalid.
func (b *Builder) LookupString(id source.StringID) string {
	s, _ := b.Strings.Lookup(id)
	return s
}
