// Package astfmt renders AST nodes back to Python source text. Detectors
// never build display strings themselves; everything user-visible goes
// through this package.
package astfmt

import (
	"strings"

	"github.com/romarionagy/pylint/internal/ast"
)

const inlineMaxDepth = 32

// NodeString produces the canonical source spelling of the given node.
// Invalid or unresolvable nodes render as placeholders rather than
// failing, since the result only feeds diagnostic text.
func NodeString(b *ast.Builder, id ast.NodeID) string {
	return nodeStringDepth(b, id, 0)
}

func nodeStringDepth(b *ast.Builder, id ast.NodeID, depth int) string {
	if !id.IsValid() {
		return "<none>"
	}
	if b == nil {
		return "<invalid>"
	}
	if depth >= inlineMaxDepth {
		return "..."
	}

	node := b.Get(id)
	if node == nil {
		return "<invalid>"
	}

	switch node.Kind {
	case ast.KindName:
		data, ok := b.Name(id)
		if !ok {
			return "<invalid-name>"
		}
		return b.LookupString(data.Ident)

	case ast.KindAttribute:
		data, ok := b.Attribute(id)
		if !ok {
			return "<invalid-attribute>"
		}
		return nodeStringDepth(b, data.Value, depth+1) + "." + b.LookupString(data.Attr)

	case ast.KindConst:
		data, ok := b.Const(id)
		if !ok {
			return "<invalid-const>"
		}
		return data.Value.Repr(b.Strings)

	case ast.KindCall:
		data, ok := b.Call(id)
		if !ok {
			return "<invalid-call>"
		}
		args := make([]string, 0, len(data.Args))
		for _, arg := range data.Args {
			args = append(args, nodeStringDepth(b, arg, depth+1))
		}
		return nodeStringDepth(b, data.Func, depth+1) + "(" + strings.Join(args, ", ") + ")"

	case ast.KindCompare:
		data, ok := b.Compare(id)
		if !ok {
			return "<invalid-compare>"
		}
		var sb strings.Builder
		sb.WriteString(nodeStringDepth(b, data.Left, depth+1))
		for _, op := range data.Ops {
			sb.WriteString(" ")
			sb.WriteString(op.Op.String())
			sb.WriteString(" ")
			sb.WriteString(nodeStringDepth(b, op.Comparator, depth+1))
		}
		return sb.String()

	case ast.KindBoolOp:
		data, ok := b.BoolOp(id)
		if !ok {
			return "<invalid-boolop>"
		}
		parts := make([]string, 0, len(data.Values))
		for _, v := range data.Values {
			parts = append(parts, nodeStringDepth(b, v, depth+1))
		}
		return strings.Join(parts, " "+data.Op.String()+" ")

	case ast.KindUnaryOp:
		data, ok := b.UnaryOp(id)
		if !ok {
			return "<invalid-unaryop>"
		}
		operand := nodeStringDepth(b, data.Operand, depth+1)
		if data.Op == ast.UnaryNot {
			return "not " + operand
		}
		return data.Op.String() + operand

	case ast.KindBinOp:
		data, ok := b.BinOp(id)
		if !ok {
			return "<invalid-binop>"
		}
		return nodeStringDepth(b, data.Left, depth+1) + " " + data.Op.String() + " " + nodeStringDepth(b, data.Right, depth+1)

	case ast.KindSubscript:
		data, ok := b.Subscript(id)
		if !ok {
			return "<invalid-subscript>"
		}
		return nodeStringDepth(b, data.Value, depth+1) + "[" + nodeStringDepth(b, data.Index, depth+1) + "]"

	case ast.KindList:
		return "[" + sequenceString(b, id, depth) + "]"

	case ast.KindTuple:
		data, ok := b.Sequence(id)
		if !ok {
			return "<invalid-tuple>"
		}
		if len(data.Elts) == 1 {
			return "(" + nodeStringDepth(b, data.Elts[0], depth+1) + ", )"
		}
		return "(" + sequenceString(b, id, depth) + ")"

	case ast.KindSet:
		data, ok := b.Sequence(id)
		if !ok {
			return "<invalid-set>"
		}
		if len(data.Elts) == 0 {
			return "set()"
		}
		return "{" + sequenceString(b, id, depth) + "}"

	case ast.KindDict:
		data, ok := b.Dict(id)
		if !ok {
			return "<invalid-dict>"
		}
		parts := make([]string, 0, len(data.Keys))
		for i, key := range data.Keys {
			value := ast.NoNodeID
			if i < len(data.Values) {
				value = data.Values[i]
			}
			parts = append(parts, nodeStringDepth(b, key, depth+1)+": "+nodeStringDepth(b, value, depth+1))
		}
		return "{" + strings.Join(parts, ", ") + "}"

	case ast.KindListComp:
		return "[" + compString(b, id, depth) + "]"

	case ast.KindSetComp:
		return "{" + compString(b, id, depth) + "}"

	case ast.KindDictComp:
		data, ok := b.Comprehension(id)
		if !ok {
			return "<invalid-comp>"
		}
		return "{" + nodeStringDepth(b, data.Key, depth+1) + ": " + compString(b, id, depth) + "}"

	case ast.KindGeneratorExp:
		return "(" + compString(b, id, depth) + ")"

	case ast.KindIfExp:
		data, ok := b.IfExp(id)
		if !ok {
			return "<invalid-ifexp>"
		}
		return nodeStringDepth(b, data.Body, depth+1) + " if " + nodeStringDepth(b, data.Test, depth+1) + " else " + nodeStringDepth(b, data.Orelse, depth+1)

	case ast.KindExprStmt:
		data, ok := b.ExprStmt(id)
		if !ok {
			return "<invalid-stmt>"
		}
		return nodeStringDepth(b, data.Value, depth+1)

	case ast.KindAssign:
		data, ok := b.Assign(id)
		if !ok {
			return "<invalid-assign>"
		}
		targets := make([]string, 0, len(data.Targets))
		for _, tgt := range data.Targets {
			targets = append(targets, nodeStringDepth(b, tgt, depth+1))
		}
		return strings.Join(targets, " = ") + " = " + nodeStringDepth(b, data.Value, depth+1)

	case ast.KindIf, ast.KindWhile, ast.KindAssert, ast.KindModule:
		// Statements with bodies never feed diagnostic text directly.
		return "<" + strings.ToLower(node.Kind.String()) + ">"
	}
	return "<unknown>"
}

func sequenceString(b *ast.Builder, id ast.NodeID, depth int) string {
	data, ok := b.Sequence(id)
	if !ok {
		return "<invalid-sequence>"
	}
	parts := make([]string, 0, len(data.Elts))
	for _, elt := range data.Elts {
		parts = append(parts, nodeStringDepth(b, elt, depth+1))
	}
	return strings.Join(parts, ", ")
}

// compString renders the "<elt> for <target> in <iter> if <cond>" tail
// shared by all comprehension forms.
func compString(b *ast.Builder, id ast.NodeID, depth int) string {
	data, ok := b.Comprehension(id)
	if !ok {
		return "<invalid-comp>"
	}
	var sb strings.Builder
	sb.WriteString(nodeStringDepth(b, data.Elt, depth+1))
	sb.WriteString(" for ")
	sb.WriteString(nodeStringDepth(b, data.Target, depth+1))
	sb.WriteString(" in ")
	sb.WriteString(nodeStringDepth(b, data.Iter, depth+1))
	for _, cond := range data.Ifs {
		sb.WriteString(" if ")
		sb.WriteString(nodeStringDepth(b, cond, depth+1))
	}
	return sb.String()
}
