package checkers

import (
	"fmt"

	"github.com/romarionagy/pylint/internal/ast"
	"github.com/romarionagy/pylint/internal/astfmt"
)

// literalDisplay classifies an empty-literal operand into the display
// category shown in the message and the canonical spelling used in the
// rendered comparison. Everything that is not a list, tuple or dict falls
// back to the generic "iterable" pair.
func literalDisplay(b *ast.Builder, id ast.NodeID) (description, literal string) {
	switch b.KindOf(id) {
	case ast.KindList:
		return "list", "[]"
	case ast.KindTuple:
		return "tuple", "()"
	case ast.KindDict:
		return "dict", "{}"
	default:
		return "iterable", "iterable"
	}
}

// targetDisplay renders the non-literal side for the suggestion text.
// Calls elide their arguments so the suggestion never reproduces
// arbitrarily long or side-effecting argument text; attribute and name
// expressions render verbatim; anything else collapses to a placeholder.
func targetDisplay(b *ast.Builder, id ast.NodeID) string {
	switch b.KindOf(id) {
	case ast.KindCall:
		if data, ok := b.Call(id); ok && data.Func.IsValid() {
			return astfmt.NodeString(b, data.Func) + "(...)"
		}
	case ast.KindAttribute, ast.KindName:
		return astfmt.NodeString(b, id)
	}
	return "x"
}

// comparisonMessageArgs builds the (original, suggestion, description)
// triple for the empty-literal comparison message.
func comparisonMessageArgs(b *ast.Builder, literalNode ast.NodeID, op ast.CmpOp, targetNode ast.NodeID) (original, suggestion, description string) {
	description, literal := literalDisplay(b, literalNode)
	name := targetDisplay(b, targetNode)
	original = fmt.Sprintf("%s %s %s", name, op, literal)
	if op == ast.CmpNotEq {
		suggestion = name
	} else {
		suggestion = "not " + name
	}
	return original, suggestion, description
}
