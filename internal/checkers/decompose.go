package checkers

import (
	"github.com/romarionagy/pylint/internal/ast"
)

// ChainElem is one element of a flattened comparison chain: either an
// operand node or an operator symbol, never both.
type ChainElem struct {
	IsOp bool
	Op   ast.CmpOp
	Node ast.NodeID
}

// FlattenCompare linearizes a chained comparison into the alternating
// odd-length sequence [operand, op, operand, op, operand, ...], e.g.
// `a == b != c` becomes [a, ==, b, !=, c]. Returns nil for anything that
// is not a comparison node.
func FlattenCompare(b *ast.Builder, id ast.NodeID) []ChainElem {
	data, ok := b.Compare(id)
	if !ok {
		return nil
	}
	chain := make([]ChainElem, 0, 1+2*len(data.Ops))
	chain = append(chain, ChainElem{Node: data.Left})
	for _, link := range data.Ops {
		chain = append(chain,
			ChainElem{IsOp: true, Op: link.Op},
			ChainElem{Node: link.Comparator},
		)
	}
	return chain
}
