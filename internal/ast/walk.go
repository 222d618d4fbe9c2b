package ast

// HasAncestor reports whether anc appears on node's parent chain (a node
// is not its own ancestor). Parent slots form a forest, so the walk
// terminates at a root.
func (b *Builder) HasAncestor(node, anc NodeID) bool {
	if !node.IsValid() || !anc.IsValid() {
		return false
	}
	for cur := b.Parent(node); cur.IsValid(); cur = b.Parent(cur) {
		if cur == anc {
			return true
		}
	}
	return false
}
