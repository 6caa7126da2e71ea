package rope

// splitNode splits a subtree at a byte offset into an ordered pair
// (left, right) such that merge(left, right) reproduces the input and
// left holds exactly pos bytes. Either side may be nil.
//
// The consumed subtree must not be used again by the caller: splitting
// mid-leaf replaces the leaf with two fresh siblings, and splitting an
// internal node reassembles its children into new trees.
func splitNode(n node, pos int) (node, node) {
	if n == nil {
		return nil, nil
	}

	if leaf, ok := n.(*leafNode); ok {
		m := len(leaf.data)
		if pos == 0 {
			return nil, leaf
		}
		if pos >= m {
			return leaf, nil
		}
		// Mid-leaf: the original leaf becomes unreachable, two owned
		// copies take its place.
		return newLeaf(leaf.data[:pos]), newLeaf(leaf.data[pos:])
	}

	internal := n.(*internalNode)
	w := internal.weight

	// Splitting exactly at the left/right boundary descends left, which
	// keeps the right subtree intact and avoids a redundant merge.
	if pos <= w {
		l1, l2 := splitNode(internal.left, pos)
		return l1, merge(l2, internal.right)
	}

	r1, r2 := splitNode(internal.right, pos-w)
	return merge(internal.left, r1), r2
}
