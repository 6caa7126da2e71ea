package rope

import (
	"fmt"
	"math"
)

// Balance operations keep the rope tree within AVL height bounds.
// Rotations are applied lazily: only when the balance factor's
// magnitude exceeds one, never on every merge.

// rebalance returns a possibly-rotated replacement for n.
//
// Leaves, nodes with two leaf children, and nodes already within the
// threshold are returned untouched, so cheap paths cost nothing. A
// skewed node gets the classical AVL treatment: an optional inner
// pre-rotation for the left-right / right-left cases, then the outer
// rotation, then a recursive pass over both children and a refresh of
// the stored weight and height.
func rebalance(n node) node {
	internal, ok := n.(*internalNode)
	if !ok {
		return n
	}
	if internal.left == nil || internal.right == nil {
		return n
	}
	if internal.left.isLeaf() && internal.right.isLeaf() {
		return n
	}

	b := balanceFactor(internal)
	if b <= 1 && b >= -1 {
		return n
	}

	if b > 1 { // Left heavy
		if balanceFactor(internal.left) < 0 {
			internal.left = rotateLeft(internal.left.(*internalNode))
		}
		internal = rotateRight(internal)
	} else { // Right heavy
		if balanceFactor(internal.right) > 0 {
			internal.right = rotateRight(internal.right.(*internalNode))
		}
		internal = rotateLeft(internal)
	}

	internal.left = rebalance(internal.left)
	internal.right = rebalance(internal.right)

	internal.updateWeight()
	internal.updateHeight()

	return internal
}

// rotateLeft lifts x's right child into x's place:
//
//	  x                y
//	 / \              / \
//	a   y     =>     x   c
//	   / \          / \
//	  b   c        a   b
//
// The left subtrees of both x and y change, so weights are refreshed
// along with heights.
func rotateLeft(x *internalNode) *internalNode {
	y, ok := x.right.(*internalNode)
	if !ok {
		return x
	}

	x.right = y.left
	y.left = x

	x.updateWeight()
	x.updateHeight()
	y.updateWeight()
	y.updateHeight()

	return y
}

// rotateRight is the mirror of rotateLeft.
func rotateRight(x *internalNode) *internalNode {
	y, ok := x.left.(*internalNode)
	if !ok {
		return x
	}

	x.left = y.right
	y.right = x

	x.updateWeight()
	x.updateHeight()
	y.updateWeight()
	y.updateHeight()

	return y
}

// ========== Tree Introspection ==========

// Depth returns the height of the rope tree. An empty rope and a
// single-leaf rope both have depth 0.
func (r *Rope) Depth() int {
	if r == nil || r.root == nil {
		return 0
	}
	return r.root.nodeHeight()
}

// IsBalanced reports whether the tree depth is within the expected
// logarithmic bound for its leaf count.
func (r *Rope) IsBalanced() bool {
	if r == nil || r.root == nil {
		return true
	}

	leaves := r.LeafCount()
	maxDepth := 2 * int(math.Ceil(math.Log2(float64(leaves+1))))
	return r.Depth() <= maxDepth
}

// LeafCount returns the number of leaf nodes in the rope tree.
func (r *Rope) LeafCount() int {
	if r == nil {
		return 0
	}
	return countLeaves(r.root)
}

func countLeaves(n node) int {
	if n == nil {
		return 0
	}
	internal, ok := n.(*internalNode)
	if !ok {
		return 1
	}
	return countLeaves(internal.left) + countLeaves(internal.right)
}

// NodeCount returns the total number of nodes in the rope tree.
func (r *Rope) NodeCount() int {
	if r == nil {
		return 0
	}
	return countNodes(r.root)
}

func countNodes(n node) int {
	if n == nil {
		return 0
	}
	internal, ok := n.(*internalNode)
	if !ok {
		return 1
	}
	return 1 + countNodes(internal.left) + countNodes(internal.right)
}

// TreeStats contains statistics about a rope's tree structure.
type TreeStats struct {
	NodeCount     int // Total number of nodes
	LeafCount     int // Number of leaf nodes
	InternalCount int // Number of internal nodes
	Depth         int // Maximum depth
	MinLeafSize   int // Smallest leaf size in bytes
	MaxLeafSize   int // Largest leaf size in bytes
	TotalBytes    int // Total byte length
}

// Stats returns statistics about the rope's tree structure.
func (r *Rope) Stats() *TreeStats {
	stats := &TreeStats{}
	if r == nil || r.root == nil {
		return stats
	}

	collectStats(r.root, 0, stats)
	stats.TotalBytes = r.root.totalWeight()
	return stats
}

func collectStats(n node, depth int, stats *TreeStats) {
	stats.NodeCount++

	internal, ok := n.(*internalNode)
	if !ok {
		leaf := n.(*leafNode)
		stats.LeafCount++
		stats.Depth = maxInt(stats.Depth, depth)

		size := len(leaf.data)
		if stats.MinLeafSize == 0 || size < stats.MinLeafSize {
			stats.MinLeafSize = size
		}
		if size > stats.MaxLeafSize {
			stats.MaxLeafSize = size
		}
		return
	}

	stats.InternalCount++
	collectStats(internal.left, depth+1, stats)
	collectStats(internal.right, depth+1, stats)
}

// ========== Validation ==========

// StructureError reports a violated tree invariant found by Validate.
type StructureError struct {
	Kind    string
	Message string
}

func (e *StructureError) Error() string {
	return e.Kind + ": " + e.Message
}

// Validate checks the integrity of the rope structure: every leaf is
// non-empty, every internal node has two children, the stored weight
// of each internal node equals its left subtree's byte total, and the
// cached height equals one plus the maximum child height.
//
// Returns nil if the rope is valid, or an error describing the first
// problem found.
func (r *Rope) Validate() error {
	if r == nil || r.root == nil {
		return nil
	}

	if err := validateNode(r.root); err != nil {
		return err
	}

	if got := r.root.totalWeight(); got != r.size {
		return &StructureError{
			Kind:    "SizeMismatch",
			Message: fmt.Sprintf("cached size %d, tree holds %d bytes", r.size, got),
		}
	}
	return nil
}

func validateNode(n node) error {
	internal, ok := n.(*internalNode)
	if !ok {
		leaf := n.(*leafNode)
		if len(leaf.data) == 0 {
			return &StructureError{
				Kind:    "EmptyLeaf",
				Message: "zero-length leaf in tree",
			}
		}
		return nil
	}

	if internal.left == nil || internal.right == nil {
		return &StructureError{
			Kind:    "MissingChild",
			Message: "internal node with nil child",
		}
	}

	if got := internal.left.totalWeight(); internal.weight != got {
		return &StructureError{
			Kind:    "WeightMismatch",
			Message: fmt.Sprintf("stored weight %d, left subtree holds %d bytes", internal.weight, got),
		}
	}

	wantHeight := 1 + maxInt(internal.left.nodeHeight(), internal.right.nodeHeight())
	if internal.height != wantHeight {
		return &StructureError{
			Kind:    "HeightMismatch",
			Message: fmt.Sprintf("stored height %d, children imply %d", internal.height, wantHeight),
		}
	}

	if err := validateNode(internal.left); err != nil {
		return err
	}
	return validateNode(internal.right)
}

// maxAbsBalance returns the largest |balance factor| over the subtree.
func maxAbsBalance(n node) int {
	internal, ok := n.(*internalNode)
	if !ok {
		return 0
	}

	b := balanceFactor(internal)
	if b < 0 {
		b = -b
	}

	b = maxInt(b, maxAbsBalance(internal.left))
	return maxInt(b, maxAbsBalance(internal.right))
}
