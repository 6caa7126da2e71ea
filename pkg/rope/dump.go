package rope

import (
	"fmt"
	"strings"
)

// DumpTree renders the tree structure as indented ASCII, one node per
// line. Internal nodes show their stored weight and height; leaves
// additionally show their chunk with newlines escaped. Useful in tests
// and when poking at balancing behaviour.
//
// Example output:
//
//	( w:6, h:1 )
//	|-- [L] ( w:6, h:0 ) Hello\n
//	\__ [R] ( w:5, h:0 ) World
func (r *Rope) DumpTree() string {
	if r == nil || r.root == nil {
		return "(empty)"
	}

	var sb strings.Builder
	sb.WriteString(nodeLabel(r.root))
	sb.WriteByte('\n')

	if internal, ok := r.root.(*internalNode); ok {
		dumpChild(&sb, "", "|-- [L] ", internal.left, true)
		dumpChild(&sb, "", "\\__ [R] ", internal.right, false)
	}
	return sb.String()
}

func dumpChild(sb *strings.Builder, padding, pointer string, n node, hasSibling bool) {
	sb.WriteString(padding)
	sb.WriteString(pointer)
	sb.WriteString(nodeLabel(n))
	sb.WriteByte('\n')

	internal, ok := n.(*internalNode)
	if !ok {
		return
	}

	childPad := padding + "    "
	if hasSibling {
		childPad = padding + "|   "
	}
	dumpChild(sb, childPad, "|-- [L] ", internal.left, true)
	dumpChild(sb, childPad, "\\__ [R] ", internal.right, false)
}

func nodeLabel(n node) string {
	if leaf, ok := n.(*leafNode); ok {
		text := strings.ReplaceAll(string(leaf.data), "\n", "\\n")
		return fmt.Sprintf("( w:%d, h:0 ) %s", len(leaf.data), text)
	}

	internal := n.(*internalNode)
	return fmt.Sprintf("( w:%d, h:%d )", internal.weight, internal.height)
}
