package depgraph

import (
	"fmt"
	"io"
	"strings"
)

// Render writes the tree rooted at node to w as ASCII art.
//
// Siblings are connected with box-drawing connectors, "├──" for all but the
// last child and "└──" for the last one at each level. A node carrying an
// error or a cycle gets that detail rendered on an indented line beneath it
// and is not recursed into. Rendering degrades on malformed input (nil nodes,
// missing child maps) by skipping what it cannot interpret; it never fails.
func Render(w io.Writer, node *Node) {
	if node == nil {
		return
	}
	fmt.Fprintln(w, label(node))
	if renderDetails(w, node, 1) {
		return
	}
	renderChildren(w, node.Children, 0)
}

func renderChildren(w io.Writer, children *Children, indent int) {
	names := children.Names()
	for i, name := range names {
		connector := "├── "
		if i == len(names)-1 {
			connector = "└── "
		}

		child, ok := children.Get(name)
		if !ok || child == nil {
			fmt.Fprintln(w, strings.Repeat("    ", indent)+connector+name)
			continue
		}

		fmt.Fprintln(w, strings.Repeat("    ", indent)+connector+label(child))
		if renderDetails(w, child, indent+1) {
			continue
		}
		renderChildren(w, child.Children, indent+1)
	}
}

// renderDetails writes the error or cycle line for a node, reporting whether
// the node is terminal.
func renderDetails(w io.Writer, n *Node, indent int) bool {
	switch {
	case n.Err != "":
		fmt.Fprintln(w, strings.Repeat("    ", indent)+"error: "+n.Err)
		return true
	case n.Cycle != "":
		fmt.Fprintln(w, strings.Repeat("    ", indent)+"cycle: "+n.Cycle)
		return true
	}
	return false
}

func label(n *Node) string {
	if n.Version != "" {
		return fmt.Sprintf("%s (%s)", n.Package, n.Version)
	}
	return n.Package
}
