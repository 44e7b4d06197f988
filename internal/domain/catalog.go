package domain

// CategoryNode is one node of the category hierarchy served by the backend.
// Exactly one shape is meaningful per node: a leaf carries the backend Path
// used to list its items, a branch carries Children. The whole tree arrives
// hydrated in a single response; expansion only controls what is rendered.
type CategoryNode struct {
	Name     string          `json:"name"`
	Path     string          `json:"path,omitempty"`
	Leaf     bool            `json:"leaf,omitempty"`
	Children []*CategoryNode `json:"children,omitempty"`

	Parent       *CategoryNode `json:"-"`
	Expanded     bool          `json:"-"`
	materialized bool
}

// IsLeaf reports whether the node is a selectable leaf category.
func (n *CategoryNode) IsLeaf() bool {
	return n.Leaf && n.Path != ""
}

// HasChildren reports whether the node is an expandable branch.
func (n *CategoryNode) HasChildren() bool {
	return len(n.Children) > 0
}

// Materialized reports whether the node's child rows have been built.
func (n *CategoryNode) Materialized() bool {
	return n.materialized
}

// Expand makes the node's children visible, materializing them on first
// expansion. Subsequent expansions only flip visibility.
func (n *CategoryNode) Expand() {
	if !n.materialized {
		for _, child := range n.Children {
			child.Parent = n
		}
		n.materialized = true
	}
	n.Expanded = true
}

// Collapse hides the node's children. Materialized rows are kept.
func (n *CategoryNode) Collapse() {
	n.Expanded = false
}

// Toggle flips the node's visibility.
func (n *CategoryNode) Toggle() {
	if n.Expanded {
		n.Collapse()
	} else {
		n.Expand()
	}
}

// Depth returns how deep the node sits below a root.
func (n *CategoryNode) Depth() int {
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

// FlattenTree returns the visible rows of a forest in render order:
// every root, then the children of each expanded node, recursively.
func FlattenTree(roots []*CategoryNode) []*CategoryNode {
	var out []*CategoryNode
	for _, n := range roots {
		flatten(n, &out)
	}
	return out
}

func flatten(n *CategoryNode, out *[]*CategoryNode) {
	*out = append(*out, n)
	if n.Expanded {
		for _, child := range n.Children {
			flatten(child, out)
		}
	}
}
