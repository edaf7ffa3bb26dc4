// Package hierarchy assembles an is-a taxonomy forest from extracted
// concepts and relationships. Nodes have at most one parent; the structure
// is a tree-of-trees so traversal and depth metrics stay well-defined.
package hierarchy

import (
	"fmt"
	"sort"
)

// Node is one entry in the taxonomy forest, indexed by concept name.
type Node struct {
	// Name is the concept name, or a kind name for synthetic parents.
	Name string `json:"name"`

	// Parent is the parent node name, empty for roots.
	Parent string `json:"parent,omitempty"`

	// Children lists child node names, sorted.
	Children []string `json:"children,omitempty"`

	// Depth is the distance from the root of this node's tree.
	Depth int `json:"depth"`

	// Synthetic marks kind parents created by the builder rather than
	// observed concepts.
	Synthetic bool `json:"synthetic,omitempty"`

	// Confidence carries the concept confidence, zero for synthetic nodes.
	Confidence float64 `json:"confidence,omitempty"`

	// Specificity is the placement score computed during building.
	Specificity float64 `json:"specificity,omitempty"`
}

// Forest is an id-indexed arena of hierarchy nodes.
type Forest struct {
	nodes map[string]*Node
}

// NewForest creates an empty forest.
func NewForest() *Forest {
	return &Forest{nodes: make(map[string]*Node)}
}

// AddNode inserts a node if absent and returns it.
func (f *Forest) AddNode(name string) *Node {
	if n, ok := f.nodes[name]; ok {
		return n
	}
	n := &Node{Name: name}
	f.nodes[name] = n
	return n
}

// Node returns the named node, or nil.
func (f *Forest) Node(name string) *Node {
	return f.nodes[name]
}

// Len returns the number of nodes.
func (f *Forest) Len() int { return len(f.nodes) }

// AttachChild adds a parent→child edge. The child must not already have a
// parent, and the edge is rejected if the child appears in the parent's
// ancestor chain; a rejected edge leaves the forest unchanged.
func (f *Forest) AttachChild(parent, child string) error {
	p, ok := f.nodes[parent]
	if !ok {
		return fmt.Errorf("unknown parent node %q", parent)
	}
	c, ok := f.nodes[child]
	if !ok {
		return fmt.Errorf("unknown child node %q", child)
	}
	if parent == child {
		return fmt.Errorf("node %q cannot parent itself", child)
	}
	if c.Parent != "" {
		return fmt.Errorf("node %q already has parent %q", child, c.Parent)
	}
	if f.inAncestry(parent, child) {
		return fmt.Errorf("edge %s→%s would create a cycle", parent, child)
	}

	c.Parent = parent
	p.Children = append(p.Children, child)
	sort.Strings(p.Children)
	return nil
}

// inAncestry walks the ancestor chain of start looking for target.
func (f *Forest) inAncestry(start, target string) bool {
	seen := make(map[string]struct{})
	for cur := start; cur != ""; {
		if cur == target {
			return true
		}
		if _, dup := seen[cur]; dup {
			// Defensive: a pre-existing cycle upstream terminates the walk.
			return true
		}
		seen[cur] = struct{}{}
		node, ok := f.nodes[cur]
		if !ok {
			return false
		}
		cur = node.Parent
	}
	return false
}

// Roots returns the names of all nodes without a parent, sorted.
func (f *Forest) Roots() []string {
	var roots []string
	for name, node := range f.nodes {
		if node.Parent == "" {
			roots = append(roots, name)
		}
	}
	sort.Strings(roots)
	return roots
}

// Nodes returns all nodes sorted by name.
func (f *Forest) Nodes() []*Node {
	out := make([]*Node, 0, len(f.nodes))
	for _, n := range f.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ComputeDepths propagates depth from roots outward.
func (f *Forest) ComputeDepths() {
	var walk func(name string, depth int)
	walk = func(name string, depth int) {
		node := f.nodes[name]
		node.Depth = depth
		for _, child := range node.Children {
			walk(child, depth+1)
		}
	}
	for _, root := range f.Roots() {
		walk(root, 0)
	}
}

// MaxDepth returns the deepest node depth.
func (f *Forest) MaxDepth() int {
	max := 0
	for _, n := range f.nodes {
		if n.Depth > max {
			max = n.Depth
		}
	}
	return max
}

// AverageBranching returns the mean child count over nodes with children.
func (f *Forest) AverageBranching() float64 {
	var parents, children int
	for _, n := range f.nodes {
		if len(n.Children) > 0 {
			parents++
			children += len(n.Children)
		}
	}
	if parents == 0 {
		return 0
	}
	return float64(children) / float64(parents)
}
