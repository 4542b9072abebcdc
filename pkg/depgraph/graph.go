package depgraph

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Node is one vertex of the traversal tree.
//
// At most one of Err and Cycle is set; either terminates expansion at this
// node. A node with neither and an empty child map is a satisfied leaf.
// Version is empty when the package could not be resolved.
type Node struct {
	Package       string    `json:"package"`
	Version       string    `json:"version,omitempty"`
	Depth         int       `json:"depth"`
	Children      *Children `json:"dependencies,omitempty"`
	FilteredCount int       `json:"filtered_count,omitempty"`
	Err           string    `json:"error,omitempty"`
	Cycle         string    `json:"cycle,omitempty"`
}

// Graph is the result of one traversal.
type Graph struct {
	Root string `json:"root"`
	// Dependencies is the root package's node, stored un-keyed at the top
	// level; its child map holds the actual tree.
	Dependencies *Node `json:"dependencies"`
	// Cycles is a reserved aggregate; cycle paths live on the nodes that
	// closed them.
	Cycles []string `json:"cycles"`
	// FilteredCount is the number of direct dependencies dropped at the
	// root, independent of the per-node counters below it.
	FilteredCount int `json:"filtered_count"`
}

// Children maps dependency names to child nodes while preserving insertion
// order, which is the traversal order. It marshals to a JSON object whose
// keys appear in that order.
type Children struct {
	order []string
	nodes map[string]*Node
}

// NewChildren returns an empty child map.
func NewChildren() *Children {
	return &Children{nodes: make(map[string]*Node)}
}

// Add inserts a child under name. Adding a name twice keeps the first child
// and its position.
func (c *Children) Add(name string, n *Node) {
	if _, ok := c.nodes[name]; ok {
		return
	}
	c.order = append(c.order, name)
	c.nodes[name] = n
}

// Get returns the child stored under name.
func (c *Children) Get(name string) (*Node, bool) {
	if c == nil {
		return nil, false
	}
	n, ok := c.nodes[name]
	return n, ok
}

// Names returns the child names in insertion order.
func (c *Children) Names() []string {
	if c == nil {
		return nil
	}
	return slices.Clone(c.order)
}

// Len returns the number of children.
func (c *Children) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// MarshalJSON encodes the children as a JSON object in insertion order.
func (c *Children) MarshalJSON() ([]byte, error) {
	if c == nil || len(c.order) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(c.nodes[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
