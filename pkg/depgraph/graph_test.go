package depgraph

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"
)

func TestChildrenPreserveInsertionOrder(t *testing.T) {
	c := NewChildren()
	for _, name := range []string{"zebra", "alpha", "mango"} {
		c.Add(name, &Node{Package: name})
	}

	if got := c.Names(); !slices.Equal(got, []string{"zebra", "alpha", "mango"}) {
		t.Errorf("Names() = %v, want insertion order", got)
	}

	c.Add("zebra", &Node{Package: "zebra", Version: "9.9"})
	if c.Len() != 3 {
		t.Errorf("Len() = %d after duplicate Add, want 3", c.Len())
	}
	if n, _ := c.Get("zebra"); n.Version != "" {
		t.Error("duplicate Add should keep the first child")
	}
}

func TestChildrenMarshalJSONOrder(t *testing.T) {
	c := NewChildren()
	c.Add("zebra", &Node{Package: "zebra", Depth: 1})
	c.Add("alpha", &Node{Package: "alpha", Depth: 1})

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	out := string(data)
	if strings.Index(out, "zebra") > strings.Index(out, "alpha") {
		t.Errorf("JSON keys not in insertion order: %s", out)
	}

	// The object must round-trip as ordinary JSON.
	var decoded map[string]*Node
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if decoded["zebra"].Depth != 1 {
		t.Errorf("decoded zebra = %+v", decoded["zebra"])
	}
}

func TestChildrenMarshalEmpty(t *testing.T) {
	data, err := json.Marshal(NewChildren())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("empty children marshal = %s, want {}", data)
	}
}

func TestNodeJSONShape(t *testing.T) {
	leaf := &Node{Package: "leaf", Version: "1.0", Depth: 2, Children: NewChildren()}
	data, err := json.Marshal(leaf)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	out := string(data)

	for _, key := range []string{`"package":"leaf"`, `"version":"1.0"`, `"depth":2`, `"dependencies":{}`} {
		if !strings.Contains(out, key) {
			t.Errorf("node JSON missing %s: %s", key, out)
		}
	}
	for _, absent := range []string{"error", "cycle", "filtered_count"} {
		if strings.Contains(out, absent) {
			t.Errorf("node JSON should omit empty %s: %s", absent, out)
		}
	}

	cycleNode := &Node{Package: "x", Depth: 3, Cycle: "x -> y -> x"}
	data, _ = json.Marshal(cycleNode)
	if strings.Contains(string(data), "dependencies") {
		t.Errorf("terminal node should omit dependencies: %s", data)
	}
}
