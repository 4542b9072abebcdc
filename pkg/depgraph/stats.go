package depgraph

// Statistics is a derived, read-only summary of a built graph.
type Statistics struct {
	TotalPackages   int    `json:"total_packages"`
	RootPackage     string `json:"root_package"`
	MaxDepthReached int    `json:"max_depth_reached"`
	ErrorsCount     int    `json:"errors_count"`
	CyclesCount     int    `json:"cycles_count"`
	FilteredCount   int    `json:"filtered_count"`
}

// Analyze computes aggregate statistics over a graph.
//
// TotalPackages, ErrorsCount and CyclesCount count the nodes below the root
// (the root itself is excluded). MaxDepthReached is the maximum depth among
// all nodes and is 0 when the root has no children. FilteredCount is read
// from the graph's root-level field, not summed across nodes.
func Analyze(g *Graph) Statistics {
	stats := Statistics{
		RootPackage:   g.Root,
		FilteredCount: g.FilteredCount,
	}
	if g.Dependencies == nil {
		return stats
	}

	for _, name := range g.Dependencies.Children.Names() {
		child, _ := g.Dependencies.Children.Get(name)
		countNodes(child, &stats)
	}
	return stats
}

func countNodes(n *Node, stats *Statistics) {
	if n == nil {
		return
	}
	stats.TotalPackages++
	if n.Err != "" {
		stats.ErrorsCount++
	}
	if n.Cycle != "" {
		stats.CyclesCount++
	}
	if n.Depth > stats.MaxDepthReached {
		stats.MaxDepthReached = n.Depth
	}
	for _, name := range n.Children.Names() {
		child, _ := n.Children.Get(name)
		countNodes(child, stats)
	}
}
