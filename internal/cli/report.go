package cli

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Luxem4ik23/debgraph/pkg/depgraph"
	"github.com/Luxem4ik23/debgraph/pkg/errors"
)

// reportFileName is where the JSON report is always written.
const reportFileName = "dependency_graph.json"

// report is the JSON document persisted after a successful build.
type report struct {
	Package    string              `json:"package"`
	Version    string              `json:"version"`
	Graph      *depgraph.Graph     `json:"graph"`
	Statistics depgraph.Statistics `json:"statistics"`
	Timestamp  string              `json:"timestamp"`
}

// writeReport serializes the graph and its statistics to path as
// indented JSON.
func writeReport(path string, g *depgraph.Graph, stats depgraph.Statistics) error {
	rep := report{
		Package:    g.Root,
		Version:    "",
		Graph:      g,
		Statistics: stats,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	if g.Dependencies != nil {
		rep.Version = g.Dependencies.Version
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to create report file %s", path)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to write report %s", path)
	}
	return nil
}
