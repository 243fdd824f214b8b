package production

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/comalice/drills/internal/core"
	"github.com/comalice/drills/internal/primitives"
)

var _ core.Visualizer = (*DefaultVisualizer)(nil)

// DefaultVisualizer renders machines as Graphviz DOT.
type DefaultVisualizer struct{}

// ExportDOT generates Graphviz DOT source. The active state is filled,
// terminal states get a double border and guarded edges show their guard.
func (v *DefaultVisualizer) ExportDOT(config primitives.MachineConfig, current string) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", config.ID)
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, fontsize=10, style=rounded];\n")
	buf.WriteString("  edge [fontsize=9];\n")
	buf.WriteString("  __start [shape=point];\n")
	fmt.Fprintf(&buf, "  __start -> %q;\n", config.Initial)

	for _, s := range config.States {
		var attrs []string
		if config.IsTerminal(s) {
			attrs = append(attrs, "peripheries=2")
		}
		if s == current {
			attrs = append(attrs, `style="rounded,filled"`, "fillcolor=lightgreen")
		}
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q;\n", s)
			continue
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", s, strings.Join(attrs, ", "))
	}

	for _, e := range collectEdges(config) {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From, e.To, e.Label)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ExportJSON serializes the machine config to JSON.
func (v *DefaultVisualizer) ExportJSON(config primitives.MachineConfig) ([]byte, error) {
	return json.MarshalIndent(config, "", "  ")
}

// Edge represents a transition edge.
type Edge struct {
	From  string
	To    string
	Label string
}

// collectEdges expands multi-source transitions into one edge per source,
// sorted for stable output.
func collectEdges(config primitives.MachineConfig) []Edge {
	var edges []Edge
	for _, t := range config.Transitions {
		label := t.Event
		if t.Guard != "" {
			label += " [" + t.Guard + "]"
		}
		for _, from := range t.From {
			edges = append(edges, Edge{From: from, To: t.Target, Label: label})
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].Label < edges[j].Label
	})
	return edges
}
