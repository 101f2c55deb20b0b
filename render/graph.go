package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/structviz/core"
	"github.com/katalvlaran/structviz/trace"
)

// GraphFrame describes one traversal step line by line. Lines without
// content are left out, except visited and frontier.
func GraphFrame(s Styles, step trace.TraversalStep) string {
	var b strings.Builder
	b.WriteString(s.Title(step.Description))

	if step.Current != "" {
		fmt.Fprintf(&b, "\ncurrent:  %s", s.ID(step.Current, trace.Processing))
	}
	visited := make([]string, len(step.Visited))
	for i, id := range step.Visited {
		visited[i] = s.ID(id, trace.Visited)
	}
	fmt.Fprintf(&b, "\nvisited:  %s", orDash(visited))

	frontier := make([]string, len(step.Frontier))
	for i, f := range step.Frontier {
		frontier[i] = s.ID(f.String(), trace.Queued)
	}
	fmt.Fprintf(&b, "\nfrontier: %s", orDash(frontier))

	if len(step.Edges) > 0 {
		edges := make([]string, len(step.Edges))
		for i, e := range step.Edges {
			edges[i] = e.Source + "-" + e.Target
		}
		fmt.Fprintf(&b, "\nedges:    %s", strings.Join(edges, ", "))
	}
	if len(step.Distances) > 0 {
		fmt.Fprintf(&b, "\ndistance: %s", distanceLine(step.Distances))
	}
	if len(step.FinalOrder) > 0 {
		fmt.Fprintf(&b, "\norder:    %s", strings.Join(step.FinalOrder, ", "))
	}
	return b.String()
}

func orDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

// distanceLine renders "1=0 2=1 3=Infinity" in node id order.
func distanceLine(dist map[string]trace.Distance) string {
	ids := sortedKeys(dist)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id + "=" + dist[id].String()
	}
	return strings.Join(parts, " ")
}

func sortedKeys(dist map[string]trace.Distance) []string {
	ids := make([]string, 0, len(dist))
	for id := range dist {
		ids = append(ids, id)
	}
	core.SortIDs(ids)
	return ids
}
