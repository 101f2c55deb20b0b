package render

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/structviz/core"
	"github.com/katalvlaran/structviz/linkedlist"
	"github.com/katalvlaran/structviz/trace"
	"github.com/katalvlaran/structviz/tree"
)

func newTable(w io.Writer, title string, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
	}
	t.AppendHeader(header)
	return t
}

// flush renders t boxed, or as markdown for the Markdown format.
func flush(t table.Writer, f Format) {
	if f == Markdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}

// StepTable lists step descriptions with their index.
func StepTable(w io.Writer, descriptions []string, f Format) {
	t := newTable(w, "", table.Row{"#", "Step"})
	for i, d := range descriptions {
		t.AppendRow(table.Row{i, d})
	}
	flush(t, f)
}

// ListTable dumps the nodes of l with their links.
func ListTable(w io.Writer, l linkedlist.List, f Format) {
	t := newTable(w, l.Kind().String()+" list", table.Row{"#", "ID", "Value", "Next", "Prev"})
	for i, n := range l.Nodes() {
		t.AppendRow(table.Row{i, n.ID, n.Value.String(), orNull(n.Next), orNull(n.Prev)})
	}
	flush(t, f)
}

// TreeStatsTable shows tree.Stats as metric/value rows.
func TreeStatsTable(w io.Writer, st tree.Stats, f Format) {
	t := newTable(w, "tree stats", table.Row{"Metric", "Value"})
	t.AppendRow(table.Row{"nodes", st.Count})
	t.AppendRow(table.Row{"height", st.Height})
	t.AppendRow(table.Row{"balanced", st.Balanced})
	if st.Min != nil && st.Max != nil {
		t.AppendRow(table.Row{"min", st.Min.String()})
		t.AppendRow(table.Row{"max", st.Max.String()})
	}
	flush(t, f)
}

// GraphStatsTable shows graph counts and a cycle basis.
func GraphStatsTable(w io.Writer, st core.GraphStats, cycles [][]string, f Format) {
	t := newTable(w, "graph stats", table.Row{"Metric", "Value"})
	t.AppendRow(table.Row{"nodes", st.NodeCount})
	t.AppendRow(table.Row{"edges", st.EdgeCount})
	t.AppendRow(table.Row{"components", st.Components})
	t.AppendRow(table.Row{"cycles", len(cycles)})
	for i, c := range cycles {
		t.AppendRow(table.Row{"cycle " + itoa(i+1), strings.Join(c, " - ")})
	}
	flush(t, f)
}

// DistanceTable lists Dijkstra distances in node id order.
func DistanceTable(w io.Writer, dist map[string]trace.Distance, f Format) {
	t := newTable(w, "distances", table.Row{"Node", "Distance"})
	for _, id := range sortedKeys(dist) {
		t.AppendRow(table.Row{id, dist[id].String()})
	}
	flush(t, f)
}

func orNull(id string) string {
	if id == "" {
		return "null"
	}
	return id
}
