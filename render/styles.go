package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/structviz/trace"
)

// Styles draws node labels and headings.
type Styles struct {
	color  bool
	status map[trace.Status]lipgloss.Style
	title  lipgloss.Style
	muted  lipgloss.Style
}

// status palette, ANSI 256 codes
var palette = map[trace.Status]string{
	trace.Searching:  "33",
	trace.Found:      "42",
	trace.Processing: "208",
	trace.New:        "45",
	trace.Runner:     "141",
	trace.Visited:    "70",
	trace.Comparing:  "220",
	trace.Queued:     "110",
	trace.Start:      "199",
}

// NewStyles returns styles. With color off every method returns plain text.
func NewStyles(color bool) Styles {
	s := Styles{
		color:  color,
		status: make(map[trace.Status]lipgloss.Style, len(palette)),
		title:  lipgloss.NewStyle().Bold(true),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
	for st, c := range palette {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(c))
		if st == trace.Found || st == trace.Processing || st == trace.Start {
			style = style.Bold(true)
		}
		s.status[st] = style
	}
	return s
}

// Node renders "[label]" highlighted for st.
func (s Styles) Node(label string, st trace.Status) string {
	box := "[" + label + "]"
	if st == trace.Idle {
		return box
	}
	if !s.color {
		return box + "(" + st.String() + ")"
	}
	return s.status[st].Render(box)
}

// ID renders a bare node id highlighted for st.
func (s Styles) ID(id string, st trace.Status) string {
	if st == trace.Idle || !s.color {
		return id
	}
	return s.status[st].Render(id)
}

// Title renders a heading.
func (s Styles) Title(text string) string {
	if !s.color {
		return text
	}
	return s.title.Render(text)
}

// Muted renders secondary text such as null markers.
func (s Styles) Muted(text string) string {
	if !s.color {
		return text
	}
	return s.muted.Render(text)
}
