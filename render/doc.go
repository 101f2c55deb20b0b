// Package render turns traces into text frames, tables and documents.
//
// Frames are plain multi-line strings: the step description followed by a
// picture of the structure. Node highlights come from the step overlay and
// are drawn with lipgloss when color is on, or spelled out as "[v](status)"
// when it is off. Tables use go-pretty and render either boxed or as
// markdown. Documents (ListDocs, TreeDocs) are the JSON/YAML shape of a
// trace, with tree nodes carrying their layout coordinates.
package render
