// Package structviz is a step-recording engine for teaching data structures:
// every operation on a linked list, binary tree, heap or graph returns the
// sequence of intermediate states a visualizer plays back.
//
// 🚀 What is in the box?
//
//	• Linked lists: singly, doubly and both circular variants
//	• Trees: BST, AVL, max-heap and min-heap with traversals and stats
//	• Graph traversals: BFS, DFS and unit-weight Dijkstra over an undirected graph
//	• Sessions: command dispatch, per-structure undo/redo and dataset switching
//	• Playback and rendering: step cursors, text frames, tables, JSON and YAML
//
// ✨ Design
//
//   - Engines are pure: they take a value and return a new one plus its trace.
//   - Every step is a deep snapshot; nothing a trace holds changes later.
//   - Rejected operations still produce a one-step trace explaining why.
//
// Packages:
//
//	value/      - dataset-aware operand values (numbers, characters, colors, emojis)
//	trace/      - step, status overlay and traversal step types plus shared errors
//	linkedlist/ - list engine
//	tree/       - BST/AVL/heap engine, traversal orders, layout and stats
//	core/       - undirected Graph, Node and Edge with canvas positions
//	builder/    - sample and shape graph constructors
//	bfs/, dfs/, dijkstra/ - graph traversal engines
//	history/    - bounded undo/redo stacks of snapshots
//	command/    - operation vocabulary, intents and resolution
//	session/    - stateful hosts wiring commands, engines and history
//	playback/   - step cursor and timed replay
//	render/     - terminal frames, tables and step documents
//	snippet/    - C, C++ and Python reference code per list and tree operation
//	config/     - layered configuration and logger helpers
//
// Quick ASCII example of a traced insert into a singly linked list:
//
//	Inserting 9 at tail               [3] -> null
//	Linked 9 after the old tail       [3] -> [9](new) -> null
//	9 added. List now has 2 nodes     [3] -> [9] -> null
//
//	go install github.com/katalvlaran/structviz/cmd/structviz@latest
package structviz
