// Package command is the boundary between free-form intents and the engines.
//
// A command source (CLI tokens, YAML scripts, JSON from another process)
// produces an Intent: an operation tag plus optional operands. Resolve turns
// an Intent into a Command for one Structure, or rejects it with an error
// matching trace.ErrUnknownOperation. Tags are never compared anywhere else;
// sessions dispatch on the closed Op enum with exhaustive switches.
//
// Aliases follow the command vocabulary users already speak: on a list
// "insert" means insert_tail and "delete" means delete_value; on a tree
// "delete_value" means delete; on a graph "bfs", "dfs" and "dijkstra" are
// shorthands for start_traversal.
package command
