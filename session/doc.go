// Package session hosts one structure at a time and applies resolved
// commands to it.
//
// A session owns the current snapshot, an undo/redo history and the id
// generator new nodes draw from. Apply dispatches a command.Command to the
// matching engine operation and reports an Outcome: the command, the final
// step description and the engine result with its full trace.
//
// Rules shared by every session:
//
//   - History is pushed only after a mutating operation succeeds, so a
//     rejected insert or delete leaves nothing to undo.
//   - Changing the list kind, the tree kind or the dataset replaces the
//     structure with an empty one and clears the history.
//   - Operands are conformed to the session dataset before they reach an
//     engine; a non-numeric operand on the numbers dataset is rejected.
//
// Recoverable failures (see Recoverable) come back together with an Outcome
// whose description explains them. The structure is left untouched.
package session
