// Package history implements the bounded, linear edit action log with
// undo/redo semantics.
//
// The log keeps a current-position pointer. Appending while undone entries
// exist discards the redo tail (standard branch-discard semantics), and
// appending past the capacity evicts the oldest entry first. Undo and redo
// past the log bounds are silent no-ops: the caller checks the returned
// ok flag, there is no error to handle.
//
// Action payloads are opaque to the log; each operation stores both the
// values needed to redo and the prior values needed to undo, so inverses
// never depend on other engine state still being in place.
package history
