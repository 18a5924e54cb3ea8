// Package editor is the engine façade: it owns the committed clip list and
// applies edit operations to it.
//
// A Session is built once per recognition result (or restored from a saved
// document) and then lives for the editing session. Every structural edit
// computes a new clip list from the previous one and commits it atomically:
// the committed list sits behind an atomic pointer, so a playback-tick
// lookup racing an edit sees either the whole pre-edit or the whole
// post-edit list, never a partially updated one. The engine itself expects
// a single logical writer (the host's event loop); it takes no locks.
//
// Operations validate their preconditions first and return a validation
// error with no state change when they are unmet. Successful operations
// append an action with full forward and inverse payloads to the bounded
// history log, so Undo and Redo reconstruct prior values exactly. Split and
// merge additionally pass through a debounce guard that suppresses
// re-entrant triggers from the same input gesture.
package editor
