// Package transcript defines the core data model for the clip-based
// transcript engine: timestamped words, word/gap tokens, clips, raw
// recognizer segments, the soft-deleted word set, and the plain-record
// document exchanged with the persistence layer.
//
// All times are wall-clock audio seconds as float64. Words are immutable
// once produced by recognition; edit operations replace them wholesale
// rather than mutating in place. Clips carry a fractional display order
// so a split can insert between neighbors without renumbering the list.
//
// Ingestion (Normalize) is the only place recognizer input is repaired:
// non-monotonic word timings are sorted and clamped into their segment
// range with a logged warning, missing speakers default to a sentinel,
// and segments without word timings fall back to a single whole-segment
// word. Malformed segments reject the whole ingest and leave no state.
package transcript
