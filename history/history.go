package history

import "time"

// DefaultLimit is the default maximum number of retained actions.
const DefaultLimit = 50

// ActionType identifies the kind of edit an action records.
type ActionType string

const (
	// ActionWordEdit records an in-place word text replacement.
	ActionWordEdit ActionType = "word-edit"
	// ActionSpeakerChange records a speaker reassignment.
	ActionSpeakerChange ActionType = "speaker-change"
	// ActionClipCreate records a clip-producing edit (merge).
	ActionClipCreate ActionType = "clip-create"
	// ActionWordInsert records a synthesized word insertion.
	ActionWordInsert ActionType = "word-insert"
	// ActionWordDelete records a word soft-delete or restore.
	ActionWordDelete ActionType = "word-delete"
	// ActionParagraphBreak records a clip split.
	ActionParagraphBreak ActionType = "paragraph-break"
)

// Action is one entry in the edit log. Data carries both the forward and
// inverse payloads for the recorded operation.
type Action struct {
	Type ActionType
	Data any
	Time time.Time
}

// Log is a bounded linear action log with a current-position pointer.
// Entries [0, pos) are applied; entries [pos, len) are undone and
// available for redo.
type Log struct {
	limit   int
	entries []Action
	pos     int
}

// NewLog creates a log with the given capacity. Non-positive capacities
// fall back to DefaultLimit.
func NewLog(limit int) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Log{limit: limit}
}

// Append records a new applied action. Any undone entries after the current
// position are discarded, and the oldest entry is evicted once the log is
// at capacity.
func (l *Log) Append(a Action) {
	l.entries = append(l.entries[:l.pos], a)
	if len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
	l.pos = len(l.entries)
}

// Undo steps the pointer back and returns the action to invert.
// Returns ok=false when there is nothing to undo.
func (l *Log) Undo() (Action, bool) {
	if l.pos == 0 {
		return Action{}, false
	}
	l.pos--
	return l.entries[l.pos], true
}

// Redo steps the pointer forward and returns the action to re-apply.
// Returns ok=false when there is nothing to redo.
func (l *Log) Redo() (Action, bool) {
	if l.pos >= len(l.entries) {
		return Action{}, false
	}
	a := l.entries[l.pos]
	l.pos++
	return a, true
}

// CanUndo reports whether an undo is available.
func (l *Log) CanUndo() bool { return l.pos > 0 }

// CanRedo reports whether a redo is available.
func (l *Log) CanRedo() bool { return l.pos < len(l.entries) }

// Len returns the number of retained entries.
func (l *Log) Len() int { return len(l.entries) }
