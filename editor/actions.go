package editor

import "github.com/kbukum/transcriptkit/transcript"

// Action payloads. Each carries the full values needed both to re-apply
// the operation and to reconstruct the prior state exactly, so inverses
// never depend on other engine state still being in place.

// splitData records a clip split (paragraph break).
type splitData struct {
	Original transcript.Clip
	First    transcript.Clip
	Second   transcript.Clip
}

// mergeData records a merge of a run of clips into one.
type mergeData struct {
	Originals []transcript.Clip
	Merged    transcript.Clip
}

// wordEditData records an in-place word text replacement.
type wordEditData struct {
	ClipID string
	Index  int
	Before transcript.Word
	After  transcript.Word
}

// wordDeleteData records a soft-delete or a restore of a word. The full
// word object is stored so undo does not depend on the deleted set still
// containing it.
type wordDeleteData struct {
	ClipID   string
	Index    int
	Word     transcript.Word
	Restored bool
}

// wordInsertData records a synthesized word insertion.
type wordInsertData struct {
	ClipID string
	Index  int
	Word   transcript.Word
}

// speakerData records a clip- or word-level speaker reassignment.
// WordIndex is nil for clip-level changes.
type speakerData struct {
	ClipID    string
	WordIndex *int
	Before    string
	After     string
}
