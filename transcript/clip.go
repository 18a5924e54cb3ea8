package transcript

import (
	"sort"
	"strings"
	"time"
)

// ClipType identifies how a clip came to exist.
type ClipType string

const (
	// ClipTranscribed is a clip produced from recognizer output.
	ClipTranscribed ClipType = "transcribed"
	// ClipUserCreated is a clip produced by a user edit (e.g. merge).
	ClipUserCreated ClipType = "user-created"
	// ClipAudioOnly is a synthetic filler clip covering silence between
	// speech clips so the clip list tiles the full audio duration.
	ClipAudioOnly ClipType = "audio-only"
)

// ClipStatus is the soft-delete state of a clip.
type ClipStatus string

const (
	// ClipActive marks a clip as live.
	ClipActive ClipStatus = "active"
	// ClipDeleted marks a clip as soft-deleted. Deleted clips are retained
	// for undo but excluded from rendering and playback.
	ClipDeleted ClipStatus = "deleted"
)

// Clip is a contiguous, orderable unit of transcript content spanning a
// time range.
type Clip struct {
	// ID is a stable string identifier (uuid).
	ID string `json:"id"`
	// Start is the clip start time in seconds.
	Start float64 `json:"start"`
	// End is the clip end time in seconds.
	End float64 `json:"end"`
	// StartWordIndex is the global index of the clip's first word in
	// playback order, or -1 for clips with no words.
	StartWordIndex int `json:"start_word_index"`
	// EndWordIndex is the global index of the clip's last word (inclusive),
	// or -1 for clips with no words.
	EndWordIndex int `json:"end_word_index"`
	// Words is the clip's word sequence in time order.
	Words []Word `json:"words"`
	// Tokens is the clip's renderable token sequence (words and gaps).
	Tokens []Token `json:"tokens"`
	// Text is the space-joined word text.
	Text string `json:"text"`
	// Speaker is the clip-level speaker id.
	Speaker string `json:"speaker,omitempty"`
	// Type identifies how the clip came to exist.
	Type ClipType `json:"type"`
	// Order is the display order. Fractional values allow insertion
	// between neighbors without renumbering.
	Order float64 `json:"order"`
	// Status is the soft-delete state.
	Status ClipStatus `json:"status"`
	// CreatedAt is when the clip was created.
	CreatedAt time.Time `json:"created_at"`
	// ModifiedAt is when the clip was last changed by an edit.
	ModifiedAt time.Time `json:"modified_at"`
}

// Duration returns the clip duration in seconds.
func (c Clip) Duration() float64 { return c.End - c.Start }

// Contains reports whether t falls inside [Start, End).
func (c Clip) Contains(t float64) bool { return t >= c.Start && t < c.End }

// IsActive reports whether the clip is live.
func (c Clip) IsActive() bool { return c.Status == ClipActive }

// JoinWords joins word texts with single spaces.
func JoinWords(words []Word) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if w.Text != "" {
			parts = append(parts, w.Text)
		}
	}
	return strings.Join(parts, " ")
}

// ActiveClips returns the live clips from the list, preserving order.
func ActiveClips(clips []Clip) []Clip {
	out := make([]Clip, 0, len(clips))
	for _, c := range clips {
		if c.IsActive() {
			out = append(out, c)
		}
	}
	return out
}

// SortByOrder sorts clips by display order in place.
func SortByOrder(clips []Clip) {
	sort.SliceStable(clips, func(i, j int) bool { return clips[i].Order < clips[j].Order })
}

// SortByStart sorts clips by start time in place.
func SortByStart(clips []Clip) {
	sort.SliceStable(clips, func(i, j int) bool { return clips[i].Start < clips[j].Start })
}

// ReindexWords recomputes global word indices across the active clips in
// time order. Clips without words get -1 for both bounds.
func ReindexWords(clips []Clip) {
	idx := make([]int, len(clips))
	for i := range clips {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return clips[idx[a]].Start < clips[idx[b]].Start })

	next := 0
	for _, i := range idx {
		c := &clips[i]
		if !c.IsActive() || len(c.Words) == 0 {
			c.StartWordIndex = -1
			c.EndWordIndex = -1
			continue
		}
		c.StartWordIndex = next
		c.EndWordIndex = next + len(c.Words) - 1
		next += len(c.Words)
	}
}
