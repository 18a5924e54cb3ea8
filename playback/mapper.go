package playback

import (
	"sort"

	"github.com/kbukum/transcriptkit/transcript"
)

// Mapper resolves audio times against an immutable clip snapshot.
// Construct a new Mapper from the current committed clip list after every
// edit; an in-flight lookup then sees either the whole pre-edit or the
// whole post-edit list, never a mix.
type Mapper struct {
	clips []transcript.Clip
}

// NewMapper builds a mapper over the active clips, sorted by start time.
func NewMapper(clips []transcript.Clip) *Mapper {
	active := transcript.ActiveClips(clips)
	transcript.SortByStart(active)
	return &Mapper{clips: active}
}

// ActiveClip returns the clip whose [Start, End) contains t, or nil.
func (m *Mapper) ActiveClip(t float64) *transcript.Clip {
	i := sort.Search(len(m.clips), func(i int) bool { return m.clips[i].End > t })
	if i < len(m.clips) && m.clips[i].Contains(t) {
		return &m.clips[i]
	}
	return nil
}

// ActiveWord returns the word under t within its containing clip, together
// with the word's local index. Returns ok=false when t falls outside any
// clip or inside a gap token.
func (m *Mapper) ActiveWord(t float64) (transcript.Word, int, bool) {
	clip := m.ActiveClip(t)
	if clip == nil || len(clip.Words) == 0 {
		return transcript.Word{}, 0, false
	}
	words := clip.Words
	i := sort.Search(len(words), func(i int) bool { return words[i].End > t })
	if i < len(words) && t >= words[i].Start {
		return words[i], i, true
	}
	return transcript.Word{}, 0, false
}

// ActiveWordID returns the stable id of the word under t, or "".
func (m *Mapper) ActiveWordID(t float64) string {
	clip := m.ActiveClip(t)
	if clip == nil {
		return ""
	}
	if _, i, ok := m.ActiveWord(t); ok {
		return transcript.WordID(clip.ID, i)
	}
	return ""
}

// Clips returns the mapper's snapshot.
func (m *Mapper) Clips() []transcript.Clip { return m.clips }

// AdjustedTime maps a raw audio time onto the compressed listen-mode
// timeline: raw time minus the total duration of deleted words that end at
// or before it. deleted must be sorted by end time (DeletedWordSet.Words
// returns it that way).
func AdjustedTime(deleted []transcript.Word, raw float64) float64 {
	removed := 0.0
	for _, w := range deleted {
		if w.End > raw {
			break
		}
		removed += w.Duration()
	}
	return raw - removed
}

// OriginalTime maps a compressed listen-mode time back onto the raw audio
// timeline. Exact inverse of AdjustedTime for any raw time not inside a
// deleted word. deleted must be sorted by end time.
func OriginalTime(deleted []transcript.Word, adjusted float64) float64 {
	removed := 0.0
	for _, w := range deleted {
		// The deletion of w lands at adjusted time w.End - removed - dur(w);
		// everything at or past that point sits after w on the raw timeline.
		if adjusted < w.End-removed-w.Duration() {
			break
		}
		removed += w.Duration()
	}
	return adjusted + removed
}
