package grouper

import (
	"strings"
	"unicode/utf8"

	"github.com/kbukum/transcriptkit/transcript"
	"github.com/kbukum/transcriptkit/validation"
)

// Params holds the grouping heuristics.
type Params struct {
	// PauseThreshold is the inter-segment silence, in seconds, that starts
	// a new group.
	PauseThreshold float64 `json:"pause_threshold" mapstructure:"pause_threshold" validate:"gt=0"`
	// MaxClipDuration caps a group's duration in seconds (advisory).
	MaxClipDuration float64 `json:"max_clip_duration" mapstructure:"max_clip_duration" validate:"gt=0"`
	// MinWordsPerClip is the word count below which sentence boundaries are
	// ignored.
	MinWordsPerClip int `json:"min_words_per_clip" mapstructure:"min_words_per_clip" validate:"gte=1"`
	// MaxWordsPerClip caps a group's word count (advisory).
	MaxWordsPerClip int `json:"max_words_per_clip" mapstructure:"max_words_per_clip" validate:"gte=1"`
	// SentenceTerminators are the characters that end a sentence.
	SentenceTerminators string `json:"sentence_terminators" mapstructure:"sentence_terminators" validate:"required"`
}

// ApplyDefaults applies default values to unset parameters.
func (p *Params) ApplyDefaults() {
	if p.PauseThreshold == 0 {
		p.PauseThreshold = 1.2
	}
	if p.MaxClipDuration == 0 {
		p.MaxClipDuration = 30
	}
	if p.MinWordsPerClip == 0 {
		p.MinWordsPerClip = 20
	}
	if p.MaxWordsPerClip == 0 {
		p.MaxWordsPerClip = 120
	}
	if p.SentenceTerminators == "" {
		p.SentenceTerminators = ".!?"
	}
}

// Validate validates the parameters.
func (p Params) Validate() error {
	return validation.Validate(p)
}

// Group is an ordered run of segments that becomes one clip.
type Group struct {
	Segments []transcript.Segment
}

// Speaker returns the group's speaker (the first segment's speaker).
func (g Group) Speaker() string {
	if len(g.Segments) == 0 {
		return ""
	}
	return g.Segments[0].Speaker
}

// Start returns the group start time.
func (g Group) Start() float64 {
	if len(g.Segments) == 0 {
		return 0
	}
	return g.Segments[0].Start
}

// End returns the group end time.
func (g Group) End() float64 {
	if len(g.Segments) == 0 {
		return 0
	}
	return g.Segments[len(g.Segments)-1].End
}

// WordCount returns the total word count across the group's segments.
func (g Group) WordCount() int {
	n := 0
	for _, s := range g.Segments {
		n += s.WordCount()
	}
	return n
}

// Words returns the group's words concatenated in segment order.
func (g Group) Words() []transcript.Word {
	words := make([]transcript.Word, 0, g.WordCount())
	for _, s := range g.Segments {
		words = append(words, s.Words...)
	}
	return words
}

// GroupSegments scans segments in order and accumulates them into groups.
func GroupSegments(segments []transcript.Segment, params Params) []Group {
	params.ApplyDefaults()

	var groups []Group
	var current Group

	for _, seg := range segments {
		if len(current.Segments) > 0 && startsNewGroup(current, seg, params) {
			groups = append(groups, current)
			current = Group{}
		}
		current.Segments = append(current.Segments, seg)
	}
	if len(current.Segments) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// startsNewGroup decides whether seg begins a new group instead of joining
// the current one.
func startsNewGroup(current Group, seg transcript.Segment, params Params) bool {
	if seg.Speaker != current.Speaker() {
		return true
	}

	last := current.Segments[len(current.Segments)-1]
	if seg.Start-last.End > params.PauseThreshold {
		return true
	}

	if current.WordCount()+seg.WordCount() > params.MaxWordsPerClip {
		return true
	}
	if seg.End-current.Start() > params.MaxClipDuration {
		return true
	}

	if current.WordCount() >= params.MinWordsPerClip && endsSentence(last.Text, params.SentenceTerminators) {
		return true
	}

	return false
}

// endsSentence reports whether text ends with a sentence terminator.
func endsSentence(text string, terminators string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(trimmed)
	return strings.ContainsRune(terminators, last)
}
