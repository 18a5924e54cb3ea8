package grouper

import (
	"fmt"
	"testing"

	"github.com/kbukum/transcriptkit/transcript"
)

func seg(start, end float64, text, speaker string, wordCount int) transcript.Segment {
	words := make([]transcript.Word, wordCount)
	step := (end - start) / float64(wordCount)
	for i := range words {
		words[i] = transcript.Word{
			Text:    fmt.Sprintf("w%d", i),
			Start:   start + float64(i)*step,
			End:     start + float64(i+1)*step,
			Speaker: speaker,
		}
	}
	return transcript.Segment{Start: start, End: end, Text: text, Speaker: speaker, Words: words}
}

func TestGroupSegments_PauseSplits(t *testing.T) {
	// Pause of 1.4s exceeds the 1.2s threshold.
	segments := []transcript.Segment{
		seg(0, 1.1, "Hi", "SPEAKER_00", 1),
		seg(2.5, 3, "there", "SPEAKER_00", 1),
	}
	groups := GroupSegments(segments, Params{})
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].End() != 1.1 || groups[1].Start() != 2.5 {
		t.Errorf("unexpected group bounds: %v %v", groups[0].End(), groups[1].Start())
	}
}

func TestGroupSegments_ShortPauseJoins(t *testing.T) {
	segments := []transcript.Segment{
		seg(0, 1.0, "Hi", "SPEAKER_00", 1),
		seg(1.5, 2.0, "there", "SPEAKER_00", 1),
	}
	groups := GroupSegments(segments, Params{})
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].WordCount() != 2 {
		t.Errorf("expected 2 words, got %d", groups[0].WordCount())
	}
}

func TestGroupSegments_SpeakerChangeSplits(t *testing.T) {
	segments := []transcript.Segment{
		seg(0, 1, "Hello.", "SPEAKER_00", 2),
		seg(1, 2, "Hi.", "SPEAKER_01", 2),
	}
	groups := GroupSegments(segments, Params{})
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[1].Speaker() != "SPEAKER_01" {
		t.Errorf("expected second group speaker SPEAKER_01, got %q", groups[1].Speaker())
	}
}

func TestGroupSegments_WordCapSplits(t *testing.T) {
	segments := []transcript.Segment{
		seg(0, 5, "a", "S", 80),
		seg(5, 10, "b", "S", 80),
	}
	groups := GroupSegments(segments, Params{})
	if len(groups) != 2 {
		t.Fatalf("expected split at word cap, got %d groups", len(groups))
	}
}

func TestGroupSegments_DurationCapSplits(t *testing.T) {
	segments := []transcript.Segment{
		seg(0, 20, "a", "S", 5),
		seg(20, 40, "b", "S", 5),
	}
	groups := GroupSegments(segments, Params{})
	if len(groups) != 2 {
		t.Fatalf("expected split at duration cap, got %d groups", len(groups))
	}
}

func TestGroupSegments_SentenceBoundaryAfterMinWords(t *testing.T) {
	segments := []transcript.Segment{
		seg(0, 5, "That is a full sentence.", "S", 25),
		seg(5, 6, "Next thought", "S", 3),
	}
	groups := GroupSegments(segments, Params{})
	if len(groups) != 2 {
		t.Fatalf("expected sentence boundary split, got %d groups", len(groups))
	}
}

func TestGroupSegments_SentenceBoundaryIgnoredBelowMinWords(t *testing.T) {
	segments := []transcript.Segment{
		seg(0, 1, "Short.", "S", 3),
		seg(1, 2, "Next", "S", 3),
	}
	groups := GroupSegments(segments, Params{})
	if len(groups) != 1 {
		t.Fatalf("expected one group below min words, got %d", len(groups))
	}
}

func TestGroupSegments_OversizedSingleSegmentKeptWhole(t *testing.T) {
	// A single segment beyond both caps is not force-split.
	segments := []transcript.Segment{
		seg(0, 60, "long", "S", 200),
	}
	groups := GroupSegments(segments, Params{})
	if len(groups) != 1 {
		t.Fatalf("expected oversized segment kept whole, got %d groups", len(groups))
	}
	if groups[0].WordCount() != 200 {
		t.Errorf("expected 200 words, got %d", groups[0].WordCount())
	}
}

func TestGroupSegments_Empty(t *testing.T) {
	if groups := GroupSegments(nil, Params{}); len(groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}

func TestParams_ApplyDefaults(t *testing.T) {
	p := Params{}
	p.ApplyDefaults()
	if p.PauseThreshold != 1.2 || p.MaxClipDuration != 30 || p.MinWordsPerClip != 20 || p.MaxWordsPerClip != 120 {
		t.Errorf("unexpected defaults: %+v", p)
	}
	if p.SentenceTerminators != ".!?" {
		t.Errorf("unexpected terminators %q", p.SentenceTerminators)
	}
}

func TestParams_Validate(t *testing.T) {
	p := Params{}
	p.ApplyDefaults()
	if err := p.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}

	bad := Params{PauseThreshold: -1, MaxClipDuration: 30, MinWordsPerClip: 20, MaxWordsPerClip: 120, SentenceTerminators: "."}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for negative pause threshold")
	}
}
