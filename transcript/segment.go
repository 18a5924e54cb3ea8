package transcript

import (
	"sort"
	"strings"

	"github.com/kbukum/transcriptkit/errors"
	"github.com/kbukum/transcriptkit/logger"
)

// DefaultSpeaker is the sentinel speaker id assigned when the recognizer
// provides no speaker attribution.
const DefaultSpeaker = "SPEAKER_00"

// defaultConfidence is assumed when the recognizer reports no word score.
const defaultConfidence = 0.9

// SegmentWord is the wire form of a word inside a recognizer segment.
type SegmentWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Score float64 `json:"score,omitempty"`
}

// Segment is raw recognizer output, read-only input to grouping.
type Segment struct {
	// Start is the segment start time in seconds.
	Start float64 `json:"start"`
	// End is the segment end time in seconds.
	End float64 `json:"end"`
	// Text is the transcribed text for this segment.
	Text string `json:"text"`
	// Speaker is the attributed speaker id.
	Speaker string `json:"speaker,omitempty"`
	// Words is the word-level timing, already normalized.
	Words []Word `json:"words,omitempty"`
}

// WordCount returns the number of words in the segment.
func (s Segment) WordCount() int { return len(s.Words) }

// RecognitionResult is the engine's ingestion input from the recognizer
// collaborator.
type RecognitionResult struct {
	// Segments is the ordered recognizer segment list.
	Segments []Segment `json:"segments"`
	// WordSegments is an optional flat word-timing array; used to fill
	// segments that arrived without word-level timing.
	WordSegments []SegmentWord `json:"word_segments,omitempty"`
	// Speakers maps speaker ids to display names.
	Speakers map[string]string `json:"speakers,omitempty"`
}

// Normalize validates and repairs recognizer output for ingestion.
//
// Recoverable anomalies (non-monotonic word timings, words outside their
// segment range, missing speakers, missing word timing) are repaired and
// logged as warnings. Malformed segments (end before start, empty text with
// no words) reject the whole ingest with a validation error so the caller's
// prior state stays untouched.
func Normalize(res RecognitionResult, log *logger.Logger) ([]Segment, error) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithComponent("ingest")

	out := make([]Segment, 0, len(res.Segments))
	for i, seg := range res.Segments {
		if seg.End < seg.Start {
			return nil, errors.MalformedSegment(i, "end before start")
		}
		text := strings.TrimSpace(seg.Text)
		if text == "" && len(seg.Words) == 0 {
			return nil, errors.MalformedSegment(i, "no text and no words")
		}

		speaker := seg.Speaker
		if speaker == "" {
			speaker = DefaultSpeaker
			log.Debug("segment missing speaker, using sentinel", logger.Fields(logger.FieldSegment, i))
		}

		if len(seg.Words) == 0 && len(res.WordSegments) > 0 {
			seg.Words = wordsInRange(res.WordSegments, seg.Start, seg.End, speaker)
		}
		words := normalizeWords(seg, speaker, i, log)
		out = append(out, Segment{
			Start:   seg.Start,
			End:     seg.End,
			Text:    text,
			Speaker: speaker,
			Words:   words,
		})
	}
	return out, nil
}

// normalizeWords sorts, clamps, and attributes a segment's words. Segments
// without word timing fall back to a single whole-segment word.
func normalizeWords(seg Segment, speaker string, index int, log *logger.Logger) []Word {
	if len(seg.Words) == 0 {
		return []Word{{
			Text:       strings.TrimSpace(seg.Text),
			Start:      seg.Start,
			End:        seg.End,
			Confidence: defaultConfidence,
			Speaker:    speaker,
		}}
	}

	words := make([]Word, len(seg.Words))
	copy(words, seg.Words)

	if !sort.SliceIsSorted(words, func(a, b int) bool { return words[a].Start < words[b].Start }) {
		log.Warn("non-monotonic word timings, sorting", logger.Fields(logger.FieldSegment, index))
		sort.SliceStable(words, func(a, b int) bool { return words[a].Start < words[b].Start })
	}

	clamped := false
	for j := range words {
		w := &words[j]
		w.Text = strings.TrimSpace(w.Text)
		if w.Speaker == "" {
			w.Speaker = speaker
		}
		if w.Confidence == 0 {
			w.Confidence = defaultConfidence
		}
		if w.Start < seg.Start {
			w.Start = seg.Start
			clamped = true
		}
		if w.End > seg.End {
			w.End = seg.End
			clamped = true
		}
		if w.End < w.Start {
			w.End = w.Start
			clamped = true
		}
	}
	if clamped {
		log.Warn("word timings clamped to segment range", logger.Fields(logger.FieldSegment, index))
	}
	return words
}

// wordsInRange selects flat word-timing entries whose midpoint falls inside
// [start, end] and converts them to engine words.
func wordsInRange(flat []SegmentWord, start, end float64, speaker string) []Word {
	var words []Word
	for _, sw := range flat {
		mid := (sw.Start + sw.End) / 2
		if mid >= start && mid <= end {
			words = append(words, sw.FromWire(speaker))
		}
	}
	return words
}

// FromWire converts a wire-form segment word into the engine's word model.
func (sw SegmentWord) FromWire(speaker string) Word {
	score := sw.Score
	if score == 0 {
		score = defaultConfidence
	}
	return Word{
		Text:       strings.TrimSpace(sw.Word),
		Start:      sw.Start,
		End:        sw.End,
		Confidence: score,
		Speaker:    speaker,
	}
}
