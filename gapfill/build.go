package gapfill

import (
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/transcriptkit/grouper"
	"github.com/kbukum/transcriptkit/transcript"
)

// BuildClips turns segment groups into speech clips with normalized tokens
// and finalized time bounds.
//
// Clip bounds come from the group's segment bounds, not its word times, so
// intra-segment silence before the first word or after the last word stays
// inside the clip and follows the usual absorb-or-gap rule via Fit. The
// silence between groups is part of normalization too: a sub-threshold
// boundary gap is absorbed by pulling the clip's start back to the previous
// clip's end. At-or-above-threshold boundary gaps are left open for
// Continuous to fill with audio-only clips.
func BuildClips(groups []grouper.Group, threshold float64, now time.Time) []transcript.Clip {
	if threshold <= 0 {
		threshold = DefaultGapThreshold
	}

	clips := make([]transcript.Clip, 0, len(groups))
	prevEnd := 0.0
	wordIndex := 0

	for i, g := range groups {
		words := g.Words()
		if len(words) == 0 {
			continue
		}

		start, end := g.Start(), g.End()
		boundary := start - prevEnd
		if boundary > timeEps && boundary < threshold {
			start = prevEnd
		}

		adjusted, tokens := Fit(words, start, end, threshold)

		clip := transcript.Clip{
			ID:             uuid.New().String(),
			Start:          start,
			End:            end,
			StartWordIndex: wordIndex,
			EndWordIndex:   wordIndex + len(adjusted) - 1,
			Words:          adjusted,
			Tokens:         tokens,
			Text:           transcript.JoinWords(adjusted),
			Speaker:        g.Speaker(),
			Type:           transcript.ClipTranscribed,
			Order:          float64(i),
			Status:         transcript.ClipActive,
			CreatedAt:      now,
			ModifiedAt:     now,
		}
		clips = append(clips, clip)

		prevEnd = clip.End
		wordIndex += len(adjusted)
	}
	return clips
}

// Continuous inserts synthetic audio-only clips wherever consecutive speech
// clips leave the timeline uncovered: before the first clip, between
// non-adjacent clips, and after the last clip up to the audio duration.
//
// The returned list tiles [0, audioDuration] contiguously and is renumbered
// with sequential display orders. Running Continuous on an already
// contiguous list inserts nothing.
func Continuous(clips []transcript.Clip, audioDuration float64, now time.Time) []transcript.Clip {
	sorted := make([]transcript.Clip, len(clips))
	copy(sorted, clips)
	transcript.SortByStart(sorted)

	out := make([]transcript.Clip, 0, len(sorted)+2)
	cursor := 0.0
	for _, c := range sorted {
		if c.Start-cursor > timeEps {
			out = append(out, fillerClip(cursor, c.Start, now))
		}
		out = append(out, c)
		if c.End > cursor {
			cursor = c.End
		}
	}
	if audioDuration-cursor > timeEps {
		out = append(out, fillerClip(cursor, audioDuration, now))
	}

	for i := range out {
		out[i].Order = float64(i)
	}
	return out
}

// fillerClip creates an audio-only clip covering [start, end].
func fillerClip(start, end float64, now time.Time) transcript.Clip {
	return transcript.Clip{
		ID:             uuid.New().String(),
		Start:          start,
		End:            end,
		StartWordIndex: -1,
		EndWordIndex:   -1,
		Tokens:         []transcript.Token{transcript.NewGapToken(start, end)},
		Type:           transcript.ClipAudioOnly,
		Status:         transcript.ClipActive,
		CreatedAt:      now,
		ModifiedAt:     now,
	}
}
