package gapfill

import (
	"github.com/kbukum/transcriptkit/transcript"
)

// DefaultGapThreshold is the silence duration, in seconds, at or above
// which a gap becomes an explicit token instead of being absorbed.
const DefaultGapThreshold = 1.0

// timeEps absorbs float noise when comparing boundary times.
const timeEps = 1e-6

// Normalize closes sub-threshold silences between adjacent words and emits
// explicit gap tokens for the rest. It returns the adjusted words (earlier
// word ends extended over absorbed silences) alongside the token sequence.
//
// Normalize must run before clip boundaries are finalized: absorption
// changes the word times the clip start/end derive from. It is idempotent.
func Normalize(words []transcript.Word, threshold float64) ([]transcript.Word, []transcript.Token) {
	if threshold <= 0 {
		threshold = DefaultGapThreshold
	}
	if len(words) == 0 {
		return nil, nil
	}

	adjusted := make([]transcript.Word, len(words))
	copy(adjusted, words)

	tokens := make([]transcript.Token, 0, len(words))
	for i := 0; i < len(adjusted); i++ {
		if i > 0 {
			gap := adjusted[i].Start - adjusted[i-1].End
			switch {
			case gap >= threshold:
				tokens = append(tokens, transcript.NewGapToken(adjusted[i-1].End, adjusted[i].Start))
			case gap > timeEps:
				adjusted[i-1].End = adjusted[i].Start
				tokens[len(tokens)-1] = transcript.NewWordToken(adjusted[i-1])
			}
		}
		tokens = append(tokens, transcript.NewWordToken(adjusted[i]))
	}
	return adjusted, tokens
}

// Fit normalizes words and fits the token sequence to final clip bounds
// [start, end], so the clip's tokens tile its whole time range. Leading and
// trailing silences follow the same rule as interior ones: sub-threshold
// silences are absorbed into the boundary word, the rest become explicit
// gap tokens. A wordless range yields a single gap token.
func Fit(words []transcript.Word, start, end, threshold float64) ([]transcript.Word, []transcript.Token) {
	if threshold <= 0 {
		threshold = DefaultGapThreshold
	}
	if len(words) == 0 {
		if end-start > timeEps {
			return nil, []transcript.Token{transcript.NewGapToken(start, end)}
		}
		return nil, nil
	}

	adjusted, tokens := Normalize(words, threshold)

	if lead := adjusted[0].Start - start; lead > timeEps {
		if lead < threshold {
			adjusted[0].Start = start
			tokens[0] = transcript.NewWordToken(adjusted[0])
		} else {
			tokens = append([]transcript.Token{transcript.NewGapToken(start, adjusted[0].Start)}, tokens...)
		}
	}

	last := len(adjusted) - 1
	if trail := end - adjusted[last].End; trail > timeEps {
		if trail < threshold {
			adjusted[last].End = end
			tokens[len(tokens)-1] = transcript.NewWordToken(adjusted[last])
		} else {
			tokens = append(tokens, transcript.NewGapToken(adjusted[last].End, end))
		}
	}

	return adjusted, tokens
}
