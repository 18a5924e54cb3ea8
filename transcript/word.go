package transcript

import "fmt"

// Word represents a single timestamped word from recognition.
type Word struct {
	// Text is the word text, whitespace-trimmed.
	Text string `json:"text"`
	// Start is the word start time in seconds.
	Start float64 `json:"start"`
	// End is the word end time in seconds.
	End float64 `json:"end"`
	// Confidence is the recognizer confidence score in [0, 1].
	Confidence float64 `json:"confidence"`
	// Speaker is the speaker id for this word, if attributed.
	Speaker string `json:"speaker,omitempty"`
}

// Duration returns the word duration in seconds.
func (w Word) Duration() float64 { return w.End - w.Start }

// TokenKind discriminates the token union.
type TokenKind string

const (
	// TokenWord is a token wrapping a spoken word.
	TokenWord TokenKind = "word"
	// TokenGap is a token marking an explicit silence.
	TokenGap TokenKind = "gap"
)

// Token is the renderable unit inside a clip: a word or an explicit gap.
type Token struct {
	// Kind discriminates between word and gap tokens.
	Kind TokenKind `json:"kind"`
	// Word is set when Kind is TokenWord.
	Word *Word `json:"word,omitempty"`
	// Start is the token start time in seconds.
	Start float64 `json:"start"`
	// End is the token end time in seconds.
	End float64 `json:"end"`
	// Label is a human-readable duration label for gap tokens.
	Label string `json:"label,omitempty"`
}

// Duration returns the token duration in seconds.
func (t Token) Duration() float64 { return t.End - t.Start }

// NewWordToken wraps a word in a token.
func NewWordToken(w Word) Token {
	return Token{Kind: TokenWord, Word: &w, Start: w.Start, End: w.End}
}

// NewGapToken creates an explicit silence token with a duration label.
func NewGapToken(start, end float64) Token {
	return Token{Kind: TokenGap, Start: start, End: end, Label: GapLabel(end - start)}
}

// GapLabel formats a silence duration as a human-readable label.
func GapLabel(seconds float64) string {
	if seconds >= 60 {
		m := int(seconds) / 60
		s := seconds - float64(m*60)
		return fmt.Sprintf("%dm %.0fs pause", m, s)
	}
	return fmt.Sprintf("%.1fs pause", seconds)
}

// WordID derives a stable word identifier from the owning clip id and the
// word's local index within that clip.
func WordID(clipID string, index int) string {
	return fmt.Sprintf("%s:%d", clipID, index)
}
