package editor

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/kbukum/transcriptkit/errors"
	"github.com/kbukum/transcriptkit/gapfill"
	"github.com/kbukum/transcriptkit/history"
	"github.com/kbukum/transcriptkit/logger"
	"github.com/kbukum/transcriptkit/transcript"
	"github.com/kbukum/transcriptkit/validation"
)

// Split partitions a clip's words at the given local index into two clips.
// The first keeps the original id; the second gets a derived id and an
// order of original + 0.5 so neighbors keep their numbering. Returns the
// second clip's id.
func (s *Session) Split(clipID string, wordIndex int) (string, error) {
	if !s.guard.allow("split:" + clipID) {
		s.log.Debug("split suppressed by duplicate guard", logger.Fields(logger.FieldClipID, clipID))
		return "", errors.DuplicateOperation("split")
	}

	clips := s.clipList()
	i, clip, err := findActive(clips, clipID)
	if err != nil {
		return "", err
	}
	if len(clip.Words) <= 1 {
		return "", errors.InvalidSplit(clipID, "clip has one word or fewer")
	}
	v := validation.New()
	v.InteriorIndex("word_index", wordIndex, len(clip.Words))
	if err := v.Validate(); err != nil {
		return "", err
	}

	now := s.now()
	boundary := clip.Words[wordIndex].Start

	first := clip
	first.Words, first.Tokens = gapfill.Fit(cloneWords(clip.Words[:wordIndex]), clip.Start, boundary, s.cfg.GapThreshold)
	first.End = boundary
	first.Text = transcript.JoinWords(first.Words)
	first.ModifiedAt = now

	second := transcript.Clip{
		ID:         uuid.New().String(),
		Start:      boundary,
		End:        clip.End,
		Speaker:    clip.Speaker,
		Type:       clip.Type,
		Order:      clip.Order + 0.5,
		Status:     transcript.ClipActive,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	second.Words, second.Tokens = gapfill.Fit(cloneWords(clip.Words[wordIndex:]), boundary, clip.End, s.cfg.GapThreshold)
	second.Text = transcript.JoinWords(second.Words)

	next := make([]transcript.Clip, 0, len(clips)+1)
	next = append(next, clips...)
	next[i] = first
	next = append(next, second)
	s.commit(next)

	s.record(history.ActionParagraphBreak, splitData{Original: clip, First: first, Second: second})
	s.log.Info("clip split", logger.Fields(logger.FieldClipID, clipID, "word_index", wordIndex))
	return second.ID, nil
}

// Merge concatenates a run of clips into one user-created clip spanning the
// earliest start and latest end. Every active clip inside that span joins
// the merge, so the contiguity of the list survives. Returns the merged
// clip's id.
func (s *Session) Merge(clipIDs ...string) (string, error) {
	if len(clipIDs) < 2 {
		return "", errors.InvalidMerge("at least two clips required")
	}
	if !s.guard.allow("merge:" + strings.Join(sortedIDs(clipIDs), ",")) {
		s.log.Debug("merge suppressed by duplicate guard")
		return "", errors.DuplicateOperation("merge")
	}

	clips := s.clipList()
	spanStart, spanEnd := 0.0, 0.0
	for n, id := range clipIDs {
		_, c, err := findActive(clips, id)
		if err != nil {
			return "", err
		}
		if n == 0 || c.Start < spanStart {
			spanStart = c.Start
		}
		if n == 0 || c.End > spanEnd {
			spanEnd = c.End
		}
	}

	var run []transcript.Clip
	var rest []transcript.Clip
	for _, c := range clips {
		if c.IsActive() && c.Start >= spanStart && c.End <= spanEnd {
			run = append(run, c)
		} else {
			rest = append(rest, c)
		}
	}
	if len(run) < 2 {
		return "", errors.InvalidMerge("clips do not form a mergeable run")
	}
	transcript.SortByStart(run)

	now := s.now()
	merged := transcript.Clip{
		ID:         uuid.New().String(),
		Start:      spanStart,
		End:        spanEnd,
		Speaker:    runSpeaker(run),
		Type:       transcript.ClipUserCreated,
		Order:      minOrder(run),
		Status:     transcript.ClipActive,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	var words []transcript.Word
	for _, c := range run {
		words = append(words, c.Words...)
	}
	merged.Words, merged.Tokens = gapfill.Fit(words, spanStart, spanEnd, s.cfg.GapThreshold)
	merged.Text = transcript.JoinWords(merged.Words)

	next := append(rest, merged)
	s.commit(next)

	s.record(history.ActionClipCreate, mergeData{Originals: run, Merged: merged})
	s.log.Info("clips merged", logger.Fields("count", len(run), logger.FieldClipID, merged.ID))
	return merged.ID, nil
}

// MergeWithAbove merges a clip with its time-wise predecessor.
func (s *Session) MergeWithAbove(clipID string) (string, error) {
	clips := s.clipList()
	_, clip, err := findActive(clips, clipID)
	if err != nil {
		return "", err
	}

	var above *transcript.Clip
	for i := range clips {
		c := &clips[i]
		if !c.IsActive() || c.End > clip.Start {
			continue
		}
		if above == nil || c.End > above.End {
			above = c
		}
	}
	if above == nil {
		return "", errors.InvalidMerge("no clip above")
	}
	return s.Merge(above.ID, clipID)
}

// DeleteWord soft-deletes the word at the clip-local index. Clip boundaries
// and word arrays stay untouched; only the side table changes.
func (s *Session) DeleteWord(clipID string, wordIndex int) error {
	clips := s.clipList()
	_, clip, err := findActive(clips, clipID)
	if err != nil {
		return err
	}
	v := validation.New()
	v.Index("word_index", wordIndex, len(clip.Words))
	if err := v.Validate(); err != nil {
		return err
	}

	id := transcript.WordID(clipID, wordIndex)
	if s.deleted.Has(id) {
		return errors.Validation("word is already deleted")
	}

	word := clip.Words[wordIndex]
	s.deleted.Add(id, word)
	s.record(history.ActionWordDelete, wordDeleteData{ClipID: clipID, Index: wordIndex, Word: word})
	return nil
}

// RestoreWord undoes a soft delete, returning the exact original word to
// rendering and playback.
func (s *Session) RestoreWord(clipID string, wordIndex int) error {
	id := transcript.WordID(clipID, wordIndex)
	word, ok := s.deleted.Remove(id)
	if !ok {
		return errors.WordNotFound(id)
	}
	s.record(history.ActionWordDelete, wordDeleteData{ClipID: clipID, Index: wordIndex, Word: word, Restored: true})
	return nil
}

// EditWord replaces the text of the word at the clip-local index, keeping
// its timing and confidence.
func (s *Session) EditWord(clipID string, wordIndex int, text string) error {
	clips := s.clipList()
	i, clip, err := findActive(clips, clipID)
	if err != nil {
		return err
	}
	v := validation.New()
	v.Index("word_index", wordIndex, len(clip.Words))
	v.Required("text", text)
	if err := v.Validate(); err != nil {
		return err
	}

	before := clip.Words[wordIndex]
	after := before
	after.Text = strings.TrimSpace(text)

	next := cloneClips(clips)
	next[i] = s.replaceWord(clip, wordIndex, after)
	s.commit(next)

	s.record(history.ActionWordEdit, wordEditData{ClipID: clipID, Index: wordIndex, Before: before, After: after})
	return nil
}

// InsertWord synthesizes a new word after the given local index. Its timing
// is interpolated from the neighboring word boundary; no audio re-analysis
// happens.
func (s *Session) InsertWord(clipID string, afterIndex int, text string) error {
	clips := s.clipList()
	i, clip, err := findActive(clips, clipID)
	if err != nil {
		return err
	}
	v := validation.New()
	v.Index("after_index", afterIndex, len(clip.Words))
	v.Required("text", text)
	if err := v.Validate(); err != nil {
		return err
	}

	start := clip.Words[afterIndex].End
	end := start
	if afterIndex+1 < len(clip.Words) {
		end = clip.Words[afterIndex+1].Start
	}
	word := transcript.Word{
		Text:       strings.TrimSpace(text),
		Start:      start,
		End:        end,
		Confidence: 1.0,
		Speaker:    clip.Speaker,
	}

	next := cloneClips(clips)
	next[i] = s.insertWordAt(clip, afterIndex+1, word)
	s.commit(next)

	s.record(history.ActionWordInsert, wordInsertData{ClipID: clipID, Index: afterIndex + 1, Word: word})
	return nil
}

// ReassignSpeaker rewrites the clip-level speaker. The target speaker must
// already exist in the speaker directory.
func (s *Session) ReassignSpeaker(clipID, speakerID string) error {
	if _, ok := s.speakers[speakerID]; !ok {
		return errors.UnknownSpeaker(speakerID)
	}
	clips := s.clipList()
	i, clip, err := findActive(clips, clipID)
	if err != nil {
		return err
	}

	before := clip.Speaker
	next := cloneClips(clips)
	next[i].Speaker = speakerID
	next[i].ModifiedAt = s.now()
	s.commit(next)

	s.record(history.ActionSpeakerChange, speakerData{ClipID: clipID, Before: before, After: speakerID})
	return nil
}

// ReassignWordSpeaker rewrites a single word's speaker attribution.
func (s *Session) ReassignWordSpeaker(clipID string, wordIndex int, speakerID string) error {
	if _, ok := s.speakers[speakerID]; !ok {
		return errors.UnknownSpeaker(speakerID)
	}
	clips := s.clipList()
	i, clip, err := findActive(clips, clipID)
	if err != nil {
		return err
	}
	v := validation.New()
	v.Index("word_index", wordIndex, len(clip.Words))
	if err := v.Validate(); err != nil {
		return err
	}

	before := clip.Words[wordIndex].Speaker
	after := clip.Words[wordIndex]
	after.Speaker = speakerID

	next := cloneClips(clips)
	next[i] = s.replaceWord(clip, wordIndex, after)
	s.commit(next)

	idx := wordIndex
	s.record(history.ActionSpeakerChange, speakerData{ClipID: clipID, WordIndex: &idx, Before: before, After: speakerID})
	return nil
}

// Reorder reassigns a clip's display order. Time bounds stay where they
// are: display order and audio time are independent fields, and playback
// keeps following time. Reorder is not recorded in the edit history.
func (s *Session) Reorder(clipID string, newOrder float64) error {
	clips := s.clipList()
	i, _, err := findActive(clips, clipID)
	if err != nil {
		return err
	}

	next := cloneClips(clips)
	next[i].Order = newOrder
	next[i].ModifiedAt = s.now()
	s.commit(next)
	return nil
}

// record appends an applied action to the history log.
func (s *Session) record(t history.ActionType, data any) {
	s.hist.Append(history.Action{Type: t, Data: data, Time: s.now()})
}

// replaceWord swaps one word in a clip and re-derives the dependent fields.
func (s *Session) replaceWord(clip transcript.Clip, index int, word transcript.Word) transcript.Clip {
	words := cloneWords(clip.Words)
	words[index] = word
	return s.rebuildClip(clip, words)
}

// insertWordAt inserts a word at the local index and re-derives the clip.
func (s *Session) insertWordAt(clip transcript.Clip, index int, word transcript.Word) transcript.Clip {
	words := make([]transcript.Word, 0, len(clip.Words)+1)
	words = append(words, clip.Words[:index]...)
	words = append(words, word)
	words = append(words, clip.Words[index:]...)
	return s.rebuildClip(clip, words)
}

// removeWordAt removes the word at the local index and re-derives the clip.
func (s *Session) removeWordAt(clip transcript.Clip, index int) transcript.Clip {
	words := make([]transcript.Word, 0, len(clip.Words)-1)
	words = append(words, clip.Words[:index]...)
	words = append(words, clip.Words[index+1:]...)
	return s.rebuildClip(clip, words)
}

// rebuildClip re-derives tokens, text, and modification time after a
// word-level change, keeping the clip's time bounds.
func (s *Session) rebuildClip(clip transcript.Clip, words []transcript.Word) transcript.Clip {
	clip.Words, clip.Tokens = gapfill.Fit(words, clip.Start, clip.End, s.cfg.GapThreshold)
	clip.Text = transcript.JoinWords(clip.Words)
	clip.ModifiedAt = s.now()
	return clip
}

func cloneClips(clips []transcript.Clip) []transcript.Clip {
	out := make([]transcript.Clip, len(clips))
	copy(out, clips)
	return out
}

func cloneWords(words []transcript.Word) []transcript.Word {
	out := make([]transcript.Word, len(words))
	copy(out, words)
	return out
}

func sortedIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	sort.Strings(out)
	return out
}

func runSpeaker(run []transcript.Clip) string {
	for _, c := range run {
		if c.Speaker != "" {
			return c.Speaker
		}
	}
	return ""
}

func minOrder(run []transcript.Clip) float64 {
	min := run[0].Order
	for _, c := range run[1:] {
		if c.Order < min {
			min = c.Order
		}
	}
	return min
}
