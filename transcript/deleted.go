package transcript

import "sort"

// DeletedWordSet tracks soft-deleted words as a side table, keyed by word id.
// It stores the full word alongside the id so playback-time compression can
// resolve deleted durations without walking the clip list.
//
// Deletion here is independent of clip Status: a word can be deleted while
// its clip stays active, and restoring it never touches clip identity.
type DeletedWordSet struct {
	words map[string]Word
}

// NewDeletedWordSet creates an empty set.
func NewDeletedWordSet() *DeletedWordSet {
	return &DeletedWordSet{words: make(map[string]Word)}
}

// Add marks a word as deleted.
func (s *DeletedWordSet) Add(id string, w Word) {
	s.words[id] = w
}

// Remove restores a word. Returns the stored word and whether it was present.
func (s *DeletedWordSet) Remove(id string) (Word, bool) {
	w, ok := s.words[id]
	if ok {
		delete(s.words, id)
	}
	return w, ok
}

// Has reports whether the word id is marked deleted.
func (s *DeletedWordSet) Has(id string) bool {
	_, ok := s.words[id]
	return ok
}

// Len returns the number of deleted words.
func (s *DeletedWordSet) Len() int { return len(s.words) }

// Words returns the deleted words sorted by end time.
func (s *DeletedWordSet) Words() []Word {
	out := make([]Word, 0, len(s.words))
	for _, w := range s.words {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].End < out[j].End })
	return out
}

// Entries returns the set as plain records for persistence, sorted by id.
func (s *DeletedWordSet) Entries() []DeletedWord {
	out := make([]DeletedWord, 0, len(s.words))
	for id, w := range s.words {
		out = append(out, DeletedWord{ID: id, Word: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Restore rebuilds a set from persisted entries.
func Restore(entries []DeletedWord) *DeletedWordSet {
	s := NewDeletedWordSet()
	for _, e := range entries {
		s.words[e.ID] = e.Word
	}
	return s
}

// DeletedWord is the persistence record for a soft-deleted word.
type DeletedWord struct {
	ID   string `json:"id"`
	Word Word   `json:"word"`
}
