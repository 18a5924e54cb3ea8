package editor

import (
	"fmt"
	"sort"

	"github.com/kbukum/transcriptkit/errors"
	"github.com/kbukum/transcriptkit/history"
	"github.com/kbukum/transcriptkit/logger"
	"github.com/kbukum/transcriptkit/transcript"
)

// Undo reverses the most recent recorded edit. It reports whether an edit
// was undone; false means the history is empty.
func (s *Session) Undo() (bool, error) {
	a, ok := s.hist.Undo()
	if !ok {
		return false, nil
	}
	if err := s.applyAction(a, true); err != nil {
		s.log.Error("undo failed", logger.ErrorFields(string(a.Type), err))
		return false, err
	}
	s.log.Debug("edit undone", logger.Fields(logger.FieldOperation, string(a.Type)))
	return true, nil
}

// Redo re-applies the most recently undone edit. It reports whether an edit
// was redone; false means nothing is ahead of the cursor.
func (s *Session) Redo() (bool, error) {
	a, ok := s.hist.Redo()
	if !ok {
		return false, nil
	}
	if err := s.applyAction(a, false); err != nil {
		s.log.Error("redo failed", logger.ErrorFields(string(a.Type), err))
		return false, err
	}
	s.log.Debug("edit redone", logger.Fields(logger.FieldOperation, string(a.Type)))
	return true, nil
}

// applyAction replays a recorded action. With inverse set it applies the
// action's reverse; otherwise the forward direction. Every branch restores
// the exact clips or words captured at record time.
func (s *Session) applyAction(a history.Action, inverse bool) error {
	switch a.Type {
	case history.ActionParagraphBreak:
		data, ok := a.Data.(splitData)
		if !ok {
			return errors.Internal(fmt.Errorf("malformed split record"))
		}
		if inverse {
			s.commit(replaceClips(s.clipList(), []string{data.First.ID, data.Second.ID}, data.Original))
		} else {
			clips := removeClips(s.clipList(), []string{data.Original.ID})
			s.commit(append(clips, data.First, data.Second))
		}
		return nil

	case history.ActionClipCreate:
		data, ok := a.Data.(mergeData)
		if !ok {
			return errors.Internal(fmt.Errorf("malformed merge record"))
		}
		if inverse {
			clips := removeClips(s.clipList(), []string{data.Merged.ID})
			s.commit(append(clips, data.Originals...))
		} else {
			s.commit(replaceClips(s.clipList(), clipIDs(data.Originals), data.Merged))
		}
		return nil

	case history.ActionWordEdit:
		data, ok := a.Data.(wordEditData)
		if !ok {
			return errors.Internal(fmt.Errorf("malformed word edit record"))
		}
		word := data.After
		if inverse {
			word = data.Before
		}
		return s.rewriteWord(data.ClipID, data.Index, word)

	case history.ActionWordInsert:
		data, ok := a.Data.(wordInsertData)
		if !ok {
			return errors.Internal(fmt.Errorf("malformed word insert record"))
		}
		clips := s.clipList()
		i, clip, err := findActive(clips, data.ClipID)
		if err != nil {
			return err
		}
		next := cloneClips(clips)
		if inverse {
			next[i] = s.removeWordAt(clip, data.Index)
		} else {
			next[i] = s.insertWordAt(clip, data.Index, data.Word)
		}
		s.commit(next)
		return nil

	case history.ActionWordDelete:
		data, ok := a.Data.(wordDeleteData)
		if !ok {
			return errors.Internal(fmt.Errorf("malformed word delete record"))
		}
		id := transcript.WordID(data.ClipID, data.Index)
		// Undoing a delete restores; undoing a restore deletes again.
		shouldAdd := inverse == data.Restored
		if shouldAdd {
			s.deleted.Add(id, data.Word)
		} else {
			s.deleted.Remove(id)
		}
		return nil

	case history.ActionSpeakerChange:
		data, ok := a.Data.(speakerData)
		if !ok {
			return errors.Internal(fmt.Errorf("malformed speaker record"))
		}
		speaker := data.After
		if inverse {
			speaker = data.Before
		}
		clips := s.clipList()
		i, clip, err := findActive(clips, data.ClipID)
		if err != nil {
			return err
		}
		next := cloneClips(clips)
		if data.WordIndex != nil {
			word := clip.Words[*data.WordIndex]
			word.Speaker = speaker
			next[i] = s.replaceWord(clip, *data.WordIndex, word)
		} else {
			next[i].Speaker = speaker
			next[i].ModifiedAt = s.now()
		}
		s.commit(next)
		return nil
	}
	return errors.Internal(fmt.Errorf("unknown action type %q", a.Type))
}

func (s *Session) rewriteWord(clipID string, index int, word transcript.Word) error {
	clips := s.clipList()
	i, clip, err := findActive(clips, clipID)
	if err != nil {
		return err
	}
	next := cloneClips(clips)
	next[i] = s.replaceWord(clip, index, word)
	s.commit(next)
	return nil
}

// replaceClips removes the named clips and inserts the replacement in their
// place, preserving the rest of the list.
func replaceClips(clips []transcript.Clip, removeIDs []string, add transcript.Clip) []transcript.Clip {
	out := removeClips(clips, removeIDs)
	return append(out, add)
}

func removeClips(clips []transcript.Clip, ids []string) []transcript.Clip {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	out := make([]transcript.Clip, 0, len(clips))
	for _, c := range clips {
		if !drop[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

func clipIDs(clips []transcript.Clip) []string {
	out := make([]string, len(clips))
	for i, c := range clips {
		out[i] = c.ID
	}
	sort.Strings(out)
	return out
}
