package editor

import (
	"testing"
)

func TestSession_UndoRedo_Split(t *testing.T) {
	s := newTestSession(t)
	target := speechClips(s)[1]
	before := len(s.Clips())

	secondID, err := s.Split(target.ID, 1)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	undone, err := s.Undo()
	if err != nil || !undone {
		t.Fatalf("Undo() = (%v, %v), want (true, nil)", undone, err)
	}
	if got := len(s.Clips()); got != before {
		t.Errorf("clips after undo = %d, want %d", got, before)
	}
	if _, _, err := findActive(s.clipList(), secondID); err == nil {
		t.Error("split half survived undo")
	}
	_, orig, err := findActive(s.clipList(), target.ID)
	if err != nil {
		t.Fatalf("original clip missing after undo: %v", err)
	}
	if orig.Text != target.Text || orig.End != target.End {
		t.Errorf("undo restored clip = %q [%v], want %q [%v]", orig.Text, orig.End, target.Text, target.End)
	}
	assertContiguous(t, s)

	redone, err := s.Redo()
	if err != nil || !redone {
		t.Fatalf("Redo() = (%v, %v), want (true, nil)", redone, err)
	}
	if _, _, err := findActive(s.clipList(), secondID); err != nil {
		t.Errorf("split half missing after redo: %v", err)
	}
	assertContiguous(t, s)
}

func TestSession_UndoRedo_Merge(t *testing.T) {
	s := newTestSession(t)
	speech := speechClips(s)
	before := s.Clips()

	mergedID, err := s.Merge(speech[0].ID, speech[1].ID)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	if _, err := s.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if got := len(s.Clips()); got != len(before) {
		t.Errorf("clips after undo = %d, want %d", got, len(before))
	}
	for _, c := range before {
		if _, _, err := findActive(s.clipList(), c.ID); err != nil {
			t.Errorf("clip %s missing after undo: %v", c.ID, err)
		}
	}
	assertContiguous(t, s)

	if _, err := s.Redo(); err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	if _, _, err := findActive(s.clipList(), mergedID); err != nil {
		t.Errorf("merged clip missing after redo: %v", err)
	}
	assertContiguous(t, s)
}

func TestSession_UndoRedo_WordEdit(t *testing.T) {
	s := newTestSession(t)
	clip := speechClips(s)[0]

	if err := s.EditWord(clip.ID, 0, "Hello"); err != nil {
		t.Fatalf("EditWord() error = %v", err)
	}
	if _, err := s.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	_, after, _ := findActive(s.clipList(), clip.ID)
	if after.Words[0].Text != "Hi" {
		t.Errorf("word after undo = %q, want %q", after.Words[0].Text, "Hi")
	}
	if _, err := s.Redo(); err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	_, after, _ = findActive(s.clipList(), clip.ID)
	if after.Words[0].Text != "Hello" {
		t.Errorf("word after redo = %q, want %q", after.Words[0].Text, "Hello")
	}
}

func TestSession_UndoRedo_WordDelete(t *testing.T) {
	s := newTestSession(t)
	clip := speechClips(s)[0]

	if err := s.DeleteWord(clip.ID, 1); err != nil {
		t.Fatalf("DeleteWord() error = %v", err)
	}
	if _, err := s.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if s.IsWordDeleted(clip.ID, 1) {
		t.Error("word still deleted after undoing the delete")
	}
	if _, err := s.Redo(); err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	if !s.IsWordDeleted(clip.ID, 1) {
		t.Error("word not deleted after redoing the delete")
	}

	// Restoring is its own action; undoing it deletes again.
	if err := s.RestoreWord(clip.ID, 1); err != nil {
		t.Fatalf("RestoreWord() error = %v", err)
	}
	if _, err := s.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if !s.IsWordDeleted(clip.ID, 1) {
		t.Error("undoing a restore did not re-delete the word")
	}
}

func TestSession_UndoRedo_WordInsert(t *testing.T) {
	s := newTestSession(t)
	clip := speechClips(s)[0]

	if err := s.InsertWord(clip.ID, 0, "well"); err != nil {
		t.Fatalf("InsertWord() error = %v", err)
	}
	if _, err := s.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	_, after, _ := findActive(s.clipList(), clip.ID)
	if len(after.Words) != 2 {
		t.Errorf("words after undo = %d, want 2", len(after.Words))
	}
	if _, err := s.Redo(); err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	_, after, _ = findActive(s.clipList(), clip.ID)
	if len(after.Words) != 3 || after.Words[1].Text != "well" {
		t.Errorf("words after redo = %v", after.Words)
	}
}

func TestSession_UndoRedo_SpeakerChange(t *testing.T) {
	s := newTestSession(t)
	clip := speechClips(s)[0]
	if err := s.AddSpeaker("S2", "Alice"); err != nil {
		t.Fatalf("AddSpeaker() error = %v", err)
	}

	if err := s.ReassignWordSpeaker(clip.ID, 0, "S2"); err != nil {
		t.Fatalf("ReassignWordSpeaker() error = %v", err)
	}
	if _, err := s.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	_, after, _ := findActive(s.clipList(), clip.ID)
	if after.Words[0].Speaker != "S1" {
		t.Errorf("word speaker after undo = %q, want S1", after.Words[0].Speaker)
	}
	if _, err := s.Redo(); err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	_, after, _ = findActive(s.clipList(), clip.ID)
	if after.Words[0].Speaker != "S2" {
		t.Errorf("word speaker after redo = %q, want S2", after.Words[0].Speaker)
	}
}

func TestSession_Undo_EmptyHistory(t *testing.T) {
	s := newTestSession(t)
	if undone, err := s.Undo(); undone || err != nil {
		t.Errorf("Undo() on empty history = (%v, %v), want (false, nil)", undone, err)
	}
	if redone, err := s.Redo(); redone || err != nil {
		t.Errorf("Redo() on empty history = (%v, %v), want (false, nil)", redone, err)
	}
}

func TestSession_NewEditDiscardsRedoBranch(t *testing.T) {
	s := newTestSession(t)
	clip := speechClips(s)[0]

	if err := s.EditWord(clip.ID, 0, "Hello"); err != nil {
		t.Fatalf("EditWord() error = %v", err)
	}
	if _, err := s.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if !s.CanRedo() {
		t.Fatal("CanRedo() = false after undo")
	}
	if err := s.EditWord(clip.ID, 0, "Hey"); err != nil {
		t.Fatalf("EditWord() error = %v", err)
	}
	if s.CanRedo() {
		t.Error("redo branch survived a new edit")
	}
}
