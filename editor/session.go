package editor

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/kbukum/transcriptkit/config"
	"github.com/kbukum/transcriptkit/errors"
	"github.com/kbukum/transcriptkit/gapfill"
	"github.com/kbukum/transcriptkit/grouper"
	"github.com/kbukum/transcriptkit/history"
	"github.com/kbukum/transcriptkit/logger"
	"github.com/kbukum/transcriptkit/playback"
	"github.com/kbukum/transcriptkit/transcript"
	"github.com/kbukum/transcriptkit/validation"
)

// Session owns the committed clip list, the speaker directory, the
// soft-deleted word set, and the edit history for one editing session.
type Session struct {
	cfg           config.Config
	log           *logger.Logger
	audioDuration float64

	committed atomic.Pointer[[]transcript.Clip]
	mapper    atomic.Pointer[playback.Mapper]

	speakers map[string]string
	deleted  *transcript.DeletedWordSet
	hist     *history.Log
	guard    *opGuard

	now func() time.Time

	currentTime atomic.Uint64 // float64 bits
}

// NewSession ingests a recognition result and builds the initial continuous
// clip list. Malformed input rejects the whole ingest; no session is
// created.
func NewSession(cfg config.Config, res transcript.RecognitionResult, audioDuration float64, log *logger.Logger) (*Session, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validation.New().NonNegative("audio_duration", audioDuration).Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewDefault("transcriptkit")
	}

	segments, err := transcript.Normalize(res, log)
	if err != nil {
		return nil, err
	}

	s := newSession(cfg, audioDuration, log)
	for id, name := range res.Speakers {
		s.speakers[id] = name
	}
	for _, seg := range segments {
		if _, ok := s.speakers[seg.Speaker]; !ok {
			s.speakers[seg.Speaker] = seg.Speaker
		}
	}

	now := s.now()
	groups := grouper.GroupSegments(segments, cfg.Grouping)
	clips := gapfill.BuildClips(groups, cfg.GapThreshold, now)
	clips = gapfill.Continuous(clips, audioDuration, now)
	s.commit(clips)

	s.log.Info("session created", logger.Fields(
		"segments", len(segments),
		"clips", len(clips),
		"audio_duration", audioDuration,
	))
	return s, nil
}

// NewSessionFromDocument restores a session from a persisted document.
// History starts empty: undo does not reach across a save/load boundary.
func NewSessionFromDocument(cfg config.Config, doc transcript.Document, log *logger.Logger) (*Session, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validation.New().NonNegative("audio_duration", doc.AudioDuration).Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewDefault("transcriptkit")
	}

	s := newSession(cfg, doc.AudioDuration, log)
	for id, name := range doc.Speakers {
		s.speakers[id] = name
	}
	s.deleted = transcript.Restore(doc.DeletedWords)

	clips := make([]transcript.Clip, len(doc.Clips))
	copy(clips, doc.Clips)
	s.commit(clips)
	return s, nil
}

func newSession(cfg config.Config, audioDuration float64, log *logger.Logger) *Session {
	return &Session{
		cfg:           cfg,
		log:           log.WithComponent("editor"),
		audioDuration: audioDuration,
		speakers:      map[string]string{transcript.DefaultSpeaker: transcript.DefaultSpeaker},
		deleted:       transcript.NewDeletedWordSet(),
		hist:          history.NewLog(cfg.HistoryLimit),
		guard:         newOpGuard(cfg.DebounceWindow, time.Now),
		now:           time.Now,
	}
}

// commit atomically replaces the committed clip list. Word indices are
// recomputed and the playback mapper is rebuilt so readers on their next
// tick see the post-edit state.
func (s *Session) commit(clips []transcript.Clip) {
	transcript.ReindexWords(clips)
	transcript.SortByOrder(clips)
	s.committed.Store(&clips)
	s.mapper.Store(playback.NewMapper(clips))
}

// clipList returns the committed clip list snapshot.
func (s *Session) clipList() []transcript.Clip {
	p := s.committed.Load()
	if p == nil {
		return nil
	}
	return *p
}

// Clips returns the active clips in display order.
func (s *Session) Clips() []transcript.Clip {
	return transcript.ActiveClips(s.clipList())
}

// AllClips returns every clip including soft-deleted ones.
func (s *Session) AllClips() []transcript.Clip {
	list := s.clipList()
	out := make([]transcript.Clip, len(list))
	copy(out, list)
	return out
}

// AudioDuration returns the total audio duration in seconds.
func (s *Session) AudioDuration() float64 { return s.audioDuration }

// Speakers returns a copy of the speaker directory.
func (s *Session) Speakers() map[string]string {
	out := make(map[string]string, len(s.speakers))
	for id, name := range s.speakers {
		out[id] = name
	}
	return out
}

// AddSpeaker registers a speaker id with a display name.
func (s *Session) AddSpeaker(id, name string) error {
	v := validation.New()
	v.Required("speaker_id", id)
	if err := v.Validate(); err != nil {
		return err
	}
	if name == "" {
		name = id
	}
	s.speakers[id] = name
	return nil
}

// DeletedWords returns the soft-deleted word side table as plain records.
func (s *Session) DeletedWords() []transcript.DeletedWord {
	return s.deleted.Entries()
}

// IsWordDeleted reports whether the word at the clip-local index is
// soft-deleted.
func (s *Session) IsWordDeleted(clipID string, wordIndex int) bool {
	return s.deleted.Has(transcript.WordID(clipID, wordIndex))
}

// CanUndo reports whether an undo is available.
func (s *Session) CanUndo() bool { return s.hist.CanUndo() }

// CanRedo reports whether a redo is available.
func (s *Session) CanRedo() bool { return s.hist.CanRedo() }

// Export produces the plain-record document for the persistence layer.
func (s *Session) Export() transcript.Document {
	return transcript.Document{
		AudioDuration: s.audioDuration,
		Clips:         s.AllClips(),
		DeletedWords:  s.deleted.Entries(),
		Speakers:      s.Speakers(),
	}
}

// OnTimeUpdate consumes a playback tick.
func (s *Session) OnTimeUpdate(t float64) {
	s.currentTime.Store(math.Float64bits(t))
}

// CurrentTime returns the last playback tick time.
func (s *Session) CurrentTime() float64 {
	return math.Float64frombits(s.currentTime.Load())
}

// ActiveClip returns the clip under t, or nil.
func (s *Session) ActiveClip(t float64) *transcript.Clip {
	return s.mapper.Load().ActiveClip(t)
}

// ActiveWordID returns the stable id of the word under t, or "".
func (s *Session) ActiveWordID(t float64) string {
	return s.mapper.Load().ActiveWordID(t)
}

// AdjustedTime maps a raw audio time onto the listen-mode timeline that
// skips soft-deleted words.
func (s *Session) AdjustedTime(raw float64) float64 {
	return playback.AdjustedTime(s.deleted.Words(), raw)
}

// OriginalTime maps a listen-mode time back onto the raw audio timeline,
// for seeking.
func (s *Session) OriginalTime(adjusted float64) float64 {
	return playback.OriginalTime(s.deleted.Words(), adjusted)
}

// findActive locates an active clip by id in the committed list.
func findActive(clips []transcript.Clip, clipID string) (int, transcript.Clip, error) {
	for i, c := range clips {
		if c.ID == clipID && c.IsActive() {
			return i, c, nil
		}
	}
	return 0, transcript.Clip{}, errors.ClipNotFound(clipID)
}
