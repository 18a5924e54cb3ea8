package transcript

// Document is the plain-record form of an editing session exchanged with
// the persistence collaborator. It carries no engine-internal identity:
// stable string ids, numeric timestamps in seconds, and strings survive a
// save/load round trip unchanged.
type Document struct {
	// AudioDuration is the total audio duration in seconds.
	AudioDuration float64 `json:"audio_duration"`
	// Clips is the full clip list, including soft-deleted clips.
	Clips []Clip `json:"clips"`
	// DeletedWords is the soft-deleted word side table.
	DeletedWords []DeletedWord `json:"deleted_words,omitempty"`
	// Speakers maps speaker ids to display names.
	Speakers map[string]string `json:"speakers,omitempty"`
}
