// Package playback maps audio time onto the clip list and back.
//
// Mapper answers "which clip and word are under the playhead" with binary
// search over the time-sorted active clip list; lookups run at playback
// tick rates (15-60 Hz) against lists that can reach hundreds of clips, so
// linear scans are off the table.
//
// AdjustedTime and OriginalTime compress and expand the timeline to skip
// soft-deleted words during listen-mode playback. They are exact inverses
// for any raw time not inside a deleted word.
package playback
