// Package grouper turns ordered recognizer segments into paragraph-like
// segment groups, each of which becomes one clip.
//
// Grouping is a pure scan: segments accumulate into the current group until
// a boundary condition fires: speaker change, a pause longer than the
// threshold, a word-count or duration cap that adding the segment would
// exceed, or a sentence boundary once the group is long enough.
//
// The caps are advisory, not invariants: a single recognizer segment that
// alone exceeds them is kept whole rather than force-split.
package grouper
