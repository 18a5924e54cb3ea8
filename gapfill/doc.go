// Package gapfill converts silence into first-class structure: it turns
// inter-word silences into explicit gap tokens or absorbs them into word
// boundaries, builds clips from segment groups, and inserts synthetic
// audio-only clips so the clip list tiles the full audio duration with no
// uncovered intervals.
//
// Silences at or above the gap threshold (1.0s) become explicit Gap tokens
// with a human-readable label; shorter silences are absorbed into the
// neighboring word so fractional-second pauses are never rendered. Both the
// token normalization and the continuous build are idempotent: running them
// again on already-normalized input is a no-op.
package gapfill
