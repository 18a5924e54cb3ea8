// Package logger provides structured logging for the transcript engine,
// built on zerolog.
//
// The engine logs two kinds of events through it: consistency warnings
// raised while repairing recognizer input (non-monotonic word timings,
// clamped ranges) and an audit trail of applied edit operations.
//
// # Usage
//
//	log := logger.NewDefault("transcriptkit")
//	log = log.WithComponent("editor")
//	log.Warn("non-monotonic word timings", logger.Fields("segment", 3))
package logger
