// Package validation provides input validation utilities for the transcript
// engine.
//
// It supports both struct tag validation (using the validator library, used
// for grouping parameters and engine configuration) and programmatic
// validation with error collection (used by edit operations to check their
// preconditions before touching any state).
//
// # Struct Tag Validation
//
//	type Params struct {
//	    PauseThreshold float64 `validate:"gt=0"`
//	}
//	err := validation.Validate(params)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("clip_id", clipID)
//	v.Index("word_index", idx, len(words))
//	err := v.Validate()
package validation
