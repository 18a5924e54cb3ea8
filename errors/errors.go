package errors

import (
	stderrors "errors"
	"fmt"
)

// EngineError is the unified engine error type.
type EngineError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *EngineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *EngineError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *EngineError) WithCause(cause error) *EngineError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *EngineError) WithDetail(key string, value any) *EngineError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new EngineError.
func New(code ErrorCode, message string) *EngineError {
	return &EngineError{Code: code, Message: message}
}

// IsValidation returns true if err is an EngineError with a validation code.
// Validation errors mean the operation was rejected and no state changed.
func IsValidation(err error) bool {
	var ee *EngineError
	if stderrors.As(err, &ee) {
		return IsValidationCode(ee.Code)
	}
	return false
}

// --- Common Error Constructors ---

// InvalidSplit creates a new EngineError for a rejected clip split.
func InvalidSplit(clipID, reason string) *EngineError {
	return &EngineError{
		Code: ErrCodeInvalidSplit, Message: fmt.Sprintf("Cannot split clip: %s", reason),
		Details: map[string]any{"clip_id": clipID},
	}
}

// InvalidMerge creates a new EngineError for a rejected clip merge.
func InvalidMerge(reason string) *EngineError {
	return &EngineError{
		Code: ErrCodeInvalidMerge, Message: fmt.Sprintf("Cannot merge clips: %s", reason),
	}
}

// IndexOutOfRange creates a new EngineError for an out-of-range index.
func IndexOutOfRange(field string, index, length int) *EngineError {
	return &EngineError{
		Code: ErrCodeIndexOutOfRange, Message: fmt.Sprintf("Index %d out of range for %s (length %d).", index, field, length),
		Details: map[string]any{"field": field, "index": index, "length": length},
	}
}

// UnknownSpeaker creates a new EngineError for a speaker id missing from the directory.
func UnknownSpeaker(speakerID string) *EngineError {
	return &EngineError{
		Code: ErrCodeUnknownSpeaker, Message: fmt.Sprintf("Speaker %q is not in the speaker directory.", speakerID),
		Details: map[string]any{"speaker_id": speakerID},
	}
}

// MalformedSegment creates a new EngineError for a segment that failed ingestion checks.
func MalformedSegment(index int, reason string) *EngineError {
	return &EngineError{
		Code: ErrCodeMalformedSegment, Message: fmt.Sprintf("Segment %d is malformed: %s", index, reason),
		Details: map[string]any{"segment_index": index},
	}
}

// ClipNotFound creates a new EngineError for a missing or deleted clip.
func ClipNotFound(clipID string) *EngineError {
	return &EngineError{
		Code: ErrCodeClipNotFound, Message: "The requested clip was not found.",
		Details: map[string]any{"clip_id": clipID},
	}
}

// WordNotFound creates a new EngineError for a missing word.
func WordNotFound(wordID string) *EngineError {
	return &EngineError{
		Code: ErrCodeWordNotFound, Message: "The requested word was not found.",
		Details: map[string]any{"word_id": wordID},
	}
}

// DuplicateOperation creates a new EngineError for a guard-suppressed operation.
func DuplicateOperation(operation string) *EngineError {
	return &EngineError{
		Code: ErrCodeDuplicateOperation, Message: fmt.Sprintf("Duplicate %s suppressed.", operation),
		Details: map[string]any{"operation": operation},
	}
}

// Validation creates a new EngineError for a generic validation failure.
func Validation(message string) *EngineError {
	return &EngineError{Code: ErrCodeInvalidInput, Message: message}
}

// Internal creates a new EngineError for an unexpected engine fault.
func Internal(cause error) *EngineError {
	return &EngineError{
		Code: ErrCodeInternal, Message: "An unexpected engine error occurred.",
		Cause: cause,
	}
}
