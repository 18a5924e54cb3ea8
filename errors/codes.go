package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Validation errors (precondition unmet, no mutation occurred)
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidSplit indicates a clip split precondition was unmet.
	ErrCodeInvalidSplit ErrorCode = "INVALID_SPLIT"
	// ErrCodeInvalidMerge indicates a clip merge precondition was unmet.
	ErrCodeInvalidMerge ErrorCode = "INVALID_MERGE"
	// ErrCodeIndexOutOfRange indicates a word or token index is out of range.
	ErrCodeIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"
	// ErrCodeUnknownSpeaker indicates a speaker id is not in the directory.
	ErrCodeUnknownSpeaker ErrorCode = "UNKNOWN_SPEAKER"
	// ErrCodeMalformedSegment indicates a recognizer segment failed ingestion checks.
	ErrCodeMalformedSegment ErrorCode = "MALFORMED_SEGMENT"
)

// Resource errors
const (
	// ErrCodeClipNotFound indicates the targeted clip does not exist or is deleted.
	ErrCodeClipNotFound ErrorCode = "CLIP_NOT_FOUND"
	// ErrCodeWordNotFound indicates the targeted word does not exist.
	ErrCodeWordNotFound ErrorCode = "WORD_NOT_FOUND"
)

// Guard errors
const (
	// ErrCodeDuplicateOperation indicates the operation was suppressed by the
	// re-entrancy guard (same gesture fired twice inside the debounce window).
	ErrCodeDuplicateOperation ErrorCode = "DUPLICATE_OPERATION"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected engine fault.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var validationCodes = map[ErrorCode]bool{
	ErrCodeInvalidInput:     true,
	ErrCodeInvalidSplit:     true,
	ErrCodeInvalidMerge:     true,
	ErrCodeIndexOutOfRange:  true,
	ErrCodeUnknownSpeaker:   true,
	ErrCodeMalformedSegment: true,
	ErrCodeClipNotFound:     true,
	ErrCodeWordNotFound:     true,
}

// IsValidationCode returns true if the code indicates a validation failure,
// i.e. the operation was rejected before any state change.
func IsValidationCode(code ErrorCode) bool {
	return validationCodes[code]
}
