package validate

import "errors"

// FailureKind identifies the category of a validation failure. The set is
// closed: every failure the engine can produce maps to exactly one kind,
// which lets a custom ErrorFunc translate failures into the host
// application's own error representation.
type FailureKind int

const (
	KindTypeMismatch FailureKind = iota
	KindRangeViolation
	KindLengthViolation
	KindPathViolation
	KindMissingKey
	KindNilValue
	KindConversionFailure
	KindFormatViolation
	KindBatchFailure
)

// String returns a stable identifier for the failure kind.
func (k FailureKind) String() string {
	switch k {
	case KindTypeMismatch:
		return "type_mismatch"
	case KindRangeViolation:
		return "range_violation"
	case KindLengthViolation:
		return "length_violation"
	case KindPathViolation:
		return "path_violation"
	case KindMissingKey:
		return "missing_key"
	case KindNilValue:
		return "nil_value"
	case KindConversionFailure:
		return "conversion_failure"
	case KindFormatViolation:
		return "format_violation"
	case KindBatchFailure:
		return "batch_failure"
	}
	return "unknown"
}

var (
	// ErrAssertionFailed is the sentinel wrapped by every AssertionError,
	// so errors.Is(err, ErrAssertionFailed) detects any default failure.
	ErrAssertionFailed = errors.New("assertion failed")

	// ErrMissingConstraint reports misuse of the engine API itself, such as
	// a type check without any expected type. Validators panic with an
	// error wrapping this sentinel; it is never returned for bad input data.
	ErrMissingConstraint = errors.New("missing mandatory constraint")
)

// AssertionError is the default error type produced on validation failure.
// It carries the failure kind alongside the rendered message.
type AssertionError struct {
	Kind    FailureKind
	Message string
}

func (e *AssertionError) Error() string { return e.Message }

func (e *AssertionError) Unwrap() error { return ErrAssertionFailed }

// ErrorFunc builds the error returned for a validation failure. The message
// is fully rendered; implementations should not alter it.
type ErrorFunc func(kind FailureKind, msg string) error

// NewAssertionError is the default ErrorFunc.
func NewAssertionError(kind FailureKind, msg string) error {
	return &AssertionError{Kind: kind, Message: msg}
}

// IsAssertionError reports whether err originates from a default-configured
// engine.
func IsAssertionError(err error) bool {
	return errors.Is(err, ErrAssertionFailed)
}

// ExtractAssertionError returns the underlying *AssertionError, or nil when
// err was built by a custom ErrorFunc.
func ExtractAssertionError(err error) *AssertionError {
	var ae *AssertionError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
