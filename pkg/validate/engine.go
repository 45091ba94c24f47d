package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

// Engine owns the validator registry, the caller-name resolver and the
// active configuration. Construct one per goroutine; see the package
// documentation for the concurrency constraints.
type Engine struct {
	config     Config
	validators map[Kind]validator
	resolver   *nameResolver
}

// New builds an engine from DefaultConfig plus the given options.
func New(opts ...ConfigOption) *Engine {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig builds an engine around an explicit configuration.
func NewWithConfig(cfg Config) *Engine {
	if cfg.NewError == nil {
		cfg.NewError = NewAssertionError
	}
	return &Engine{
		config:     cfg,
		validators: newValidatorRegistry(),
		resolver:   newNameResolver(),
	}
}

// NewLenient builds a validate-only engine: it never returns failure
// errors, only boolean results.
func NewLenient() *Engine {
	return New(WithStrictMode(false), WithRaiseOnFailure(false))
}

// Config returns a copy of the active configuration.
func (e *Engine) Config() Config { return e.config }

// Clone returns an independent engine with the same configuration, for
// per-goroutine use.
func (e *Engine) Clone() *Engine { return NewWithConfig(e.config) }

func (e *Engine) subjectName() string {
	if !e.config.AutoExtractNames {
		return placeholderName
	}
	return e.resolver.resolve()
}

// fail converts a failure into an error under the active configuration.
// The subject name is resolved lazily, only when a message is actually
// rendered; a custom message always wins over the generated one.
func (e *Engine) fail(kind FailureKind, c constraints, describe func(subject string) string) error {
	if !e.config.RaiseOnFailure {
		return nil
	}
	msg := c.message
	if msg == "" {
		msg = describe(e.subjectName())
	}
	return e.config.NewError(kind, msg)
}

// validateWith runs the registry validator for kind and applies the failure
// policy.
func (e *Engine) validateWith(kind Kind, fkind FailureKind, value any, c constraints) (bool, error) {
	v := e.validators[kind]
	if v.validate(value, c) {
		return true, nil
	}
	return false, e.fail(fkind, c, func(subject string) string {
		return v.describeFailure(value, subject, c)
	})
}

// isNil reports whether value is the absence marker: a nil interface or a
// nil pointer, map, slice, channel or function. Zero, "" and false are
// present values and never count as nil.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// IsType reports whether value's dynamic type is (one of) want. Pure
// predicate: never errors, regardless of configuration.
func (e *Engine) IsType(value, want any) bool {
	return e.validators[KindType].validate(value, constraints{types: typeSet(want)})
}

// IsNotNil reports whether value is present. Pure predicate.
func (e *Engine) IsNotNil(value any) bool {
	return !isNil(value)
}

// ValidateType checks value's dynamic type against want, which may be a
// reflect.Type, a value witness, or a slice of either meaning "any of".
func (e *Engine) ValidateType(value, want any, opts ...Option) (bool, error) {
	c := buildConstraints(opts)
	c.types = typeSet(want)
	return e.validateWith(KindType, KindTypeMismatch, value, c)
}

// AssertType runs ValidateType and returns value unchanged, so the call can
// be used inline as an expression.
func (e *Engine) AssertType(value, want any, opts ...Option) (any, error) {
	_, err := e.ValidateType(value, want, opts...)
	return value, err
}

// ValidateRange checks a numeric value against Min/Max bounds.
func (e *Engine) ValidateRange(value any, opts ...Option) (bool, error) {
	return e.validateWith(KindRange, KindRangeViolation, value, buildConstraints(opts))
}

// AssertRange runs ValidateRange and returns value unchanged.
func (e *Engine) AssertRange(value any, opts ...Option) (any, error) {
	_, err := e.ValidateRange(value, opts...)
	return value, err
}

// ValidateLength checks len(value) against MinLen/MaxLen/ExactLen. Values
// without a length fail with a dedicated message.
func (e *Engine) ValidateLength(value any, opts ...Option) (bool, error) {
	return e.validateWith(KindLength, KindLengthViolation, value, buildConstraints(opts))
}

// AssertLength runs ValidateLength and returns value unchanged.
func (e *Engine) AssertLength(value any, opts ...Option) (any, error) {
	_, err := e.ValidateLength(value, opts...)
	return value, err
}

// ValidatePath checks path convertibility and the MustExist/MustBeFile/
// MustBeDir predicates without converting the value.
func (e *Engine) ValidatePath(value any, opts ...Option) (bool, error) {
	return e.validateWith(KindPath, KindPathViolation, value, buildConstraints(opts))
}

// AssertNotNil rejects the absence marker and passes everything else
// through unchanged, including zero, "" and false.
func (e *Engine) AssertNotNil(value any, opts ...Option) (any, error) {
	if !isNil(value) {
		return value, nil
	}
	return value, e.fail(KindNilValue, buildConstraints(opts), func(subject string) string {
		return fmt.Sprintf("'%s' must not be nil", subject)
	})
}

// AssertNumeric checks that value has a numeric kind, then the optional
// Min/Max bounds. A value failing both reports the type failure.
func (e *Engine) AssertNumeric(value any, opts ...Option) (any, error) {
	c := buildConstraints(opts)
	tc := c
	tc.class = classNumeric
	if _, err := e.validateWith(KindType, KindTypeMismatch, value, tc); err != nil {
		return value, err
	}
	if c.min != nil || c.max != nil {
		if _, err := e.validateWith(KindRange, KindRangeViolation, value, c); err != nil {
			return value, err
		}
	}
	return value, nil
}

// AssertStringLike checks that value is a string or byte slice, then the
// optional length constraints.
func (e *Engine) AssertStringLike(value any, opts ...Option) (any, error) {
	c := buildConstraints(opts)
	tc := c
	tc.class = classStringLike
	if _, err := e.validateWith(KindType, KindTypeMismatch, value, tc); err != nil {
		return value, err
	}
	if c.minLen != nil || c.maxLen != nil || c.exactLen != nil {
		if _, err := e.validateWith(KindLength, KindLengthViolation, value, c); err != nil {
			return value, err
		}
	}
	return value, nil
}

// AssertSequence checks that value is a slice or array, then the optional
// length constraints.
func (e *Engine) AssertSequence(value any, opts ...Option) (any, error) {
	c := buildConstraints(opts)
	tc := c
	tc.class = classSequence
	if _, err := e.validateWith(KindType, KindTypeMismatch, value, tc); err != nil {
		return value, err
	}
	if c.minLen != nil || c.maxLen != nil || c.exactLen != nil {
		if _, err := e.validateWith(KindLength, KindLengthViolation, value, c); err != nil {
			return value, err
		}
	}
	return value, nil
}

// AssertMapping checks that value is a map, then that every RequiredKeys
// entry is present. Missing keys are reported together, in the order given.
func (e *Engine) AssertMapping(value any, opts ...Option) (any, error) {
	c := buildConstraints(opts)
	tc := c
	tc.class = classMapping
	if _, err := e.validateWith(KindType, KindTypeMismatch, value, tc); err != nil {
		return value, err
	}
	if len(c.requiredKeys) == 0 {
		return value, nil
	}
	v := reflect.ValueOf(value)
	if !v.IsValid() || v.Kind() != reflect.Map {
		return value, nil
	}
	var missing []string
	keyType := v.Type().Key()
	for _, key := range c.requiredKeys {
		kv := reflect.ValueOf(key)
		if !kv.Type().AssignableTo(keyType) || !v.MapIndex(kv).IsValid() {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return value, nil
	}
	return value, e.fail(KindMissingKey, c, func(subject string) string {
		if len(missing) == 1 {
			return fmt.Sprintf("'%s' missing required key: '%s'", subject, missing[0])
		}
		return fmt.Sprintf("'%s' missing required keys: '%s'", subject, strings.Join(missing, "', '"))
	})
}

// AssertPath converts value to a cleaned path string, then applies the path
// predicates. This is the one type-normalizing operation: the returned path
// is filepath.Clean of the input text, so re-asserting an already-asserted
// path yields an equal result. With CreateParents, missing parent
// directories are created first and filesystem failures surface as
// validation errors rather than crashes.
func (e *Engine) AssertPath(value any, opts ...Option) (string, error) {
	c := buildConstraints(opts)

	p, convErr := pathFromValue(value)
	if convErr != nil {
		return "", e.fail(KindConversionFailure, c, func(subject string) string {
			return fmt.Sprintf("'%s' cannot be converted to a path: %v", subject, convErr)
		})
	}
	if strings.TrimSpace(p) == "" {
		return "", e.fail(KindPathViolation, c, func(subject string) string {
			return fmt.Sprintf("'%s' cannot be an empty path", subject)
		})
	}
	p = filepath.Clean(p)

	if c.createParents {
		if parent := filepath.Dir(p); parent != "" {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return p, e.fail(KindPathViolation, c, func(subject string) string {
					return fmt.Sprintf("'%s' parent directories could not be created: %v", subject, err)
				})
			}
		}
	}

	if _, err := e.validateWith(KindPath, KindPathViolation, p, c); err != nil {
		return p, err
	}
	return p, nil
}
