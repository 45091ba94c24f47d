package validate

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// Kind selects a registered validator. The set is closed; dispatch is by
// enum so a mismatched kind is a compile-time error, not a lookup failure.
type Kind int

const (
	KindType Kind = iota
	KindRange
	KindLength
	KindPath
)

// validator is the capability set shared by every registered validator.
// validate is a pure predicate; describeFailure re-derives the first
// violated constraint (in a fixed order) and renders a message of the form
// "'<subject>' must <constraint>, but got <actual>". Neither returns errors
// for ordinary violations: the engine decides whether a failure surfaces as
// an error, based on its configuration.
type validator interface {
	validate(value any, c constraints) bool
	describeFailure(value any, subject string, c constraints) string
}

func newValidatorRegistry() map[Kind]validator {
	return map[Kind]validator{
		KindType:   typeValidator{},
		KindRange:  rangeValidator{},
		KindLength: lengthValidator{},
		KindPath:   pathValidator{},
	}
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}

// typeValidator checks membership in a set of expected types, or in a type
// class for the composite assertions.
type typeValidator struct{}

func (typeValidator) validate(value any, c constraints) bool {
	if c.class != classAny {
		return matchesClass(value, c.class)
	}
	if len(c.types) == 0 {
		panic(fmt.Errorf("%w: type validator requires at least one expected type", ErrMissingConstraint))
	}
	got := reflect.TypeOf(value)
	if got == nil {
		return false
	}
	for _, want := range c.types {
		if got == want {
			return true
		}
		if want.Kind() == reflect.Interface && got.Implements(want) {
			return true
		}
	}
	return false
}

func (typeValidator) describeFailure(value any, subject string, c constraints) string {
	got := typeName(value)
	if c.class != classAny {
		return fmt.Sprintf("'%s' must be %s, but got '%s'", subject, classDescription(c.class), got)
	}
	if len(c.types) == 0 {
		panic(fmt.Errorf("%w: type validator requires at least one expected type", ErrMissingConstraint))
	}
	if len(c.types) == 1 {
		return fmt.Sprintf("'%s' must be of type '%s', but got '%s'", subject, c.types[0].String(), got)
	}
	names := make([]string, len(c.types))
	for i, t := range c.types {
		names[i] = t.String()
	}
	return fmt.Sprintf("'%s' must be one of types [%s], but got '%s'", subject, strings.Join(names, ", "), got)
}

func matchesClass(value any, class typeClass) bool {
	if value == nil {
		return false
	}
	kind := reflect.TypeOf(value).Kind()
	switch class {
	case classNumeric:
		return isNumericKind(kind)
	case classStringLike:
		if kind == reflect.String {
			return true
		}
		_, ok := value.([]byte)
		return ok
	case classSequence:
		return kind == reflect.Slice || kind == reflect.Array
	case classMapping:
		return kind == reflect.Map
	}
	return false
}

func classDescription(class typeClass) string {
	switch class {
	case classNumeric:
		return "a numeric value"
	case classStringLike:
		return "a string or byte slice"
	case classSequence:
		return "a slice or array"
	case classMapping:
		return "a map"
	}
	return "a value"
}

func isNumericKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// numericValue extracts the value as a float64 for range comparison.
func numericValue(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// rangeValidator checks an inclusive numeric interval. Absent bounds are
// unconstrained; no bounds at all always passes.
type rangeValidator struct{}

func (rangeValidator) validate(value any, c constraints) bool {
	if c.min == nil && c.max == nil {
		return true
	}
	n, ok := numericValue(value)
	if !ok {
		return false
	}
	if c.min != nil && n < *c.min {
		return false
	}
	if c.max != nil && n > *c.max {
		return false
	}
	return true
}

func (rangeValidator) describeFailure(value any, subject string, c constraints) string {
	n, ok := numericValue(value)
	if !ok {
		return fmt.Sprintf("'%s' must be a numeric value, but got '%s'", subject, typeName(value))
	}
	if c.min != nil && n < *c.min {
		return fmt.Sprintf("'%s' must be >= %s, but got %v", subject, formatBound(*c.min), value)
	}
	if c.max != nil && n > *c.max {
		return fmt.Sprintf("'%s' must be <= %s, but got %v", subject, formatBound(*c.max), value)
	}
	return fmt.Sprintf("'%s' is out of valid range", subject)
}

// lengthOf returns the length of a sized value. Unsized values report false
// rather than panicking; the length validator treats them as failures.
func lengthOf(value any) (int, bool) {
	if value == nil {
		return 0, false
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return v.Len(), true
	}
	return 0, false
}

// lengthValidator checks len() against exact or min/max constraints. An
// exact constraint makes min/max irrelevant: they are ignored entirely.
type lengthValidator struct{}

func (lengthValidator) validate(value any, c constraints) bool {
	n, ok := lengthOf(value)
	if !ok {
		return false
	}
	if c.exactLen != nil {
		return n == *c.exactLen
	}
	if c.minLen != nil && n < *c.minLen {
		return false
	}
	if c.maxLen != nil && n > *c.maxLen {
		return false
	}
	return true
}

func (lengthValidator) describeFailure(value any, subject string, c constraints) string {
	n, ok := lengthOf(value)
	if !ok {
		return fmt.Sprintf("'%s' must have a length, but got %s", subject, typeName(value))
	}
	if c.exactLen != nil {
		if n != *c.exactLen {
			return fmt.Sprintf("'%s' must have length = %d, but got %d", subject, *c.exactLen, n)
		}
		return fmt.Sprintf("'%s' has invalid length", subject)
	}
	if c.minLen != nil && n < *c.minLen {
		return fmt.Sprintf("'%s' must have length >= %d, but got %d", subject, *c.minLen, n)
	}
	if c.maxLen != nil && n > *c.maxLen {
		return fmt.Sprintf("'%s' must have length <= %d, but got %d", subject, *c.maxLen, n)
	}
	return fmt.Sprintf("'%s' has invalid length", subject)
}

// pathFromValue converts a value to its path text. Conversion failure is a
// validation failure, never a panic.
func pathFromValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return "", fmt.Errorf("unsupported type '%s'", typeName(value))
}

// pathValidator checks path convertibility plus existence and kind
// predicates. An empty or whitespace-only path is always invalid.
// MustExist(false) inverts the existence check.
type pathValidator struct{}

func (pathValidator) validate(value any, c constraints) bool {
	p, err := pathFromValue(value)
	if err != nil {
		return false
	}
	if strings.TrimSpace(p) == "" {
		return false
	}
	info, statErr := os.Stat(p)
	exists := statErr == nil
	if c.mustExist != nil && *c.mustExist != exists {
		return false
	}
	if c.mustBeFile && (!exists || info.IsDir()) {
		return false
	}
	if c.mustBeDir && (!exists || !info.IsDir()) {
		return false
	}
	return true
}

func (pathValidator) describeFailure(value any, subject string, c constraints) string {
	p, err := pathFromValue(value)
	if err != nil {
		return fmt.Sprintf("'%s' cannot be converted to a path: %v", subject, err)
	}
	if strings.TrimSpace(p) == "" {
		return fmt.Sprintf("'%s' cannot be an empty path", subject)
	}
	info, statErr := os.Stat(p)
	exists := statErr == nil
	if c.mustExist != nil && *c.mustExist && !exists {
		return fmt.Sprintf("'%s' path must exist, but '%s' does not exist", subject, p)
	}
	if c.mustExist != nil && !*c.mustExist && exists {
		return fmt.Sprintf("'%s' path must not exist, but '%s' already exists", subject, p)
	}
	if c.mustBeFile && !exists {
		return fmt.Sprintf("'%s' must be an existing file, but '%s' does not exist", subject, p)
	}
	if c.mustBeFile && info.IsDir() {
		return fmt.Sprintf("'%s' must be a file, but '%s' is not a file", subject, p)
	}
	if c.mustBeDir && !exists {
		return fmt.Sprintf("'%s' must be an existing directory, but '%s' does not exist", subject, p)
	}
	if c.mustBeDir && !info.IsDir() {
		return fmt.Sprintf("'%s' must be a directory, but '%s' is not a directory", subject, p)
	}
	return fmt.Sprintf("'%s' path validation failed", subject)
}
