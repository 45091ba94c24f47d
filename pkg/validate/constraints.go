package validate

import "reflect"

// typeClass selects a whole family of runtime kinds instead of an explicit
// type set. Used by the composite assertions.
type typeClass int

const (
	classAny typeClass = iota
	classNumeric
	classStringLike
	classSequence
	classMapping
)

// constraints is the named-option bag consumed by the validators. Which
// fields are recognized depends on the validator kind; unrecognized fields
// are ignored.
type constraints struct {
	types []reflect.Type
	class typeClass

	min *float64
	max *float64

	minLen   *int
	maxLen   *int
	exactLen *int

	requiredKeys []string

	mustExist     *bool
	mustBeFile    bool
	mustBeDir     bool
	createParents bool

	schemes []string

	message string
}

// Option configures a single validation call.
type Option func(*constraints)

// Min sets the inclusive lower bound for range checks.
func Min(v float64) Option {
	return func(c *constraints) { c.min = &v }
}

// Max sets the inclusive upper bound for range checks.
func Max(v float64) Option {
	return func(c *constraints) { c.max = &v }
}

// MinLen sets the minimum length for length checks.
func MinLen(n int) Option {
	return func(c *constraints) { c.minLen = &n }
}

// MaxLen sets the maximum length for length checks.
func MaxLen(n int) Option {
	return func(c *constraints) { c.maxLen = &n }
}

// ExactLen requires an exact length. Takes precedence over MinLen/MaxLen.
func ExactLen(n int) Option {
	return func(c *constraints) { c.exactLen = &n }
}

// RequiredKeys lists keys a mapping must contain. Missing keys are reported
// together, in the order given here.
func RequiredKeys(keys ...string) Option {
	return func(c *constraints) { c.requiredKeys = append(c.requiredKeys, keys...) }
}

// MustExist requires the path to exist (true) or to not exist (false).
func MustExist(exist bool) Option {
	return func(c *constraints) { c.mustExist = &exist }
}

// MustBeFile requires the path to be an existing regular file.
func MustBeFile() Option {
	return func(c *constraints) { c.mustBeFile = true }
}

// MustBeDir requires the path to be an existing directory.
func MustBeDir() Option {
	return func(c *constraints) { c.mustBeDir = true }
}

// CreateParents makes AssertPath create missing parent directories before
// running the path checks. Filesystem failures surface as validation errors.
func CreateParents() Option {
	return func(c *constraints) { c.createParents = true }
}

// Schemes restricts the URL schemes accepted by AssertURL.
func Schemes(schemes ...string) Option {
	return func(c *constraints) { c.schemes = append(c.schemes, schemes...) }
}

// WithMessage replaces the generated failure message entirely.
func WithMessage(msg string) Option {
	return func(c *constraints) { c.message = msg }
}

func buildConstraints(opts []Option) constraints {
	var c constraints
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// TypeOf returns the reflect.Type for T, including interface types, for use
// as an expected-type argument.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// typeSet normalizes an expected-type argument into a list of reflect.Types.
// Accepted forms: a reflect.Type, a value witness (its dynamic type is
// used), or a slice of either meaning "any of". A nil argument yields an
// empty set, which the type validator rejects as API misuse.
func typeSet(want any) []reflect.Type {
	switch w := want.(type) {
	case nil:
		return nil
	case reflect.Type:
		return []reflect.Type{w}
	case []reflect.Type:
		return w
	case []any:
		var types []reflect.Type
		for _, item := range w {
			types = append(types, typeSet(item)...)
		}
		return types
	default:
		return []reflect.Type{reflect.TypeOf(w)}
	}
}
