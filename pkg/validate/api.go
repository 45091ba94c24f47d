package validate

// defaultEngine backs the package-level functions. It uses DefaultConfig;
// callers needing different behavior should construct their own engine.
var defaultEngine = New()

// DefaultEngine returns the engine used by the package-level functions.
func DefaultEngine() *Engine { return defaultEngine }

func IsType(value, want any) bool { return defaultEngine.IsType(value, want) }

func IsNotNil(value any) bool { return defaultEngine.IsNotNil(value) }

func AssertType(value, want any, opts ...Option) (any, error) {
	return defaultEngine.AssertType(value, want, opts...)
}

func AssertNotNil(value any, opts ...Option) (any, error) {
	return defaultEngine.AssertNotNil(value, opts...)
}

func AssertNumeric(value any, opts ...Option) (any, error) {
	return defaultEngine.AssertNumeric(value, opts...)
}

func AssertStringLike(value any, opts ...Option) (any, error) {
	return defaultEngine.AssertStringLike(value, opts...)
}

func AssertSequence(value any, opts ...Option) (any, error) {
	return defaultEngine.AssertSequence(value, opts...)
}

func AssertMapping(value any, opts ...Option) (any, error) {
	return defaultEngine.AssertMapping(value, opts...)
}

func AssertPath(value any, opts ...Option) (string, error) {
	return defaultEngine.AssertPath(value, opts...)
}

func AssertRange(value any, opts ...Option) (any, error) {
	return defaultEngine.AssertRange(value, opts...)
}

func AssertLength(value any, opts ...Option) (any, error) {
	return defaultEngine.AssertLength(value, opts...)
}

func ValidateType(value, want any, opts ...Option) (bool, error) {
	return defaultEngine.ValidateType(value, want, opts...)
}

func ValidateRange(value any, opts ...Option) (bool, error) {
	return defaultEngine.ValidateRange(value, opts...)
}

func ValidateLength(value any, opts ...Option) (bool, error) {
	return defaultEngine.ValidateLength(value, opts...)
}

func ValidatePath(value any, opts ...Option) (bool, error) {
	return defaultEngine.ValidatePath(value, opts...)
}
