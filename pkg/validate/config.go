package validate

// Config controls how an Engine reacts to validation failures. Configs are
// value objects: overrides always produce a new Config, never mutate one
// that is already installed.
type Config struct {
	// StrictMode is reserved for stricter coercion policies and is carried
	// through presets and scopes, but no validator currently consults it.
	StrictMode bool

	// AutoExtractNames enables caller-source inspection to recover the
	// subject name used in failure messages. When false, the literal
	// subject "value" is used.
	AutoExtractNames bool

	// RaiseOnFailure makes Validate* report failures as errors and Assert*
	// return them. When false, failures surface only as boolean results.
	RaiseOnFailure bool

	// NewError builds the error for a failure. Defaults to NewAssertionError.
	NewError ErrorFunc
}

// ConfigOption mutates a Config under construction.
type ConfigOption func(*Config)

func WithStrictMode(on bool) ConfigOption {
	return func(c *Config) { c.StrictMode = on }
}

func WithAutoExtractNames(on bool) ConfigOption {
	return func(c *Config) { c.AutoExtractNames = on }
}

func WithRaiseOnFailure(on bool) ConfigOption {
	return func(c *Config) { c.RaiseOnFailure = on }
}

// WithErrorFunc replaces the error constructor. Panics on nil.
func WithErrorFunc(fn ErrorFunc) ConfigOption {
	if fn == nil {
		panic("validate: nil ErrorFunc")
	}
	return func(c *Config) { c.NewError = fn }
}

// DefaultConfig returns the configuration used by New without options:
// strict, auto-extracting, raising, with the default error type.
func DefaultConfig() Config {
	return Config{
		StrictMode:       true,
		AutoExtractNames: true,
		RaiseOnFailure:   true,
		NewError:         NewAssertionError,
	}
}
