// Package validate provides runtime value assertions for defensive
// programming: function entry guards, data-ingestion checks and schema
// validation of loosely-typed maps. Given an arbitrary value, it asserts a
// type, range, length, path or presence constraint and, on failure,
// produces a descriptive error naming the offending variable, inferred from
// the caller's source line.
//
// # Architecture
//
// The core is an Engine that owns three things: a closed registry of
// validators keyed by constraint kind (type, range, length, path), a
// caller-context resolver that recovers a human-readable subject name from
// the call site, and a Config that decides whether failures surface as
// errors and which error type they use. Validators are pure: they report
// pass/fail and can render a message, but never construct errors
// themselves. Only the engine converts a failure into an error, which is
// why the Validate* (boolean) and Assert* (error-returning) families share
// one implementation of every constraint.
//
// Subject-name resolution is strictly cosmetic. It walks the call stack
// past the engine's own frames, reads the caller's source line, and parses
// out the expression passed as the first argument. Any failure there
// degrades to the literal subject "value" and never affects whether
// validation passes.
//
// Collaborators built on the engine's public contract: Batch (accumulates
// failure text across many validations), SchemaValidator (walks a map
// against per-field expectations), Guard (parameter type checks naming the
// declared parameter), and the pattern assertions for emails, URLs and
// UUIDs.
//
// # Usage
//
//	engine := validate.New()
//
//	port, err := engine.AssertNumeric(port, validate.Min(1), validate.Max(65535))
//	if err != nil {
//	    return err // "'port' must be <= 65535, but got 70000"
//	}
//
//	cfgPath, err := engine.AssertPath(cfgPath, validate.MustExist(true), validate.MustBeFile())
//
// Temporary configuration changes are scoped and restored on every exit
// path:
//
//	restore := engine.Override(validate.WithRaiseOnFailure(false))
//	defer restore()
//
// # Error Handling
//
// Failures are reported through the configured ErrorFunc; the default
// produces *AssertionError values that wrap ErrAssertionFailed, so
// errors.Is and errors.As work as expected. Omitting a mandatory constraint
// parameter (for example a type check with no expected type) is API misuse
// and panics with ErrMissingConstraint instead of returning a validation
// failure.
//
// # Concurrency
//
// An Engine holds one mutable configuration slot which Override and Scoped
// swap in place, so a single engine must not be shared across goroutines
// that use scoped overrides. Use Clone to hand each goroutine its own
// engine. Batch and SchemaValidator are likewise single-writer.
//
// # Performance Considerations
//
// Subject-name resolution reads and parses caller source, but only on the
// failing path of a raising engine; passing validations never touch it.
// This package is a correctness aid, not a hot-path tool.
package validate
