package validate

// Override installs a temporary configuration built by merging opts over
// the current one, and returns a restore func that reinstates the displaced
// configuration. Callers should defer the restore so it runs on every exit
// path:
//
//	restore := engine.Override(validate.WithRaiseOnFailure(false))
//	defer restore()
//
// Scopes nest: each restore reinstates exactly the configuration it
// displaced.
func (e *Engine) Override(opts ...ConfigOption) (restore func()) {
	prev := e.config
	next := prev
	for _, opt := range opts {
		opt(&next)
	}
	if next.NewError == nil {
		next.NewError = NewAssertionError
	}
	e.config = next
	return func() { e.config = prev }
}

// Scoped runs fn against the engine with opts applied, restoring the prior
// configuration afterwards, including when fn panics.
func (e *Engine) Scoped(fn func(*Engine), opts ...ConfigOption) {
	restore := e.Override(opts...)
	defer restore()
	fn(e)
}
