package validate

import (
	"slices"
	"strings"
)

// Batch accumulates validation failures as text instead of stopping at the
// first one. It only observes failures that surface as errors, so it should
// be used with an engine that raises. Append-only; not safe for concurrent
// writers.
type Batch struct {
	engine *Engine
	errors []string
}

// NewBatch binds a batch to an engine. A nil engine uses the package
// default.
func NewBatch(engine *Engine) *Batch {
	if engine == nil {
		engine = defaultEngine
	}
	return &Batch{engine: engine}
}

// Add runs one validation and records its failure text, if any.
//
//	batch.Add(func() error { _, err := engine.AssertNumeric(age, validate.Min(0)); return err })
func (b *Batch) Add(fn func() error) {
	if err := fn(); err != nil {
		b.errors = append(b.errors, err.Error())
	}
}

// Valid reports whether no failures have been recorded.
func (b *Batch) Valid() bool { return len(b.errors) == 0 }

// Errors returns a copy of the recorded failure messages.
func (b *Batch) Errors() []string { return slices.Clone(b.errors) }

// Resolve returns a single error listing every recorded failure, built with
// the engine's error constructor, or nil when the batch is clean.
func (b *Batch) Resolve() error {
	if len(b.errors) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString("batch validation failed:")
	for _, msg := range b.errors {
		sb.WriteString("\n  - ")
		sb.WriteString(msg)
	}
	return b.engine.config.NewError(KindBatchFailure, sb.String())
}

// Reset discards all recorded failures.
func (b *Batch) Reset() { b.errors = b.errors[:0] }
