package validate_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gergdev/valguard/pkg/validate"
)

func TestAssertionError(t *testing.T) {
	t.Run("wraps the sentinel", func(t *testing.T) {
		err := validate.NewAssertionError(validate.KindRangeViolation, "'x' must be >= 0, but got -1")
		assert.EqualError(t, err, "'x' must be >= 0, but got -1")
		assert.ErrorIs(t, err, validate.ErrAssertionFailed)
	})

	t.Run("survives further wrapping", func(t *testing.T) {
		inner := validate.NewAssertionError(validate.KindNilValue, "'x' must not be nil")
		wrapped := fmt.Errorf("loading config: %w", inner)

		assert.True(t, validate.IsAssertionError(wrapped))
		ae := validate.ExtractAssertionError(wrapped)
		require.NotNil(t, ae)
		assert.Equal(t, validate.KindNilValue, ae.Kind)
	})

	t.Run("foreign errors are not assertion errors", func(t *testing.T) {
		assert.False(t, validate.IsAssertionError(errors.New("boom")))
		assert.Nil(t, validate.ExtractAssertionError(errors.New("boom")))
		assert.False(t, validate.IsAssertionError(nil))
	})
}

func TestFailureKindString(t *testing.T) {
	cases := map[validate.FailureKind]string{
		validate.KindTypeMismatch:      "type_mismatch",
		validate.KindRangeViolation:    "range_violation",
		validate.KindLengthViolation:   "length_violation",
		validate.KindPathViolation:     "path_violation",
		validate.KindMissingKey:        "missing_key",
		validate.KindNilValue:          "nil_value",
		validate.KindConversionFailure: "conversion_failure",
		validate.KindFormatViolation:   "format_violation",
		validate.KindBatchFailure:      "batch_failure",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
	assert.Equal(t, "unknown", validate.FailureKind(99).String())
}
