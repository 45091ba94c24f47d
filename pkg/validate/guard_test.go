package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gergdev/valguard/pkg/validate"
)

func TestGuardCheck(t *testing.T) {
	guard := validate.NewGuard(validate.New())

	resizeParams := validate.ParamTypes{"width": 0, "height": 0, "label": ""}

	t.Run("matching arguments pass", func(t *testing.T) {
		err := guard.Check("Resize", resizeParams, map[string]any{
			"width":  800,
			"height": 600,
			"label":  "thumbnail",
		})
		assert.NoError(t, err)
	})

	t.Run("mismatch names the declared parameter, not an inferred subject", func(t *testing.T) {
		err := guard.Check("Resize", resizeParams, map[string]any{
			"width":  800,
			"height": "tall",
		})
		require.Error(t, err)
		assert.EqualError(t, err, "in call to Resize: 'height' must be of type 'int', but got 'string'")
	})

	t.Run("parameters are checked in name order", func(t *testing.T) {
		err := guard.Check("Resize", resizeParams, map[string]any{
			"width":  "wide",
			"height": "tall",
		})
		require.Error(t, err)
		assert.EqualError(t, err, "in call to Resize: 'height' must be of type 'int', but got 'string'")
	})

	t.Run("declared parameters absent from args are skipped", func(t *testing.T) {
		err := guard.Check("Resize", resizeParams, map[string]any{"width": 1})
		assert.NoError(t, err)
	})

	t.Run("any-of parameter types work", func(t *testing.T) {
		params := validate.ParamTypes{"id": []any{0, ""}}
		assert.NoError(t, guard.Check("Lookup", params, map[string]any{"id": 7}))
		assert.NoError(t, guard.Check("Lookup", params, map[string]any{"id": "seven"}))

		err := guard.Check("Lookup", params, map[string]any{"id": 1.5})
		require.Error(t, err)
		assert.EqualError(t, err, "in call to Lookup: 'id' must be one of types [int, string], but got 'float64'")
	})

	t.Run("custom error func applies to guard failures too", func(t *testing.T) {
		engine := validate.New(validate.WithErrorFunc(func(kind validate.FailureKind, msg string) error {
			return &validate.AssertionError{Kind: kind, Message: "guard: " + msg}
		}))
		g := validate.NewGuard(engine)
		err := g.Check("Resize", resizeParams, map[string]any{"width": "x"})
		require.Error(t, err)
		assert.EqualError(t, err, "guard: in call to Resize: 'width' must be of type 'int', but got 'string'")
	})
}
