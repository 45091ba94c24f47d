package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gergdev/valguard/pkg/validate"
)

func TestOverride(t *testing.T) {
	t.Run("suppresses errors inside the scope and restores after", func(t *testing.T) {
		engine := validate.New()
		before := engine.Config()

		restore := engine.Override(validate.WithRaiseOnFailure(false))
		_, err := engine.AssertType(1, validate.TypeOf[string]())
		assert.NoError(t, err)
		restore()

		after := engine.Config()
		assert.Equal(t, before.StrictMode, after.StrictMode)
		assert.Equal(t, before.AutoExtractNames, after.AutoExtractNames)
		assert.Equal(t, before.RaiseOnFailure, after.RaiseOnFailure)
		_, err = engine.AssertType(1, validate.TypeOf[string]())
		assert.Error(t, err)
	})

	t.Run("scopes nest and unwind in order", func(t *testing.T) {
		engine := validate.New()

		outer := engine.Override(validate.WithRaiseOnFailure(false))
		inner := engine.Override(validate.WithAutoExtractNames(false))
		assert.False(t, engine.Config().RaiseOnFailure)
		assert.False(t, engine.Config().AutoExtractNames)

		inner()
		assert.False(t, engine.Config().RaiseOnFailure)
		assert.True(t, engine.Config().AutoExtractNames)

		outer()
		assert.True(t, engine.Config().RaiseOnFailure)
		assert.True(t, engine.Config().AutoExtractNames)
	})
}

func TestScoped(t *testing.T) {
	t.Run("applies overrides for the duration of fn", func(t *testing.T) {
		engine := validate.New()
		engine.Scoped(func(e *validate.Engine) {
			_, err := e.AssertNotNil(nil)
			assert.NoError(t, err)
		}, validate.WithRaiseOnFailure(false))

		_, err := engine.AssertNotNil(nil)
		assert.Error(t, err)
	})

	t.Run("restores the configuration when fn panics", func(t *testing.T) {
		engine := validate.New()
		before := engine.Config()

		require.Panics(t, func() {
			engine.Scoped(func(e *validate.Engine) {
				panic("boom")
			}, validate.WithRaiseOnFailure(false), validate.WithStrictMode(false))
		})

		after := engine.Config()
		assert.Equal(t, before.StrictMode, after.StrictMode)
		assert.Equal(t, before.AutoExtractNames, after.AutoExtractNames)
		assert.Equal(t, before.RaiseOnFailure, after.RaiseOnFailure)
	})
}

func TestClone(t *testing.T) {
	t.Run("clone has independent configuration", func(t *testing.T) {
		engine := validate.New()
		clone := engine.Clone()

		restore := clone.Override(validate.WithRaiseOnFailure(false))
		defer restore()

		assert.True(t, engine.Config().RaiseOnFailure)
		assert.False(t, clone.Config().RaiseOnFailure)
	})
}
