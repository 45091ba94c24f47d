package validate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gergdev/valguard/pkg/validate"
)

func TestNewFromEnv(t *testing.T) {
	t.Run("defaults apply when nothing is set", func(t *testing.T) {
		t.Setenv("VALGUARD_STRICT_MODE", "")
		os.Unsetenv("VALGUARD_STRICT_MODE")
		os.Unsetenv("VALGUARD_AUTO_EXTRACT_NAMES")
		os.Unsetenv("VALGUARD_RAISE_ON_FAILURE")

		engine, err := validate.NewFromEnv()
		require.NoError(t, err)

		cfg := engine.Config()
		assert.True(t, cfg.StrictMode)
		assert.True(t, cfg.AutoExtractNames)
		assert.True(t, cfg.RaiseOnFailure)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		t.Setenv("VALGUARD_STRICT_MODE", "false")
		t.Setenv("VALGUARD_AUTO_EXTRACT_NAMES", "false")
		t.Setenv("VALGUARD_RAISE_ON_FAILURE", "false")

		engine, err := validate.NewFromEnv()
		require.NoError(t, err)

		cfg := engine.Config()
		assert.False(t, cfg.StrictMode)
		assert.False(t, cfg.AutoExtractNames)
		assert.False(t, cfg.RaiseOnFailure)

		_, aerr := engine.AssertNotNil(nil)
		assert.NoError(t, aerr)
	})

	t.Run("explicit env file is loaded", func(t *testing.T) {
		t.Setenv("VALGUARD_RAISE_ON_FAILURE", "true")
		os.Unsetenv("VALGUARD_RAISE_ON_FAILURE")

		envFile := filepath.Join(t.TempDir(), ".env.test")
		require.NoError(t, os.WriteFile(envFile, []byte("VALGUARD_RAISE_ON_FAILURE=false\n"), 0o600))

		engine, err := validate.NewFromEnv(envFile)
		require.NoError(t, err)
		assert.False(t, engine.Config().RaiseOnFailure)
	})

	t.Run("missing explicit env file is an error", func(t *testing.T) {
		_, err := validate.NewFromEnv(filepath.Join(t.TempDir(), "nope.env"))
		assert.Error(t, err)
	})

	t.Run("unparseable values surface the parsing sentinel", func(t *testing.T) {
		t.Setenv("VALGUARD_STRICT_MODE", "definitely")
		_, err := validate.NewFromEnv()
		require.Error(t, err)
		assert.ErrorIs(t, err, validate.ErrParsingEnv)
	})
}
