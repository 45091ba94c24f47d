package validate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gergdev/valguard/pkg/validate"
)

func TestAssertPath(t *testing.T) {
	engine := validate.New()

	t.Run("empty path always fails regardless of other options", func(t *testing.T) {
		empty := ""
		_, err := engine.AssertPath(empty)
		require.Error(t, err)
		assert.EqualError(t, err, "'empty' cannot be an empty path")

		_, err = engine.AssertPath(empty, validate.MustExist(false))
		assert.Error(t, err)
	})

	t.Run("whitespace-only path fails", func(t *testing.T) {
		blank := "   "
		_, err := engine.AssertPath(blank)
		require.Error(t, err)
		assert.EqualError(t, err, "'blank' cannot be an empty path")
	})

	t.Run("conversion failure is a validation failure", func(t *testing.T) {
		input := 42
		_, err := engine.AssertPath(input)
		require.Error(t, err)
		assert.EqualError(t, err, "'input' cannot be converted to a path: unsupported type 'int'")
		ae := validate.ExtractAssertionError(err)
		require.NotNil(t, ae)
		assert.Equal(t, validate.KindConversionFailure, ae.Kind)
	})

	t.Run("byte slices convert like strings", func(t *testing.T) {
		dir := []byte(t.TempDir())
		got, err := engine.AssertPath(dir, validate.MustBeDir())
		require.NoError(t, err)
		assert.Equal(t, filepath.Clean(string(dir)), got)
	})

	t.Run("existing directory satisfies MustBeDir but not MustBeFile", func(t *testing.T) {
		dir := t.TempDir()
		_, err := engine.AssertPath(dir, validate.MustBeDir())
		assert.NoError(t, err)

		_, err = engine.AssertPath(dir, validate.MustBeFile())
		require.Error(t, err)
		assert.EqualError(t, err, "'dir' must be a file, but '"+dir+"' is not a file")
	})

	t.Run("existing file satisfies MustBeFile", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "data.txt")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

		got, err := engine.AssertPath(file, validate.MustExist(true), validate.MustBeFile())
		require.NoError(t, err)
		assert.Equal(t, file, got)
	})

	t.Run("MustExist(true) fails for a missing path", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing")
		_, err := engine.AssertPath(missing, validate.MustExist(true))
		require.Error(t, err)
		assert.EqualError(t, err, "'missing' path must exist, but '"+missing+"' does not exist")
	})

	t.Run("MustExist(false) inverts the existence check", func(t *testing.T) {
		dir := t.TempDir()
		_, err := engine.AssertPath(dir, validate.MustExist(false))
		require.Error(t, err)
		assert.EqualError(t, err, "'dir' path must not exist, but '"+dir+"' already exists")

		missing := filepath.Join(dir, "missing")
		_, err = engine.AssertPath(missing, validate.MustExist(false))
		assert.NoError(t, err)
	})

	t.Run("CreateParents builds missing parent directories", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "a", "b", "c.txt")
		_, err := engine.AssertPath(target, validate.CreateParents())
		require.NoError(t, err)

		info, statErr := os.Stat(filepath.Dir(target))
		require.NoError(t, statErr)
		assert.True(t, info.IsDir())
	})

	t.Run("re-asserting an asserted path yields an equal path", func(t *testing.T) {
		raw := t.TempDir() + string(os.PathSeparator)
		first, err := engine.AssertPath(raw)
		require.NoError(t, err)
		second, err := engine.AssertPath(first)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestValidatePath(t *testing.T) {
	engine := validate.NewLenient()

	t.Run("reports booleans without converting", func(t *testing.T) {
		ok, err := engine.ValidatePath(t.TempDir(), validate.MustBeDir())
		assert.NoError(t, err)
		assert.True(t, ok)

		ok, err = engine.ValidatePath("", validate.MustBeDir())
		assert.NoError(t, err)
		assert.False(t, ok)

		ok, err = engine.ValidatePath(struct{}{})
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
