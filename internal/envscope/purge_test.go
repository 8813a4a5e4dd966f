package envscope

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setDummyVar mimics a library that sets one of its variables and never
// cleans it up.
func setDummyVar() error {
	return os.Setenv("ACCELERATE_SOME_ENV_VAR", "true")
}

func TestPurgeFuncStandalone(t *testing.T) {
	unsetForTest(t, "ACCELERATE_SOME_ENV_VAR")

	wrapped := PurgeFunc(DefaultPrefix, func() error {
		require.NoError(t, setDummyVar())
		_, ok := lookup("ACCELERATE_SOME_ENV_VAR")
		assert.True(t, ok)
		return nil
	})
	require.NoError(t, wrapped())

	_, ok := lookup("ACCELERATE_SOME_ENV_VAR")
	assert.False(t, ok)
}

func TestPurgeRestoresPreviousValues(t *testing.T) {
	t.Setenv("ACCELERATE_SOME_ENV_VAR", "1")
	t.Setenv("ACCELERATE_ANOTHER_ENV_VAR", "2")

	dummy := PurgeFunc(DefaultPrefix, func() error {
		return os.Setenv("ACCELERATE_SOME_ENV_VAR", "456")
	})
	require.NoError(t, dummy())

	assert.Equal(t, "1", os.Getenv("ACCELERATE_SOME_ENV_VAR"))
	assert.Equal(t, "2", os.Getenv("ACCELERATE_ANOTHER_ENV_VAR"))
}

func TestPurgeLeavesOtherPrefixesAlone(t *testing.T) {
	env := NewMapEnv([]string{"ACCELERATE_KEEP=1", "OTHER=a"})
	s := New(env)

	err := s.WithPurge(DefaultPrefix, func() error {
		_ = env.Setenv("OTHER", "b")
		_ = env.Setenv("UNRELATED", "c")
		_ = env.Setenv("ACCELERATE_NEW", "x")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"ACCELERATE_KEEP": "1",
		"OTHER":           "b",
		"UNRELATED":       "c",
	}, env.Map())
}

func TestPurgeDoesNotResurrectDeletedVars(t *testing.T) {
	env := NewMapEnv([]string{"ACCELERATE_GONE=1"})
	s := New(env)

	require.NoError(t, s.WithPurge(DefaultPrefix, func() error {
		return env.Unsetenv("ACCELERATE_GONE")
	}))
	_, ok := env.LookupEnv("ACCELERATE_GONE")
	assert.False(t, ok)
}

func TestPurgeOnErrorAndPanic(t *testing.T) {
	env := NewMapEnv(nil)
	s := New(env)
	boom := errors.New("boom")

	err := s.WithPurge("X_", func() error {
		_ = env.Setenv("X_A", "1")
		return boom
	})
	assert.Same(t, boom, err)
	assert.Empty(t, env.Map())

	assert.Panics(t, func() {
		_ = s.WithPurge("X_", func() error {
			_ = env.Setenv("X_B", "1")
			panic("boom")
		})
	})
	assert.Empty(t, env.Map())
}

func TestPurgeNested(t *testing.T) {
	env := NewMapEnv(nil)
	s := New(env)

	err := s.WithPurge("X_", func() error {
		_ = env.Setenv("X_OUTER", "1")
		err := s.WithPurge("X_", func() error {
			_ = env.Setenv("X_OUTER", "2")
			_ = env.Setenv("X_INNER", "1")
			return nil
		})
		assert.Equal(t, map[string]string{"X_OUTER": "1"}, env.Map())
		return err
	})
	require.NoError(t, err)
	assert.Empty(t, env.Map())
}

func TestPurgeEmptyPrefix(t *testing.T) {
	_, err := New(NewMapEnv(nil)).Purge("")
	assert.ErrorIs(t, err, ErrEmptyPrefix)

	called := false
	err = WithPurge("", func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrEmptyPrefix)
	assert.False(t, called)
}
