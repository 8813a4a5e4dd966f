package envtest

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"envscope/internal/envscope"
)

const dummyVar = "ACCELERATE_SOME_ENV_VAR"

// setDummyVar mimics a library that sets one of its variables and never
// cleans it up.
func setDummyVar(t *testing.T) {
	t.Helper()
	require.NoError(t, os.Setenv(dummyVar, "true"))
}

func absent(key string) bool {
	_, ok := os.LookupEnv(key)
	return !ok
}

func startAbsent(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestPatchHelper(t *testing.T) {
	startAbsent(t, "ENVSCOPE_HELPER")

	t.Run("inner", func(t *testing.T) {
		Patch(t, map[string]any{"envscope_helper": 42})
		assert.Equal(t, "42", os.Getenv("ENVSCOPE_HELPER"))
	})
	assert.True(t, absent("ENVSCOPE_HELPER"))
}

func TestClearHelper(t *testing.T) {
	t.Setenv("ENVSCOPE_HELPER", "kept")
	before := os.Environ()

	t.Run("inner", func(t *testing.T) {
		Clear(t)
		assert.Empty(t, os.Environ())
	})
	assert.ElementsMatch(t, before, os.Environ())
}

func TestPurgeHelper(t *testing.T) {
	startAbsent(t, dummyVar)

	t.Run("sets", func(t *testing.T) {
		Purge(t, envscope.DefaultPrefix)
		setDummyVar(t)
		assert.False(t, absent(dummyVar))
	})
	t.Run("sees nothing", func(t *testing.T) {
		assert.True(t, absent(dummyVar))
	})
}

func TestPurgeHelperRejectsParallel(t *testing.T) {
	t.Run("parallel", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { Purge(t, envscope.DefaultPrefix) })
	})
}

func TestRunWithPurge(t *testing.T) {
	startAbsent(t, dummyVar)

	Run(t, "standalone", func(t *testing.T) {
		setDummyVar(t)
		assert.False(t, absent(dummyVar))
	}, WithPurge(envscope.DefaultPrefix))

	assert.True(t, absent(dummyVar))
}

func TestPurgeComposesWithSkip(t *testing.T) {
	startAbsent(t, dummyVar)

	cases := []struct {
		name string
		deco Decorator
	}{
		{"skip before purge", Chain(SkipIf(true, "always skipped"), WithPurge(envscope.DefaultPrefix))},
		{"skip after purge", Chain(WithPurge(envscope.DefaultPrefix), SkipIf(true, "always skipped"))},
		{"skip unless around purge", Chain(SkipUnless(false, "never true"), WithPurge(envscope.DefaultPrefix), SkipIf(false, "noop"))},
		{"patch and purge then skip", Chain(WithPatch(map[string]any{"accelerate_patched": 1}), WithPurge(envscope.DefaultPrefix), SkipUnless(false, "never true"))},
	}
	for _, tc := range cases {
		var inner *testing.T
		ran := false
		t.Run(tc.name, func(t *testing.T) {
			inner = t
			tc.deco(func(t *testing.T) {
				ran = true
				t.Fatal("skipped test body ran")
			})(t)
		})
		assert.True(t, inner.Skipped(), tc.name)
		assert.False(t, ran, tc.name)
		assert.True(t, absent("ACCELERATE_PATCHED"), tc.name)
	}
}

func TestPurgeRevertsWhenBodySkips(t *testing.T) {
	startAbsent(t, dummyVar)

	var inner *testing.T
	Run(t, "skips late", func(t *testing.T) {
		inner = t
		setDummyVar(t)
		t.Skip("after the mutation")
	}, SkipIf(false, "noop"), WithPurge(envscope.DefaultPrefix))

	assert.True(t, inner.Skipped())
	assert.True(t, absent(dummyVar))
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) Decorator {
		return func(next TestFunc) TestFunc {
			return func(t *testing.T) {
				order = append(order, name)
				next(t)
			}
		}
	}
	Run(t, "order", func(t *testing.T) { order = append(order, "body") }, mark("a"), mark("b"))
	assert.Equal(t, []string{"a", "b", "body"}, order)
}
