package envtest

import "testing"

// TestFunc is the body of a test or subtest.
type TestFunc func(t *testing.T)

// Decorator wraps a TestFunc with extra behavior.
type Decorator func(TestFunc) TestFunc

// Chain composes decorators; the first one is the outermost.
func Chain(ds ...Decorator) Decorator {
	return func(fn TestFunc) TestFunc {
		for i := len(ds) - 1; i >= 0; i-- {
			fn = ds[i](fn)
		}
		return fn
	}
}

// Run runs fn as a subtest of t, wrapped by ds.
func Run(t *testing.T, name string, fn TestFunc, ds ...Decorator) bool {
	t.Helper()
	return t.Run(name, Chain(ds...)(fn))
}

// WithPatch applies vars for the duration of the test.
func WithPatch(vars map[string]any) Decorator {
	return func(next TestFunc) TestFunc {
		return func(t *testing.T) {
			Patch(t, vars)
			next(t)
		}
	}
}

// WithClear runs the test in an empty environment.
func WithClear() Decorator {
	return func(next TestFunc) TestFunc {
		return func(t *testing.T) {
			Clear(t)
			next(t)
		}
	}
}

// WithPurge reverts prefix variables the test added or changed.
// The revert runs from t.Cleanup, so it also happens when a decorator
// applied after it skips the test.
func WithPurge(prefix string) Decorator {
	return func(next TestFunc) TestFunc {
		return func(t *testing.T) {
			Purge(t, prefix)
			next(t)
		}
	}
}

// SkipIf skips the test when cond holds.
func SkipIf(cond bool, reason string) Decorator {
	return func(next TestFunc) TestFunc {
		return func(t *testing.T) {
			if cond {
				t.Skip(reason)
			}
			next(t)
		}
	}
}

// SkipUnless skips the test unless cond holds.
func SkipUnless(cond bool, reason string) Decorator {
	return SkipIf(!cond, reason)
}
