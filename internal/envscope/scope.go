package envscope

import (
	clog "github.com/charmbracelet/log"

	"envscope/internal/system"
)

var logger = system.Logger

// SetLogger replaces the logger used for scope bookkeeping. A nil logger
// restores the default.
func SetLogger(l *clog.Logger) {
	if l == nil {
		l = system.Logger
	}
	logger = l
}

// Restore ends a scope. Calling it more than once is a no-op.
type Restore func() error

func once(fn func() error) Restore {
	done := false
	return func() error {
		if done {
			return nil
		}
		done = true
		return fn()
	}
}

// Scope opens environment scopes on one Env.
type Scope struct {
	env Env
}

// New returns a Scope operating on env.
func New(env Env) *Scope {
	return &Scope{env: env}
}

// Env returns the environment the scope operates on.
func (s *Scope) Env() Env { return s.env }

// run calls fn and then restore on every exit path. fn's error wins over
// a restore error; a restore error after a panic or Goexit is only logged
// since nobody can receive it.
func run(kind string, restore Restore, fn func() error) (err error) {
	returned := false
	defer func() {
		rerr := restore()
		if rerr == nil {
			return
		}
		if !returned || err != nil {
			logger.Error("restore failed", "scope", kind, "err", rerr)
			return
		}
		err = rerr
	}()
	err = fn()
	returned = true
	return err
}

var process = New(OS())

// Patch applies vars to the process environment. See Scope.Patch.
func Patch(vars map[string]any) (Restore, error) { return process.Patch(vars) }

// WithPatch runs fn with vars applied to the process environment.
func WithPatch(vars map[string]any, fn func() error) error { return process.WithPatch(vars, fn) }

// Clear empties the process environment. See Scope.Clear.
func Clear() (Restore, error) { return process.Clear() }

// WithClear runs fn with an empty process environment.
func WithClear(fn func() error) error { return process.WithClear(fn) }

// Purge starts tracking prefix in the process environment. See Scope.Purge.
func Purge(prefix string) (Restore, error) { return process.Purge(prefix) }

// WithPurge runs fn and then reverts prefix variables it added or changed.
func WithPurge(prefix string, fn func() error) error { return process.WithPurge(prefix, fn) }

// PurgeFunc wraps fn so every call purges prefix afterwards.
func PurgeFunc(prefix string, fn func() error) func() error {
	return process.PurgeFunc(prefix, fn)
}
