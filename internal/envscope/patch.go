package envscope

import "fmt"

// Patch sets every variable in vars and returns a Restore that puts back
// what was there before, unsetting the ones that did not exist.
//
// Keys are upper-cased and values stringified (see NormalizeKey and
// Stringify). Nothing is changed when vars fails validation. If setting a
// variable fails part way, the ones already set are restored before the
// error is returned.
func (s *Scope) Patch(vars map[string]any) (Restore, error) {
	assigns, err := normalize(vars)
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(assigns))
	for i, a := range assigns {
		keys[i] = a.key
	}
	snap := Capture(s.env, keys...)
	for _, a := range assigns {
		if err := s.env.Setenv(a.key, a.value); err != nil {
			if rerr := snap.Restore(s.env); rerr != nil {
				logger.Error("restore after failed patch", "err", rerr)
			}
			return nil, fmt.Errorf("patch %s: %w", a.key, err)
		}
	}
	logger.Debug("environment patched", "keys", keys)
	return once(func() error {
		err := snap.Restore(s.env)
		logger.Debug("environment patch restored", "keys", keys)
		return err
	}), nil
}

// WithPatch runs fn with vars applied and restores the previous state when
// fn returns, panics or exits the goroutine. fn's error is returned as is.
func (s *Scope) WithPatch(vars map[string]any, fn func() error) error {
	restore, err := s.Patch(vars)
	if err != nil {
		return err
	}
	return run("patch", restore, fn)
}
