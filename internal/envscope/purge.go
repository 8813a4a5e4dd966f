package envscope

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// DefaultPrefix is the prefix purged when none is configured.
const DefaultPrefix = "ACCELERATE_"

// Purge records every variable starting with prefix and returns a Restore
// that reverts the ones added or changed since. On restore, each matching
// variable still set is either reset to its recorded value or, when it was
// not set at the start, unset. Matching variables removed in between stay
// removed.
func (s *Scope) Purge(prefix string) (Restore, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	snap := CapturePrefix(s.env, prefix)
	logger.Debug("purge armed", "prefix", prefix, "tracked", snap.Len())
	return once(func() error { return s.purge(prefix, snap) }), nil
}

func (s *Scope) purge(prefix string, snap Snapshot) error {
	var (
		errs     *multierror.Error
		reverted []string
	)
	for _, kv := range s.env.Environ() {
		k, cur, ok := splitPair(kv)
		if !ok || !strings.HasPrefix(k, prefix) {
			continue
		}
		prev, existed := snap.Lookup(k)
		switch {
		case !existed:
			if err := s.env.Unsetenv(k); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("unset %s: %w", k, err))
				continue
			}
		case cur != prev.Value:
			if err := s.env.Setenv(k, prev.Value); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("set %s: %w", k, err))
				continue
			}
		default:
			continue
		}
		reverted = append(reverted, k)
	}
	if len(reverted) > 0 {
		logger.Debug("purged environment", "prefix", prefix, "keys", reverted)
	}
	return errs.ErrorOrNil()
}

// WithPurge runs fn and reverts prefix variables it added or changed.
func (s *Scope) WithPurge(prefix string, fn func() error) error {
	restore, err := s.Purge(prefix)
	if err != nil {
		return err
	}
	return run("purge", restore, fn)
}

// PurgeFunc decorates fn so that each call is wrapped in WithPurge.
func (s *Scope) PurgeFunc(prefix string, fn func() error) func() error {
	return func() error {
		return s.WithPurge(prefix, fn)
	}
}
