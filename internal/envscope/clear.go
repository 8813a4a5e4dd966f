package envscope

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Clear unsets every variable and returns a Restore that brings the full
// previous set back. Variables added while cleared are removed on restore.
func (s *Scope) Clear() (Restore, error) {
	snap := CaptureAll(s.env)
	var errs *multierror.Error
	for _, k := range snap.Keys() {
		if err := s.env.Unsetenv(k); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("unset %s: %w", k, err))
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		if rerr := s.reset(snap); rerr != nil {
			logger.Error("restore after failed clear", "err", rerr)
		}
		return nil, fmt.Errorf("clear environment: %w", err)
	}
	logger.Debug("environment cleared", "count", snap.Len())
	return once(func() error {
		err := s.reset(snap)
		logger.Debug("environment clear restored", "count", snap.Len())
		return err
	}), nil
}

// WithClear runs fn with an empty environment and restores it afterwards.
func (s *Scope) WithClear(fn func() error) error {
	restore, err := s.Clear()
	if err != nil {
		return err
	}
	return run("clear", restore, fn)
}

// reset makes the environment equal to snap exactly.
func (s *Scope) reset(snap Snapshot) error {
	var errs *multierror.Error
	for _, kv := range s.env.Environ() {
		k, _, ok := splitPair(kv)
		if !ok {
			continue
		}
		if _, known := snap.Lookup(k); known {
			continue
		}
		if err := s.env.Unsetenv(k); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("unset %s: %w", k, err))
		}
	}
	if err := snap.Restore(s.env); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs.ErrorOrNil()
}
