package envscope

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Value is the recorded state of one variable.
type Value struct {
	Value   string
	Present bool
}

// Snapshot records the state of a set of variables at one point in time.
// It is never modified after capture.
type Snapshot struct {
	vars map[string]Value
}

// Capture records the current state of keys, absent ones included.
func Capture(env Env, keys ...string) Snapshot {
	s := Snapshot{vars: make(map[string]Value, len(keys))}
	for _, k := range keys {
		v, ok := env.LookupEnv(k)
		s.vars[k] = Value{Value: v, Present: ok}
	}
	return s
}

// CaptureAll records every variable currently set.
func CaptureAll(env Env) Snapshot {
	return CapturePrefix(env, "")
}

// CapturePrefix records every variable currently set whose name starts
// with prefix.
func CapturePrefix(env Env, prefix string) Snapshot {
	environ := env.Environ()
	s := Snapshot{vars: make(map[string]Value, len(environ))}
	for _, kv := range environ {
		k, v, ok := splitPair(kv)
		if !ok || !strings.HasPrefix(k, prefix) {
			continue
		}
		s.vars[k] = Value{Value: v, Present: true}
	}
	return s
}

// Len reports how many variables the snapshot covers.
func (s Snapshot) Len() int { return len(s.vars) }

// Lookup returns the recorded state of key and whether key is covered.
func (s Snapshot) Lookup(key string) (Value, bool) {
	v, ok := s.vars[key]
	return v, ok
}

// Keys returns the covered names, sorted.
func (s Snapshot) Keys() []string {
	keys := make([]string, 0, len(s.vars))
	for k := range s.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns the present variables as a name to value map.
func (s Snapshot) Map() map[string]string {
	out := make(map[string]string, len(s.vars))
	for k, v := range s.vars {
		if v.Present {
			out[k] = v.Value
		}
	}
	return out
}

// Restore writes the recorded state back into env: present variables get
// their value, absent ones are unset. Every key is attempted; failures are
// aggregated.
func (s Snapshot) Restore(env Env) error {
	var errs *multierror.Error
	for _, k := range s.Keys() {
		v := s.vars[k]
		if !v.Present {
			if _, ok := env.LookupEnv(k); !ok {
				continue
			}
			if err := env.Unsetenv(k); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("unset %s: %w", k, err))
			}
			continue
		}
		if cur, ok := env.LookupEnv(k); ok && cur == v.Value {
			continue
		}
		if err := env.Setenv(k, v.Value); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("set %s: %w", k, err))
		}
	}
	return errs.ErrorOrNil()
}
