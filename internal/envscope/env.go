package envscope

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Env is the environment table a Scope mutates.
type Env interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
	Unsetenv(key string) error
	// Environ returns "KEY=value" pairs.
	Environ() []string
}

type osEnv struct{}

// OS returns the process environment.
func OS() Env { return osEnv{} }

func (osEnv) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }
func (osEnv) Setenv(key, value string) error      { return os.Setenv(key, value) }
func (osEnv) Unsetenv(key string) error           { return os.Unsetenv(key) }
func (osEnv) Environ() []string                   { return os.Environ() }

// MapEnv is an in-memory Env. The zero value is not usable; call NewMapEnv.
type MapEnv struct {
	vars map[string]string
}

// NewMapEnv builds a MapEnv from "KEY=value" pairs, such as os.Environ().
// Malformed entries are skipped.
func NewMapEnv(environ []string) *MapEnv {
	m := &MapEnv{vars: make(map[string]string, len(environ))}
	for _, kv := range environ {
		if k, v, ok := splitPair(kv); ok {
			m.vars[k] = v
		}
	}
	return m
}

func (m *MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m.vars[key]
	return v, ok
}

func (m *MapEnv) Setenv(key, value string) error {
	if key == "" || strings.ContainsAny(key, "=\x00") {
		return fmt.Errorf("setenv %q: %w", key, ErrInvalidKey)
	}
	m.vars[key] = value
	return nil
}

func (m *MapEnv) Unsetenv(key string) error {
	delete(m.vars, key)
	return nil
}

// Environ returns the pairs sorted by key.
func (m *MapEnv) Environ() []string {
	keys := make([]string, 0, len(m.vars))
	for k := range m.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+m.vars[k])
	}
	return out
}

// Map returns a copy of the table.
func (m *MapEnv) Map() map[string]string {
	out := make(map[string]string, len(m.vars))
	for k, v := range m.vars {
		out[k] = v
	}
	return out
}

// splitPair splits "KEY=value". Windows keeps per-drive entries such as
// "=C:=C:\dir"; those have a leading '=' and are reported as not ok.
func splitPair(kv string) (key, value string, ok bool) {
	i := strings.IndexByte(kv, '=')
	if i <= 0 {
		return "", "", false
	}
	return kv[:i], kv[i+1:], true
}
