package profile

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	cfg "envscope/internal/config"
	"envscope/internal/envscope"
	"envscope/internal/store"
)

// ErrNotFound is returned by Get for unknown profile names.
var ErrNotFound = errors.New("profile not found")

// Profile is a named set of variables applied together.
type Profile map[string]string

// Vars converts p to the form envscope.Patch takes.
func (p Profile) Vars() map[string]any {
	out := make(map[string]any, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Catalog maps profile names to profiles.
type Catalog map[string]Profile

func filePath() (string, error) {
	dir, err := cfg.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "profiles.json"), nil
}

// Path returns the profiles.json location.
func Path() (string, error) { return filePath() }

// Load reads profiles.json. A missing file yields an empty catalog.
func Load() (Catalog, error) {
	p, err := filePath()
	if err != nil {
		return nil, err
	}
	c := Catalog{}
	if _, err := store.LoadJSON(p, &c); err != nil {
		return nil, fmt.Errorf("load %s: %w", p, err)
	}
	return normalize(c), nil
}

// Save writes the catalog to profiles.json.
func Save(c Catalog) error {
	p, err := filePath()
	if err != nil {
		return err
	}
	return store.SaveJSON(p, normalize(c))
}

// Add merges vars into the profile name, creating it when missing.
// Later assignments win. Reports whether the profile was created.
func Add(name string, vars Profile) (created bool, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, errors.New("empty profile name")
	}
	c, err := Load()
	if err != nil {
		return false, err
	}
	cur, ok := c[name]
	if !ok {
		cur = Profile{}
		created = true
	}
	for k, v := range vars {
		nk, err := envscope.NormalizeKey(k)
		if err != nil {
			return false, err
		}
		cur[nk] = v
	}
	c[name] = cur
	if err := Save(c); err != nil {
		return false, err
	}
	return created, nil
}

// Remove deletes profiles by name.
func Remove(names []string) (removed []string, missing []string, err error) {
	c, err := Load()
	if err != nil {
		return nil, nil, err
	}
	for _, n := range store.NormalizeStrings(names) {
		if _, ok := c[n]; ok {
			delete(c, n)
			removed = append(removed, n)
		} else {
			missing = append(missing, n)
		}
	}
	if err := Save(c); err != nil {
		return nil, nil, err
	}
	return removed, missing, nil
}

// Get returns the profile name. For unknown names the error wraps
// ErrNotFound and lists close matches.
func Get(name string) (Profile, error) {
	c, err := Load()
	if err != nil {
		return nil, err
	}
	if p, ok := c[name]; ok {
		return p, nil
	}
	if s := Suggest(name, c.Names()); len(s) > 0 {
		return nil, fmt.Errorf("%w: %q (did you mean %s?)", ErrNotFound, name, strings.Join(s, ", "))
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Names lists profile names, sorted.
func (c Catalog) Names() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Suggest returns up to three names fuzzy-matching name, best first.
func Suggest(name string, names []string) []string {
	matches := fuzzy.Find(name, names)
	out := make([]string, 0, 3)
	for _, m := range matches {
		if len(out) == cap(out) {
			break
		}
		out = append(out, m.Str)
	}
	return out
}

func normalize(in Catalog) Catalog {
	out := Catalog{}
	for name, p := range in {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		np := Profile{}
		for k, v := range p {
			nk, err := envscope.NormalizeKey(k)
			if err != nil {
				// hand-edited file; drop what cannot be applied
				continue
			}
			np[nk] = v
		}
		out[name] = np
	}
	return out
}
