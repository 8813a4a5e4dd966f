package envscope

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var (
	// ErrInvalidKey is returned for empty names and names containing '=' or NUL.
	ErrInvalidKey = errors.New("invalid environment variable name")
	// ErrDuplicateKey is returned when two keys of one patch normalize to the same name.
	ErrDuplicateKey = errors.New("duplicate environment variable name")
	// ErrUnsupportedValue is returned for values that have no string form.
	ErrUnsupportedValue = errors.New("unsupported environment variable value")
	// ErrEmptyPrefix is returned by Purge when no prefix is given.
	ErrEmptyPrefix = errors.New("empty purge prefix")
)

// NormalizeKey trims key and upper-cases it, so "aa" and "AA" name the
// same variable.
func NormalizeKey(key string) (string, error) {
	k := strings.ToUpper(strings.TrimSpace(key))
	if k == "" || strings.ContainsAny(k, "=\x00") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return k, nil
}

// Stringify renders v the way it is stored in the environment.
// nil becomes the empty string. Named types over a primitive kind, such as
// `type mode string`, render like their underlying value.
func Stringify(v any) (string, error) {
	s, err := cast.ToStringE(v)
	if err == nil {
		return s, nil
	}
	if s, ok := stringifyKind(reflect.ValueOf(v)); ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

// stringifyKind handles the primitive kinds cast only accepts unnamed.
func stringifyKind(rv reflect.Value) (string, bool) {
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, rv.Type().Bits()), true
	case reflect.Complex64, reflect.Complex128:
		return strconv.FormatComplex(rv.Complex(), 'f', -1, rv.Type().Bits()), true
	}
	return "", false
}

type assignment struct {
	key   string
	value string
}

// normalize validates vars and returns the assignments sorted by key.
func normalize(vars map[string]any) ([]assignment, error) {
	seen := make(map[string]string, len(vars))
	out := make([]assignment, 0, len(vars))
	for raw, v := range vars {
		k, err := NormalizeKey(raw)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[k]; dup {
			// report in a stable order regardless of map iteration
			a, b := prev, raw
			if b < a {
				a, b = b, a
			}
			return nil, fmt.Errorf("%w: %q and %q both map to %s", ErrDuplicateKey, a, b, k)
		}
		seen[k] = raw
		s, err := Stringify(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		out = append(out, assignment{key: k, value: s})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out, nil
}
