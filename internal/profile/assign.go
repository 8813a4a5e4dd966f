package profile

import (
	"fmt"
	"strings"

	"envscope/internal/envscope"
)

// ParseAssignments parses "KEY=value" arguments. Keys are normalized like
// envscope.NormalizeKey; values may be empty and may contain '='.
func ParseAssignments(args []string) (Profile, error) {
	out := Profile{}
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("expected KEY=value, got %q", a)
		}
		nk, err := envscope.NormalizeKey(k)
		if err != nil {
			return nil, err
		}
		out[nk] = v
	}
	return out, nil
}
