package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrNoMatch is returned when no app resembles the query.
var ErrNoMatch = errors.New("no matching app")

// maxResolveDistance bounds how far a typo may drift from an app name.
const maxResolveDistance = 3

// Resolve finds the app a user meant by query. It tries, in order, an exact
// id, a case-insensitive name, a unique name prefix, and finally the closest
// name by edit distance.
func Resolve(apps []App, query string) (App, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return App{}, ErrNoMatch
	}
	for _, a := range apps {
		if strings.ToLower(a.ID) == q {
			return a, nil
		}
	}
	for _, a := range apps {
		if strings.ToLower(a.Name) == q {
			return a, nil
		}
	}

	var prefixed []App
	for _, a := range apps {
		if strings.HasPrefix(strings.ToLower(a.Name), q) {
			prefixed = append(prefixed, a)
		}
	}
	if len(prefixed) == 1 {
		return prefixed[0], nil
	}
	if len(prefixed) > 1 {
		names := make([]string, 0, len(prefixed))
		for _, a := range prefixed {
			names = append(names, a.Name)
		}
		return App{}, fmt.Errorf("%q is ambiguous (%s): %w", query, strings.Join(names, ", "), ErrNoMatch)
	}

	best, bestDist := -1, maxResolveDistance+1
	for i, a := range apps {
		d := levenshtein.ComputeDistance(q, strings.ToLower(a.Name))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return App{}, fmt.Errorf("%q: %w", query, ErrNoMatch)
	}
	return apps[best], nil
}
