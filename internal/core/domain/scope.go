package domain

import "strings"

// ScreenScope restricts content lookups to a set of screen locations.
// A location matches when it equals one of Locations or starts with one of
// Prefixes. The zero value is unscoped and matches every location.
type ScreenScope struct {
	Locations []string
	Prefixes  []string
}

// ScopeEquals returns a scope matching exactly one screen location.
func ScopeEquals(location string) ScreenScope {
	return ScreenScope{Locations: []string{location}}
}

// ScopePrefix returns a scope matching every location starting with prefix.
func ScopePrefix(prefix string) ScreenScope {
	return ScreenScope{Prefixes: []string{prefix}}
}

// Or returns a scope matching locations accepted by either scope.
func (s ScreenScope) Or(other ScreenScope) ScreenScope {
	return ScreenScope{
		Locations: append(append([]string{}, s.Locations...), other.Locations...),
		Prefixes:  append(append([]string{}, s.Prefixes...), other.Prefixes...),
	}
}

// IsZero reports whether the scope is unscoped.
func (s ScreenScope) IsZero() bool {
	return len(s.Locations) == 0 && len(s.Prefixes) == 0
}

// Matches reports whether location falls inside the scope.
func (s ScreenScope) Matches(location string) bool {
	if s.IsZero() {
		return true
	}

	for _, loc := range s.Locations {
		if loc == location {
			return true
		}
	}

	for _, prefix := range s.Prefixes {
		if strings.HasPrefix(location, prefix) {
			return true
		}
	}

	return false
}

func (s ScreenScope) String() string {
	parts := make([]string, 0, len(s.Locations)+len(s.Prefixes))

	for _, loc := range s.Locations {
		parts = append(parts, "="+loc)
	}

	for _, prefix := range s.Prefixes {
		parts = append(parts, prefix+"*")
	}

	if len(parts) == 0 {
		return "*"
	}

	return strings.Join(parts, "|")
}

// CandidateQuery describes a coarse storage read for dropdown options.
// Implementations may return more rows than strictly match; callers apply
// the exact naming-convention predicates.
type CandidateQuery struct {
	KeyPrefix      string
	Scope          ScreenScope
	ComponentTypes []string
}
