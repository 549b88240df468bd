package structure

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// LabelSet is the set of step labels attached to one position of a Path.
type LabelSet map[string]struct{}

// NewLabelSet returns a set containing labels.
func NewLabelSet(labels ...string) LabelSet {
	s := make(LabelSet, len(labels))
	for _, l := range labels {
		s[l] = struct{}{}
	}
	return s
}

// Has reports whether label is a member.
func (s LabelSet) Has(label string) bool {
	_, ok := s[label]
	return ok
}

// Sorted returns the members in lexical order.
func (s LabelSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// Items returns the members in lexical order as a generic sequence.
func (s LabelSet) Items() []any {
	sorted := s.Sorted()
	out := make([]any, len(sorted))
	for i, l := range sorted {
		out[i] = l
	}
	return out
}

// Path is the history of a traverser: the objects it visited and the
// labels active at each step. Labels and Objects have the same length.
type Path struct {
	Labels  []LabelSet
	Objects []any
}

// Get returns the objects labeled key, or nil when no position carries it.
// A single match is returned unwrapped.
func (p Path) Get(key string) any {
	var matches []any
	for i, labels := range p.Labels {
		if labels.Has(key) && i < len(p.Objects) {
			matches = append(matches, p.Objects[i])
		}
	}
	switch len(matches) {
	case 0:
		return nil
	case 1:
		return matches[0]
	default:
		return matches
	}
}

// Len returns the number of steps in the path.
func (p Path) Len() int { return len(p.Objects) }

func (p Path) String() string {
	parts := make([]string, len(p.Objects))
	for i, o := range p.Objects {
		parts[i] = fmt.Sprint(o)
	}
	return "path[" + strings.Join(parts, ", ") + "]"
}
