package matcher

import "anonboard/domain"

// WithComparer sets the comparer implementation for value comparisons
// during matching.
func WithComparer(c domain.Comparer) Option {
	return func(m *Matcher) {
		m.comparer = c
	}
}

// Option configures matcher behavior through the functional options pattern.
type Option func(*Matcher)
