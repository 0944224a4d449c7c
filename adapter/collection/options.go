package collection

import "anonboard/domain"

// WithIDGenerator sets the identifier generator used on insertion.
func WithIDGenerator(g domain.IDGenerator) Option {
	return func(c *Collection) {
		c.idGen = g
	}
}

// WithDocumentFactory sets the factory converting caller values into
// documents.
func WithDocumentFactory(f domain.DocumentFactory) Option {
	return func(c *Collection) {
		c.docFac = f
	}
}

// WithMatcher sets the query matcher.
func WithMatcher(m domain.Matcher) Option {
	return func(c *Collection) {
		c.mtchr = m
	}
}

// WithModifier sets the update modifier.
func WithModifier(m domain.Modifier) Option {
	return func(c *Collection) {
		c.mod = m
	}
}

// WithProjector sets the projector applied to read results.
func WithProjector(p domain.Projector) Option {
	return func(c *Collection) {
		c.proj = p
	}
}

// WithDecoder sets the decoder used by FindOne and cursor Scan.
func WithDecoder(d domain.Decoder) Option {
	return func(c *Collection) {
		c.dec = d
	}
}

// WithComparer sets the comparer used for equality and sorting.
func WithComparer(cmp domain.Comparer) Option {
	return func(c *Collection) {
		c.cmpr = cmp
	}
}

// Option configures collection behavior through the functional options
// pattern.
type Option func(*Collection)
