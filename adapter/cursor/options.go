package cursor

import (
	"anonboard/domain"
	"anonboard/pkg/ctxsync"
)

// WithExecutor shares the candidate owner's executor with the cursor.
// Realization then serializes with the owner's other operations, so a scan
// never overlaps an in-place update of the same documents.
func WithExecutor(m *ctxsync.Mutex) Option {
	return func(c *Cursor) {
		c.executor = m
	}
}

// WithProjection attaches a field-exclusion projection, applied at
// realization time.
func WithProjection(p domain.Projection) Option {
	return func(c *Cursor) {
		c.projection = p
	}
}

// WithMatcher sets the matcher used by the filter stage.
func WithMatcher(m domain.Matcher) Option {
	return func(c *Cursor) {
		c.mtchr = m
	}
}

// WithComparer sets the comparer used by the sort stage.
func WithComparer(cmp domain.Comparer) Option {
	return func(c *Cursor) {
		c.cmpr = cmp
	}
}

// WithProjector sets the projector used by the projection stage.
func WithProjector(p domain.Projector) Option {
	return func(c *Cursor) {
		c.proj = p
	}
}

// WithDecoder sets the decoder used by Scan.
func WithDecoder(d domain.Decoder) Option {
	return func(c *Cursor) {
		c.dec = d
	}
}

// Option configures cursor behavior through the functional options pattern.
type Option func(*Cursor)
