package domain

// WithFindProjection attaches a field-exclusion projection to the cursor.
// It is applied when the cursor is realized.
func WithFindProjection(p Projection) FindOption {
	return func(fo *FindOptions) {
		fo.Projection = p
	}
}

// FindOption configures query behavior through the functional options
// pattern.
type FindOption func(*FindOptions)

// FindOptions contains parameters for customizing query execution.
type FindOptions struct {
	// Projection specifies which fields to exclude from results.
	Projection Projection
}
