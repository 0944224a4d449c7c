// Package projector contains the default [domain.Projector] implementation.
//
// Only exclusion projections are supported: every projected field is
// stripped from the result. Fields are never added or renamed, and the
// stored documents are never mutated; each result is a shallow copy.
package projector

import (
	"anonboard/domain"
)

// Projector implements [domain.Projector].
type Projector struct {
	docFac domain.DocumentFactory
}

// NewProjector returns a new implementation of [domain.Projector].
func NewProjector(docFac domain.DocumentFactory) domain.Projector {
	return &Projector{docFac: docFac}
}

// Project implements [domain.Projector]. An empty projection returns the
// documents untouched.
func (p *Projector) Project(docs []domain.Document, projection domain.Projection) ([]domain.Document, error) {
	if len(projection) == 0 {
		return docs, nil
	}

	for field, flag := range projection {
		if flag != 0 {
			return nil, domain.ErrProjectionField{Field: field}
		}
	}

	res := make([]domain.Document, len(docs))
	for n, doc := range docs {
		projected, err := p.docFac(doc)
		if err != nil {
			return nil, err
		}
		for field := range projection {
			projected.Unset(field)
		}
		res[n] = projected
	}
	return res, nil
}
