// Package anonboard provides an embedded, in-memory document store backing
// an anonymous message board.
//
// The store emulates the small slice of a document database the board
// needs: named collections with insert, filtered find (with sort, limit
// and field-exclusion projection), single-document update with positional
// nested-array targeting, and single-document delete. Nothing is persisted;
// collections live for the lifetime of the process.
//
// The basic usage starts with creating a [Store] by calling [NewStore],
// then obtaining collections by name:
//
//	db := anonboard.NewStore()
//	threads := db.Collection("threads")
//	id, err := threads.InsertOne(ctx, anonboard.M{"board": "general", "text": "hello"})
package anonboard

import (
	"anonboard/adapter/collection"
	"anonboard/adapter/data"
	"anonboard/adapter/store"
	"anonboard/domain"
)

// ErrNotFound is returned by [Collection.FindOne] when no document matches
// the given filter.
var ErrNotFound = domain.ErrNotFound

// M is a schema-less document, an open-ended mapping from field name to
// value.
type M = data.M

// Document represents a single schema-less record.
type Document = domain.Document

// Collection is the facade of one named document table.
type Collection = domain.Collection

// Cursor is a deferred, chainable read plan realized on demand.
type Cursor = domain.Cursor

// Store hands out named collections.
type Store = domain.Store

// Sort is an ordered list of sort criteria.
type Sort = domain.Sort

// SortField is a single sort criterion; a negative Order sorts descending.
type SortField = domain.SortField

// Projection is a field-exclusion rule applied to query results.
type Projection = domain.Projection

// WithProjection attaches a field-exclusion projection to a Find call.
func WithProjection(p Projection) domain.FindOption {
	return domain.WithFindProjection(p)
}

// NewStore creates a new in-memory store. Options are forwarded to every
// collection the store creates.
func NewStore(options ...collection.Option) Store {
	return store.NewStore(options...)
}
