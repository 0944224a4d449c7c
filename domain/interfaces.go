// Package domain contains the interfaces and option types shared by the
// anonboard store adapters.
//
// This package defines the contracts implemented by the adapters: the
// schema-less document model, the restricted query matcher, the update
// modifier, the projection rules, the deferred cursor and the collection
// facade the rest of the application depends on.
package domain

import (
	"context"
	"iter"
	"time"
)

// Document represents a schema-less record held by a collection. Field
// values are strings, numbers, booleans, timestamps, nested documents or
// ordered lists of values. Document is read by one goroutine at a time and
// doesn't need to be concurrency safe.
type Document interface {
	// ID returns the document ID, if any, or nil.
	ID() any
	// Get returns the value under the given key, or nil if unset.
	Get(string) any
	// Set sets the value under the given key.
	Set(string, any)
	// Unset unsets the value under the given key.
	Unset(string)
	// Has reports whether a value is set under the given key.
	Has(string) bool
	// Len returns the number of set fields in the document.
	Len() int
	// Iter returns an unordered sequence of key-value pairs in the
	// document.
	Iter() iter.Seq2[string, any]
	// Keys returns an unordered sequence of keys in the document.
	Keys() iter.Seq[string]
}

// IDGenerator produces unique, opaque identifiers for new documents.
type IDGenerator interface {
	// NewID returns a 24-character hexadecimal identifier.
	NewID() string
}

// TimeGetter provides the current time for timestamping operations.
type TimeGetter interface {
	// GetTime returns the current time.
	GetTime() time.Time
}

// Comparer provides ordering and comparison operations for primitive
// values (strings, numbers, booleans, timestamps and nil).
type Comparer interface {
	// Compare returns -1, 0, or 1 based on the comparison of two values.
	Compare(any, any) (int, error)
	// Comparable returns true if two values can be compared.
	Comparable(any, any) bool
}

// Decoder converts documents into user-defined types.
type Decoder interface {
	// Decode converts from one data representation to another.
	Decode(any, any) error
}

// Matcher evaluates the restricted filter grammar against a document. The
// grammar covers top-level field equality and nested-array membership by
// element identifier ("<arrayField>._id").
type Matcher interface {
	// Match returns true if the document matches the filter.
	Match(Document, Document) (bool, error)
}

// Modifier applies the restricted update grammar ($set, $push) to a
// document. The filter is needed to resolve positional "<arrayField>.$"
// targets against the sibling "<arrayField>._id" filter key.
type Modifier interface {
	// Modify applies the update to the document in place.
	Modify(doc Document, update Document, filter Document) error
}

// Projector strips excluded fields from query results. Projections never
// add or rename fields, and never mutate the stored documents.
type Projector interface {
	// Project returns shallow copies of the documents with the excluded
	// fields removed.
	Project([]Document, Projection) ([]Document, error)
}

// Cursor is a deferred, chainable read plan. Stages accumulate without
// executing; the plan runs once when the cursor is realized.
type Cursor interface {
	// Sort reorders the result by the given criteria. Ties keep their
	// insertion order.
	Sort(Sort) Cursor
	// Limit truncates the result to at most n documents.
	Limit(n int64) Cursor
	// ToArray realizes the plan and returns the materialized result.
	ToArray(context.Context) ([]Document, error)
	// Scan realizes the plan and decodes the result into the target
	// slice.
	Scan(ctx context.Context, target any) error
}

// Collection is the public contract of one named document table. All
// operations run to completion without interleaving; concurrent callers
// serialize between operations, never within one.
type Collection interface {
	// InsertOne appends a copy of the document to the table, assigning
	// an identifier if it lacks one, and returns the identifier.
	InsertOne(ctx context.Context, doc any) (string, error)
	// Find returns a lazy cursor over the documents matching the filter,
	// in insertion order.
	Find(ctx context.Context, filter any, options ...FindOption) (Cursor, error)
	// FindOne decodes the first matching document into target, or
	// returns ErrNotFound.
	FindOne(ctx context.Context, filter any, target any, options ...FindOption) error
	// UpdateOne applies the update to the first matching document and
	// returns the matched count (0 or 1).
	UpdateOne(ctx context.Context, filter any, update any) (int64, error)
	// DeleteOne removes the first matching document and returns the
	// deleted count (0 or 1).
	DeleteOne(ctx context.Context, filter any) (int64, error)
}

// Store hands out named collections, creating each lazily on first access.
// Collections live for the lifetime of the store.
type Store interface {
	// Collection returns the collection with the given name.
	Collection(name string) Collection
}
