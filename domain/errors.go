package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by [Collection.FindOne] when no document matches
// the given filter. Zero matched or deleted counts are not errors.
var ErrNotFound = errors.New("document not found")

// ErrTargetNil is returned when the passed target, which should be a
// pointer, is passed as a nil value.
var ErrTargetNil = errors.New("target interface is nil")

// ErrFilterKey represents a filter key outside the supported grammar
// (top-level equality or "<arrayField>._id" membership).
type ErrFilterKey struct {
	Key string
}

func (e ErrFilterKey) Error() string {
	return fmt.Sprintf("unsupported filter key %q", e.Key)
}

// ErrProjectionField is returned when a projection tries to include a
// field. Only exclusion projections are supported.
type ErrProjectionField struct {
	Field string
}

func (e ErrProjectionField) Error() string {
	return fmt.Sprintf("projection can only exclude fields, got %q with a non-zero value", e.Field)
}

// ErrCannotCompare is returned by [Comparer.Compare] when two values
// cannot be compared.
type ErrCannotCompare struct {
	A any
	B any
}

func (e ErrCannotCompare) Error() string {
	return fmt.Sprintf("cannot compare %T with %T", e.A, e.B)
}

// ErrDocumentType is returned when a value cannot be converted into a
// [Document].
type ErrDocumentType struct {
	Value any
}

func (e ErrDocumentType) Error() string {
	return fmt.Sprintf("expected map or struct, got %T", e.Value)
}

// ErrPositionalTarget is returned when an update uses the positional
// "<arrayField>.$" form without a matching "<arrayField>._id" filter key,
// or when the addressed array element cannot be found.
type ErrPositionalTarget struct {
	Field string
}

func (e ErrPositionalTarget) Error() string {
	return fmt.Sprintf("positional update on %q has no matching array element", e.Field)
}
