// Package collection contains the default [domain.Collection]
// implementation: an in-memory, insertion-ordered document table behind
// the facade the rest of the application depends on.
package collection

import (
	"context"
	"fmt"
	"slices"

	"anonboard/adapter/comparer"
	"anonboard/adapter/cursor"
	"anonboard/adapter/data"
	"anonboard/adapter/decoder"
	"anonboard/adapter/idgenerator"
	"anonboard/adapter/matcher"
	"anonboard/adapter/modifier"
	"anonboard/adapter/projector"
	"anonboard/domain"
	"anonboard/pkg/ctxsync"
)

// Collection implements domain.Collection. Every operation acquires the
// executor for its full duration, so operations serialize and never
// interleave mid-operation.
type Collection struct {
	executor *ctxsync.Mutex
	docs     []domain.Document

	idGen  domain.IDGenerator
	docFac domain.DocumentFactory
	mtchr  domain.Matcher
	mod    domain.Modifier
	proj   domain.Projector
	dec    domain.Decoder
	cmpr   domain.Comparer
}

// NewCollection returns a new, empty implementation of domain.Collection.
func NewCollection(options ...Option) domain.Collection {
	c := &Collection{
		executor: ctxsync.NewMutex(),
		idGen:    idgenerator.NewIDGenerator(),
		docFac:   data.NewDocument,
		cmpr:     comparer.NewComparer(),
		mod:      modifier.NewModifier(),
		dec:      decoder.NewDecoder(),
	}
	for _, option := range options {
		option(c)
	}
	if c.mtchr == nil {
		c.mtchr = matcher.NewMatcher(matcher.WithComparer(c.cmpr))
	}
	if c.proj == nil {
		c.proj = projector.NewProjector(c.docFac)
	}
	return c
}

// InsertOne implements domain.Collection. The document is shallow-copied
// into the table; an identifier is assigned when absent. InsertOne always
// succeeds for well-formed documents.
func (c *Collection) InsertOne(ctx context.Context, doc any) (string, error) {
	if err := c.executor.Acquire(ctx); err != nil {
		return "", err
	}
	defer c.executor.Release()

	prepared, err := c.docFac(doc)
	if err != nil {
		return "", err
	}
	if !prepared.Has("_id") {
		prepared.Set("_id", c.idGen.NewID())
	}
	c.docs = append(c.docs, prepared)

	if id, ok := prepared.ID().(string); ok {
		return id, nil
	}
	return fmt.Sprint(prepared.ID()), nil
}

// Find implements domain.Collection. The cursor is lazy: only the table
// snapshot is taken here, filtering and the other stages run when the
// cursor is realized. Realization reacquires this executor, keeping scans
// serialized with in-place updates of the same documents.
func (c *Collection) Find(ctx context.Context, filter any, options ...domain.FindOption) (domain.Cursor, error) {
	if err := c.executor.Acquire(ctx); err != nil {
		return nil, err
	}
	defer c.executor.Release()

	filterDoc, err := c.docFac(filter)
	if err != nil {
		return nil, err
	}

	var opts domain.FindOptions
	for _, option := range options {
		option(&opts)
	}

	return cursor.NewCursor(
		slices.Clone(c.docs),
		filterDoc,
		cursor.WithExecutor(c.executor),
		cursor.WithProjection(opts.Projection),
		cursor.WithMatcher(c.mtchr),
		cursor.WithComparer(c.cmpr),
		cursor.WithProjector(c.proj),
		cursor.WithDecoder(c.dec),
	), nil
}

// FindOne implements domain.Collection. It scans the table in insertion
// order and decodes the first match into target, with the projection
// applied. Returns [domain.ErrNotFound] when nothing matches.
func (c *Collection) FindOne(ctx context.Context, filter any, target any, options ...domain.FindOption) error {
	if err := c.executor.Acquire(ctx); err != nil {
		return err
	}
	defer c.executor.Release()

	if target == nil {
		return domain.ErrTargetNil
	}

	filterDoc, err := c.docFac(filter)
	if err != nil {
		return err
	}

	var opts domain.FindOptions
	for _, option := range options {
		option(&opts)
	}

	found, err := c.firstMatch(filterDoc)
	if err != nil {
		return err
	}
	if found == nil {
		return domain.ErrNotFound
	}

	projected, err := c.proj.Project([]domain.Document{found}, opts.Projection)
	if err != nil {
		return err
	}
	return c.dec.Decode(projected[0], target)
}

// UpdateOne implements domain.Collection. The first matching document is
// mutated in place; a zero matched count is not an error.
func (c *Collection) UpdateOne(ctx context.Context, filter any, update any) (int64, error) {
	if err := c.executor.Acquire(ctx); err != nil {
		return 0, err
	}
	defer c.executor.Release()

	filterDoc, err := c.docFac(filter)
	if err != nil {
		return 0, err
	}
	updateDoc, err := c.docFac(update)
	if err != nil {
		return 0, err
	}

	found, err := c.firstMatch(filterDoc)
	if err != nil {
		return 0, err
	}
	if found == nil {
		return 0, nil
	}

	if err := c.mod.Modify(found, updateDoc, filterDoc); err != nil {
		return 0, err
	}
	return 1, nil
}

// DeleteOne implements domain.Collection. The first matching document is
// removed from the table; the rest keep their insertion order.
func (c *Collection) DeleteOne(ctx context.Context, filter any) (int64, error) {
	if err := c.executor.Acquire(ctx); err != nil {
		return 0, err
	}
	defer c.executor.Release()

	filterDoc, err := c.docFac(filter)
	if err != nil {
		return 0, err
	}

	for n, doc := range c.docs {
		matches, err := c.mtchr.Match(doc, filterDoc)
		if err != nil {
			return 0, err
		}
		if matches {
			c.docs = slices.Delete(c.docs, n, n+1)
			return 1, nil
		}
	}
	return 0, nil
}

func (c *Collection) firstMatch(filter domain.Document) (domain.Document, error) {
	for _, doc := range c.docs {
		matches, err := c.mtchr.Match(doc, filter)
		if err != nil {
			return nil, err
		}
		if matches {
			return doc, nil
		}
	}
	return nil, nil
}
