// Package cursor contains the default [domain.Cursor] implementation.
//
// A cursor is a deferred plan, not a container. Sort and Limit accumulate
// stages without executing anything; the plan runs once, on the first
// realization, in the order filter, sort, limit, project.
package cursor

import (
	"context"
	"slices"

	"anonboard/adapter/comparer"
	"anonboard/adapter/data"
	"anonboard/adapter/decoder"
	"anonboard/adapter/matcher"
	"anonboard/adapter/projector"
	"anonboard/domain"
	"anonboard/pkg/ctxsync"
)

// Cursor implements domain.Cursor.
type Cursor struct {
	candidates []domain.Document
	filter     domain.Document
	projection domain.Projection
	executor   *ctxsync.Mutex

	sort  domain.Sort
	limit int64

	mtchr domain.Matcher
	cmpr  domain.Comparer
	proj  domain.Projector
	dec   domain.Decoder

	realized []domain.Document
	done     bool
}

// NewCursor returns a new implementation of domain.Cursor over the given
// candidate documents, already in insertion order.
func NewCursor(candidates []domain.Document, filter domain.Document, opts ...Option) domain.Cursor {
	c := &Cursor{
		candidates: candidates,
		filter:     filter,
		cmpr:       comparer.NewComparer(),
		dec:        decoder.NewDecoder(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.mtchr == nil {
		c.mtchr = matcher.NewMatcher(matcher.WithComparer(c.cmpr))
	}
	if c.proj == nil {
		c.proj = projector.NewProjector(data.NewDocument)
	}
	return c
}

// Sort implements domain.Cursor.
func (c *Cursor) Sort(s domain.Sort) domain.Cursor {
	c.sort = s
	return c
}

// Limit implements domain.Cursor.
func (c *Cursor) Limit(n int64) domain.Cursor {
	c.limit = n
	return c
}

// ToArray implements domain.Cursor. The plan runs on the first call; later
// calls return the same materialized sequence. When an executor is
// attached, realization holds it: candidates are live table documents, and
// a concurrent in-place update must not interleave with the scan.
func (c *Cursor) ToArray(ctx context.Context) ([]domain.Document, error) {
	if err := c.acquire(ctx); err != nil {
		return nil, err
	}
	defer c.release()
	return c.realize()
}

// Scan implements domain.Cursor. The decode also runs under the executor:
// realized documents can share nested values with the table.
func (c *Cursor) Scan(ctx context.Context, target any) error {
	if err := c.acquire(ctx); err != nil {
		return err
	}
	defer c.release()

	res, err := c.realize()
	if err != nil {
		return err
	}
	return c.dec.Decode(res, target)
}

func (c *Cursor) acquire(ctx context.Context) error {
	if c.executor == nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		return nil
	}
	return c.executor.Acquire(ctx)
}

func (c *Cursor) release() {
	if c.executor != nil {
		c.executor.Release()
	}
}

func (c *Cursor) realize() ([]domain.Document, error) {
	if c.done {
		return c.realized, nil
	}

	res := make([]domain.Document, 0, len(c.candidates))
	for _, doc := range c.candidates {
		matches, err := c.mtchr.Match(doc, c.filter)
		if err != nil {
			return nil, err
		}
		if !matches {
			continue
		}
		res = append(res, doc)
		// without a sort stage the scan can stop at the limit
		if c.sort == nil && c.limit > 0 && int64(len(res)) == c.limit {
			break
		}
	}

	if c.sort != nil {
		var err error
		if res, err = c.sortDocs(res); err != nil {
			return nil, err
		}
		if c.limit > 0 {
			res = res[:min(c.limit, int64(len(res)))]
		}
	}

	res, err := c.proj.Project(res, c.projection)
	if err != nil {
		return nil, err
	}

	c.realized = res
	c.done = true
	return res, nil
}

func (c *Cursor) sortDocs(docs []domain.Document) ([]domain.Document, error) {
	res := slices.Clone(docs)

	var sortErr error
	// stable sort: ties keep their prior relative order
	slices.SortStableFunc(res, func(a, b domain.Document) int {
		if sortErr != nil {
			return 0
		}
		for _, crit := range c.sort {
			comp, err := c.cmpr.Compare(a.Get(crit.Key), b.Get(crit.Key))
			if err != nil {
				sortErr = err
				return 0
			}
			if crit.Order < 0 {
				comp = -comp
			}
			if comp != 0 {
				return comp
			}
		}
		return 0
	})
	if sortErr != nil {
		return nil, sortErr
	}
	return res, nil
}
