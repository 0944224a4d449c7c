package domain

// Sort represents an ordered list of criteria which should be used to sort
// query results, applied in sequence.
type Sort = []SortField

// SortField represents a single field and the order which should be used
// to sort it. A positive Order value means ascending order and a negative
// value means descending order.
type SortField struct {
	Key   string
	Order int64
}

// Projection maps field names to exclusion flags. Only exclusion is
// supported: every value must be 0. Excluded fields are stripped from
// query results; stored documents are never touched.
type Projection map[string]int64

// DocumentFactory represents a function that constructs [Document]
// instances from structured data types. If nil is provided, returns an
// empty document.
type DocumentFactory = func(any) (Document, error)
