// Package matcher contains the default [domain.Matcher] implementation.
//
// The filter grammar is deliberately small: top-level field equality and
// nested-array membership by element identifier ("<arrayField>._id"). A
// document matches when every filter key's condition holds.
package matcher

import (
	"strings"

	"anonboard/adapter/comparer"
	"anonboard/domain"
)

// Matcher implements [domain.Matcher].
type Matcher struct {
	comparer domain.Comparer
}

// NewMatcher returns a new implementation of domain.Matcher.
func NewMatcher(options ...Option) domain.Matcher {
	m := &Matcher{
		comparer: comparer.NewComparer(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Match implements [domain.Matcher]. A nil or empty filter matches every
// document. A filter key holding nil is treated as no constraint.
func (m *Matcher) Match(doc domain.Document, filter domain.Document) (bool, error) {
	if filter == nil {
		return true, nil
	}

	for key, want := range filter.Iter() {
		if want == nil {
			continue
		}

		var matches bool
		var err error
		if arrayField, ok := membershipKey(key); ok {
			matches, err = m.matchMembership(doc, arrayField, want)
		} else if strings.ContainsRune(key, '.') {
			return false, domain.ErrFilterKey{Key: key}
		} else {
			matches, err = m.matchEquality(doc, key, want)
		}
		if err != nil || !matches {
			return false, err
		}
	}
	return true, nil
}

// membershipKey reports whether key has the "<arrayField>._id" shape and
// returns the array field name.
func membershipKey(key string) (string, bool) {
	arrayField, found := strings.CutSuffix(key, "._id")
	if !found || arrayField == "" || strings.ContainsRune(arrayField, '.') {
		return "", false
	}
	return arrayField, true
}

func (m *Matcher) matchEquality(doc domain.Document, key string, want any) (bool, error) {
	if !doc.Has(key) {
		return false, nil
	}
	if !m.comparer.Comparable(doc.Get(key), want) {
		return false, nil
	}
	c, err := m.comparer.Compare(doc.Get(key), want)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// matchMembership requires the array field to exist and contain at least
// one element whose identifier equals want. It does not select which
// element; the modifier re-resolves the element with the same key.
func (m *Matcher) matchMembership(doc domain.Document, arrayField string, want any) (bool, error) {
	arr, ok := doc.Get(arrayField).([]any)
	if !ok {
		return false, nil
	}
	for _, item := range arr {
		element, ok := item.(domain.Document)
		if !ok {
			continue
		}
		id, ok := element.ID().(string)
		if !ok {
			continue
		}
		// identifiers compare by exact string equality only
		if wantID, ok := want.(string); ok && id == wantID {
			return true, nil
		}
	}
	return false, nil
}
