// Package modifier contains the default [domain.Modifier] implementation.
//
// The update grammar is restricted to two operators. $set replaces a
// top-level field, or the field of one nested array element when the key
// has the positional "<arrayField>.$.<subfield>" shape (the element is
// resolved through the filter's sibling "<arrayField>._id" key). $push
// appends to a top-level array field, creating it if absent. $set runs
// before $push; unknown operators are ignored.
package modifier

import (
	"fmt"
	"strings"

	"anonboard/domain"
)

// Modifier implements [domain.Modifier].
type Modifier struct{}

// NewModifier returns a new implementation of [domain.Modifier].
func NewModifier() domain.Modifier {
	return &Modifier{}
}

// Modify implements [domain.Modifier]. The document is mutated in place;
// no copy is taken.
func (m *Modifier) Modify(doc domain.Document, update domain.Document, filter domain.Document) error {
	if update == nil {
		return nil
	}

	if setSpec, ok := update.Get("$set").(domain.Document); ok {
		if err := m.set(doc, setSpec, filter); err != nil {
			return err
		}
	}
	if pushSpec, ok := update.Get("$push").(domain.Document); ok {
		if err := m.push(doc, pushSpec); err != nil {
			return err
		}
	}
	return nil
}

func (m *Modifier) set(doc domain.Document, spec domain.Document, filter domain.Document) error {
	for key, value := range spec.Iter() {
		arrayField, subField, positional := positionalKey(key)
		if !positional {
			doc.Set(key, value)
			continue
		}
		if err := m.setPositional(doc, filter, arrayField, subField, value); err != nil {
			return err
		}
	}
	return nil
}

// positionalKey splits "<arrayField>.$.<subfield>" into its parts.
func positionalKey(key string) (arrayField, subField string, ok bool) {
	arrayField, subField, found := strings.Cut(key, ".$.")
	if !found || arrayField == "" || subField == "" {
		return "", "", false
	}
	if strings.ContainsRune(arrayField, '.') || strings.ContainsRune(subField, '.') {
		return "", "", false
	}
	return arrayField, subField, true
}

func (m *Modifier) setPositional(doc domain.Document, filter domain.Document, arrayField, subField string, value any) error {
	if filter == nil {
		return domain.ErrPositionalTarget{Field: arrayField}
	}
	wantID, ok := filter.Get(arrayField + "._id").(string)
	if !ok {
		return domain.ErrPositionalTarget{Field: arrayField}
	}

	arr, ok := doc.Get(arrayField).([]any)
	if !ok {
		return domain.ErrPositionalTarget{Field: arrayField}
	}
	for _, item := range arr {
		element, ok := item.(domain.Document)
		if !ok {
			continue
		}
		if id, ok := element.ID().(string); ok && id == wantID {
			element.Set(subField, value)
			return nil
		}
	}
	return domain.ErrPositionalTarget{Field: arrayField}
}

func (m *Modifier) push(doc domain.Document, spec domain.Document) error {
	for key, value := range spec.Iter() {
		existing := doc.Get(key)
		if existing == nil {
			doc.Set(key, []any{value})
			continue
		}
		arr, ok := existing.([]any)
		if !ok {
			return fmt.Errorf("cannot $push to non-array field %q", key)
		}
		doc.Set(key, append(arr, value))
	}
	return nil
}
