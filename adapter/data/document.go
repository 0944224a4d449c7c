// Package data contains the default [domain.Document] implementation.
package data

import (
	"iter"
	"maps"
	"reflect"
	"slices"
	"strings"
	"time"

	goreflect "github.com/goccy/go-reflect"

	"anonboard/domain"
)

// TagName is the struct tag read when converting structs to documents.
const TagName = "doc"

var timeTyp = goreflect.TypeOf(*new(time.Time))

// M implements domain.Document by using a hashed map. Duplicates replace
// old values.
type M map[string]any

// NewDocument returns a new instance of [domain.Document]. It accepts nil
// (empty document), documents, maps keyed by string and structs tagged
// with "doc". Unknown fields pass through unchanged.
func NewDocument(in any) (domain.Document, error) {
	switch t := in.(type) {
	case nil:
		return M{}, nil
	case M:
		return maps.Clone(t), nil
	case map[string]any:
		res := make(M, len(t))
		maps.Copy(res, t)
		return res, nil
	case domain.Document:
		res := make(M, t.Len())
		for k, v := range t.Iter() {
			res[k] = v
		}
		return res, nil
	}

	r := goreflect.ValueNoEscapeOf(in)
	k := r.Kind()
	for k == goreflect.Interface || k == reflect.Pointer {
		if r.IsNil() {
			return M{}, nil
		}
		r = r.Elem()
		k = r.Kind()
	}
	if k != goreflect.Struct && k != goreflect.Map {
		return nil, domain.ErrDocumentType{Value: in}
	}
	doc, err := parseReflect(r)
	if err != nil {
		return nil, err
	}
	return doc.(domain.Document), nil
}

func parseReflect(r goreflect.Value) (any, error) {
	for r.Kind() == reflect.Pointer || r.Kind() == goreflect.Interface {
		if r.IsNil() {
			return nil, nil
		}
		r = r.Elem()
	}
	switch r.Kind() {
	case goreflect.Invalid:
		return nil, nil
	case goreflect.Slice:
		if r.IsNil() {
			return nil, nil
		}
		return parseList(r)
	case goreflect.Array:
		return parseList(r)
	case goreflect.Struct:
		if r.Type() == timeTyp {
			return r.Interface(), nil
		}
		return parseStruct(r)
	case goreflect.Map:
		if r.IsNil() {
			return nil, nil
		}
		return parseMap(r)
	default:
		return r.Interface(), nil
	}
}

func parseStruct(r goreflect.Value) (domain.Document, error) {
	typ := r.Type()
	numField := r.NumField()

	res := make(M, numField)

	for n := range numField {
		field := typ.Field(n)
		if field.PkgPath != "" {
			continue
		}

		fieldInfo, err := parseField(r.Field(n), field)
		if err != nil {
			return nil, err
		}
		if fieldInfo == nil {
			continue
		}
		res[fieldInfo.name] = fieldInfo.value
	}
	return res, nil
}

func parseMap(v goreflect.Value) (domain.Document, error) {
	res := make(M, v.Len())
	for _, k := range v.MapKeys() {
		str := k.String()
		var err error
		if res[str], err = parseReflect(v.MapIndex(k)); err != nil {
			return nil, err
		}
	}
	return res, nil
}

type field struct {
	name  string
	value any
}

func parseField(r goreflect.Value, typ goreflect.StructField) (*field, error) {
	name := typ.Name
	var tagSegments []string
	if tag, ok := typ.Tag.Lookup(TagName); ok {
		if tag == "-" {
			return nil, nil
		}
		tagSegments = strings.Split(tag, ",")
		if tagSegments[0] != "" {
			name = tagSegments[0]
		}
		tagSegments = tagSegments[1:]
	}
	if slices.Contains(tagSegments, "omitempty") && isNullable(typ.Type) && r.IsNil() {
		return nil, nil
	}
	if slices.Contains(tagSegments, "omitzero") && r.IsZero() {
		return nil, nil
	}

	value, err := parseReflect(r)
	if err != nil {
		return nil, err
	}

	return &field{name: name, value: value}, nil
}

func parseList(r goreflect.Value) (any, error) {
	length := r.Len()
	res := make([]any, length)
	for i := range length {
		item, err := parseReflect(r.Index(i))
		if err != nil {
			return nil, err
		}
		res[i] = item
	}
	return res, nil
}

func isNullable(t goreflect.Type) bool {
	k := t.Kind()
	return k == reflect.Pointer ||
		k == reflect.Slice ||
		k == reflect.Map ||
		k == reflect.Interface ||
		k == reflect.Func ||
		k == reflect.Chan
}

// ID implements domain.Document.
func (d M) ID() any {
	return d["_id"]
}

// Get implements domain.Document.
func (d M) Get(key string) any {
	return d[key]
}

// Set implements domain.Document.
func (d M) Set(key string, value any) {
	d[key] = value
}

// Unset implements domain.Document.
func (d M) Unset(key string) {
	delete(d, key)
}

// Has implements domain.Document.
func (d M) Has(key string) bool {
	_, has := d[key]
	return has
}

// Len implements domain.Document.
func (d M) Len() int {
	return len(d)
}

// Iter implements domain.Document.
func (d M) Iter() iter.Seq2[string, any] {
	return maps.All(d)
}

// Keys implements domain.Document.
func (d M) Keys() iter.Seq[string] {
	return maps.Keys(d)
}
