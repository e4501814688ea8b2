package stripe

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Expandable is a field the API returns either as an id string or, when
// expanded, as the full object.
type Expandable[T Object] struct {
	id  string
	obj *T
}

// ExpandableID builds a reference holding only an id.
func ExpandableID[T Object](id string) Expandable[T] {
	return Expandable[T]{id: id}
}

// ExpandableObject builds a reference holding the full object.
func ExpandableObject[T Object](obj *T) Expandable[T] {
	return Expandable[T]{id: (*obj).ObjectID(), obj: obj}
}

// ID returns the referenced id whether or not the object was expanded.
func (e Expandable[T]) ID() string {
	return e.id
}

// Object returns the expanded object, or nil when only the id was sent.
func (e Expandable[T]) Object() *T {
	return e.obj
}

// IsObject reports whether the field was expanded.
func (e Expandable[T]) IsObject() bool {
	return e.obj != nil
}

// MarshalJSON writes the object when expanded and the bare id otherwise.
func (e Expandable[T]) MarshalJSON() ([]byte, error) {
	if e.obj != nil {
		return json.Marshal(e.obj)
	}

	return json.Marshal(e.id)
}

// UnmarshalJSON accepts a JSON string (id) or a JSON object. Anything else
// yields a *json.UnmarshalTypeError, which encoding/json annotates with the
// field path.
func (e *Expandable[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return e.typeError("empty")
	}

	switch trimmed[0] {
	case 'n':
		if string(trimmed) == "null" {
			return nil
		}
	case '"':
		var id string

		err := json.Unmarshal(trimmed, &id)
		if err != nil {
			return err
		}

		e.id, e.obj = id, nil

		return nil
	case '{':
		obj := new(T)

		err := json.Unmarshal(trimmed, obj)
		if err != nil {
			return err
		}

		e.id, e.obj = (*obj).ObjectID(), obj

		return nil
	case '[':
		return e.typeError("array")
	case 't', 'f':
		return e.typeError("bool")
	}

	return e.typeError("number")
}

func (e *Expandable[T]) typeError(kind string) error {
	return &json.UnmarshalTypeError{
		Value: kind,
		Type:  reflect.TypeOf(e).Elem(),
	}
}
