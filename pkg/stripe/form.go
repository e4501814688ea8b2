package stripe

import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"reflect"
	"slices"

	"github.com/stripe/stripe-go/v72/form"
)

// ErrUnsupportedParams is wrapped in a QueryStringError when a parameter bag
// is not a struct, a map of strings or url.Values.
var ErrUnsupportedParams = errors.New("parameters must be a struct, map[string]string or url.Values")

// expandKey is the bracket key extra expansions are sent under.
const expandKey = "expand[]"

// EncodeForm serializes params with nested bracket notation
// (a[b]=1&a[c][0]=2) following the form:"..." struct tags. Extra expand keys
// are appended as expand[] entries. A nil params encodes to "".
func EncodeForm(params any, expand ...string) (encoded string, err error) {
	values := &form.Values{}

	defer func() {
		if r := recover(); r != nil {
			encoded = ""
			err = &QueryStringError{Err: fmt.Errorf("%v", r)} //nolint:err113 // recovered encoder panic
		}
	}()

	err = appendParams(values, params)
	if err != nil {
		return "", err
	}

	for _, key := range expand {
		values.Add(expandKey, key)
	}

	return values.Encode(), nil
}

func appendParams(values *form.Values, params any) error {
	switch p := params.(type) {
	case nil:
		return nil
	case url.Values:
		for _, key := range slices.Sorted(maps.Keys(p)) {
			for _, v := range p[key] {
				values.Add(key, v)
			}
		}

		return nil
	case map[string]string:
		for _, key := range slices.Sorted(maps.Keys(p)) {
			values.Add(key, p[key])
		}

		return nil
	}

	rv := reflect.ValueOf(params)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}

		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return &QueryStringError{Err: fmt.Errorf("%w: got %T", ErrUnsupportedParams, params)}
	}

	form.AppendTo(values, params)

	return nil
}
