package validator

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// IntParam reads an integer parameter. Floats without a fractional part and
// numeric strings are accepted, since YAML and JSON decoders disagree on
// number types.
func IntParam(rule Rule, name string) (int, error) {
	v, ok := rule.Param(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q is missing", ErrInvalidParam, name)
	}
	f, ok := toFloat(v)
	if !ok || f != float64(int(f)) {
		return 0, fmt.Errorf("%w: %q must be an integer, got %T", ErrInvalidParam, name, v)
	}
	return int(f), nil
}

// FloatParam reads a numeric parameter.
func FloatParam(rule Rule, name string) (float64, error) {
	v, ok := rule.Param(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q is missing", ErrInvalidParam, name)
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("%w: %q must be a number, got %T", ErrInvalidParam, name, v)
	}
	return f, nil
}

// StringParam reads a non-empty string parameter.
func StringParam(rule Rule, name string) (string, error) {
	v, ok := rule.Param(name)
	if !ok {
		return "", fmt.Errorf("%w: %q is missing", ErrInvalidParam, name)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%w: %q must be a non-empty string", ErrInvalidParam, name)
	}
	return s, nil
}

// ListParam reads a list parameter.
func ListParam(rule Rule, name string) ([]any, error) {
	v, ok := rule.Param(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q is missing", ErrInvalidParam, name)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %q must be a list, got %T", ErrInvalidParam, name, v)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

// IsEmpty reports whether a field value counts as "not provided": nil, nil
// pointers, whitespace-only strings and empty collections. Booleans and
// numbers are never empty.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsEmpty(rv.Elem().Interface())
	}
	return false
}

// Length returns the rune count of NFC-normalized strings, or the element
// count of collections. ok is false for other types.
func Length(value any) (n int, ok bool) {
	if s, isString := value.(string); isString {
		return utf8.RuneCountInString(norm.NFC.String(s)), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len(), true
	}
	return 0, false
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case nil:
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func toString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	case []byte:
		return string(v), true
	}
	return "", false
}
