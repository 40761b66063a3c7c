package validator

import (
	"fmt"
	"slices"
)

// Enum fails when the value is not one of Params["values"].
// Values are compared by their formatted representation so that YAML ints
// and form strings ("1" vs 1) match.
func Enum(value any, rule Rule) bool {
	if IsEmpty(value) {
		return false
	}
	allowed, err := ListParam(rule, "values")
	if err != nil {
		return false
	}
	return !containsValue(allowed, value)
}

// NotIn fails when the value is one of Params["values"].
func NotIn(value any, rule Rule) bool {
	if IsEmpty(value) {
		return false
	}
	forbidden, err := ListParam(rule, "values")
	if err != nil {
		return false
	}
	return containsValue(forbidden, value)
}

func containsValue(list []any, value any) bool {
	want := fmt.Sprint(value)
	return slices.ContainsFunc(list, func(item any) bool {
		return fmt.Sprint(item) == want
	})
}
