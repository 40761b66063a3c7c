package validator

import "context"

// Rule is a declarative constraint attached to a field.
// Params carries kind-specific settings such as "min" or "pattern"; in YAML
// documents they may be written inline next to kind and message.
type Rule struct {
	Kind    string         `json:"kind" yaml:"kind"`
	Message string         `json:"message,omitempty" yaml:"message,omitempty"`
	Params  map[string]any `json:"params,omitempty" yaml:",inline"`
}

// Param returns the named parameter and whether it was set.
func (r Rule) Param(name string) (any, bool) {
	if r.Params == nil {
		return nil, false
	}
	v, ok := r.Params[name]
	return v, ok
}

// Field is a named, independently validated unit of form data.
type Field struct {
	Code  string `json:"fieldCode" yaml:"fieldCode"`
	Rules []Rule `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// FindField returns the first field with the given code.
func FindField(fields []Field, code string) (Field, bool) {
	for _, f := range fields {
		if f.Code == code {
			return f, true
		}
	}
	return Field{}, false
}

// CheckFunc is a synchronous rule routine. It returns true when the rule fails.
type CheckFunc func(value any, rule Rule) bool

// AsyncCheckFunc is a rule routine that may block, e.g. on a remote lookup.
// It returns true when the rule fails. A non-nil error means the outcome is
// unknown; the executor treats such rules as passed.
type AsyncCheckFunc func(ctx context.Context, value any, rule Rule) (bool, error)
