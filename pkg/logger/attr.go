package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a form field code under the key "field".
func Field(code string) slog.Attr {
	return slog.String("field", code)
}

// Fields records a list of field codes under the key "fields".
func Fields(codes []string) slog.Attr {
	return slog.Any("fields", codes)
}

// RuleKind records a rule kind under the key "rule_kind".
func RuleKind(kind string) slog.Attr {
	return slog.String("rule_kind", kind)
}

// RunID records a validation run identifier under the key "run_id".
// If id is nil, it returns an empty Attr.
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}

// ErrorCount records how many fields failed under the key "error_count".
func ErrorCount(n int) slog.Attr {
	return slog.Int("error_count", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
