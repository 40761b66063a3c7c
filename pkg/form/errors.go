package form

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrAlreadyInitialized is returned by Initialize on a second call.
	ErrAlreadyInitialized = errors.New("form: controller already initialized")

	// ErrSubmitFailed matches every *SubmitError via errors.Is.
	ErrSubmitFailed = errors.New("form: submission failed")
)

// SubmitError carries the full error map of a rejected submission.
type SubmitError struct {
	Errors map[string][]string
}

func (e *SubmitError) Error() string {
	fields := e.Fields()
	if len(fields) == 0 {
		return ErrSubmitFailed.Error()
	}
	parts := make([]string, 0, len(fields))
	for _, code := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", code, strings.Join(e.Errors[code], ", ")))
	}
	return ErrSubmitFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e *SubmitError) Is(target error) bool {
	return target == ErrSubmitFailed
}

// Fields returns the codes of fields with at least one message, sorted.
func (e *SubmitError) Fields() []string {
	var fields []string
	for code, msgs := range e.Errors {
		if len(msgs) > 0 {
			fields = append(fields, code)
		}
	}
	slices.Sort(fields)
	return fields
}

// HasErrors reports whether any field in errs has at least one message.
func HasErrors(errs map[string][]string) bool {
	for _, msgs := range errs {
		if len(msgs) > 0 {
			return true
		}
	}
	return false
}
