package remote

import "errors"

var (
	// ErrUnavailable wraps backend failures. Rules that return it count as passed.
	ErrUnavailable = errors.New("remote: backend unavailable")
	// ErrMisconfigured wraps failures caused by the rule itself, such as a
	// table or column that does not exist.
	ErrMisconfigured = errors.New("remote: rule misconfigured")
)
