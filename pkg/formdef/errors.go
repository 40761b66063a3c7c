package formdef

import "errors"

var (
	ErrInvalidDefinition = errors.New("formdef: invalid form definition")
	ErrInvalidValues     = errors.New("formdef: invalid values document")
)
