package remote

import (
	"context"
	"errors"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// DocumentCounter counts documents whose field equals value, stopping at
// limit when it is positive.
type DocumentCounter interface {
	CountEqual(ctx context.Context, collection, field string, value any, limit int64) (int64, error)
}

// DocumentExists checks whether a document with Params["field"] equal to the
// value exists in Params["collection"]. The rule fails when it does, or, with
// Params["mustExist"] true, when it does not.
func DocumentExists(counter DocumentCounter, opts ...Option) validator.AsyncCheckFunc {
	return check("mongo", func(ctx context.Context, member string, rule validator.Rule) (bool, error) {
		collection, err := validator.StringParam(rule, "collection")
		if err != nil {
			return false, err
		}
		field, err := validator.StringParam(rule, "field")
		if err != nil {
			return false, err
		}
		n, err := counter.CountEqual(ctx, collection, field, member, 1)
		if err != nil {
			return false, errors.Join(ErrUnavailable, err)
		}
		return n > 0, nil
	}, opts)
}
