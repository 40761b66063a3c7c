package remote

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// SetMember is the part of a go-redis client used for set lookups.
// *redis.Client, *redis.ClusterClient and redis.UniversalClient satisfy it.
type SetMember interface {
	SIsMember(ctx context.Context, key string, member any) *redis.BoolCmd
}

// SetMembership checks the value against the Redis set named by
// Params["set"]. The rule fails when the value is a member, or, with
// Params["mustExist"] true, when it is not.
func SetMembership(client SetMember, opts ...Option) validator.AsyncCheckFunc {
	return check("redis", func(ctx context.Context, member string, rule validator.Rule) (bool, error) {
		set, err := validator.StringParam(rule, "set")
		if err != nil {
			return false, err
		}
		found, err := client.SIsMember(ctx, set, member).Result()
		if err != nil {
			return false, errors.Join(ErrUnavailable, err)
		}
		return found, nil
	}, opts)
}
