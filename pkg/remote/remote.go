package remote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/formkit/pkg/cache"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Option configures a remote check.
type Option func(*options)

type options struct {
	cache   *cache.LRUCache[string, bool]
	timeout time.Duration
}

// WithCache memoises lookup results. Errors are never cached.
func WithCache(c *cache.LRUCache[string, bool]) Option {
	return func(o *options) { o.cache = c }
}

// WithTimeout bounds each backend lookup. Zero leaves the caller's context as is.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// lookupFunc reports whether value is present in the backend collection
// described by rule.
type lookupFunc func(ctx context.Context, value string, rule validator.Rule) (bool, error)

// check turns a presence lookup into a rule routine. By default the rule fails
// when the value is present (a uniqueness check); Params["mustExist"] true
// inverts that so the rule fails when the value is absent.
func check(prefix string, lookup lookupFunc, opts []Option) validator.AsyncCheckFunc {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return func(ctx context.Context, value any, rule validator.Rule) (bool, error) {
		if validator.IsEmpty(value) {
			return false, nil
		}
		member := fmt.Sprint(value)
		mustExist, _ := rule.Param("mustExist")

		key := cacheKey(prefix, rule, member)
		found, cached := false, false
		if o.cache != nil {
			found, cached = o.cache.Get(key)
		}

		if !cached {
			lookupCtx := ctx
			if o.timeout > 0 {
				var cancel context.CancelFunc
				lookupCtx, cancel = context.WithTimeout(ctx, o.timeout)
				defer cancel()
			}

			var err error
			found, err = lookup(lookupCtx, member, rule)
			if err != nil {
				return false, err
			}
			if o.cache != nil {
				o.cache.Put(key, found)
			}
		}

		if mustExist == true {
			return !found, nil
		}
		return found, nil
	}
}

func cacheKey(prefix string, rule validator.Rule, member string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, name := range []string{"set", "table", "column", "collection", "field"} {
		if v, ok := rule.Param(name); ok {
			fmt.Fprintf(&b, "|%s=%v", name, v)
		}
	}
	b.WriteString("|")
	b.WriteString(member)
	return b.String()
}
