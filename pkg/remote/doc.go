// Package remote provides asynchronous rule routines that consult an external
// store: Redis set membership (SetMembership), Postgres row existence
// (Exists) and MongoDB document existence (DocumentExists).
//
// Each returns a validator.AsyncCheckFunc to be registered under a kind of the
// caller's choosing:
//
//	reg := validator.DefaultRegistry(
//	    validator.WithAsyncCheck("uniqueRedis", remote.SetMembership(rdb)),
//	    validator.WithAsyncCheck("unique", remote.Exists(pool,
//	        remote.WithCache(cache.NewLRUCache[string, bool](1024, cache.WithTTL(time.Minute))),
//	        remote.WithTimeout(2*time.Second),
//	    )),
//	)
//
// and referenced from field rules:
//
//	- kind: unique
//	  table: users
//	  column: email
//	  message: Email is already registered
//
// By default a rule fails when the value is found (uniqueness). Setting
// mustExist: true fails it when the value is missing instead (allow-lists,
// foreign keys). Empty values are never looked up.
//
// Backend errors are returned wrapped in ErrUnavailable, and Postgres errors
// caused by a missing table or column in ErrMisconfigured. The validator
// executor logs either and treats the rule as passed.
package remote
