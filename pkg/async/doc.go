// Package async provides a small generic Future type used to express "eventually"
// results throughout formkit.
//
// A Future is obtained either by starting work on a goroutine with Async or Go,
// or by wrapping an already-known outcome with Resolved or Rejected. The second
// form is how synchronous validation routines are lifted into the same contract
// as remote ones: callers always Await, and a resolved future returns without
// scheduling anything.
//
// # Usage
//
//	f := async.Async(ctx, "alice", func(ctx context.Context, name string) (bool, error) {
//	    return lookup(ctx, name)
//	})
//
//	taken, err := f.Await()
//
// Waiting can be bounded with AwaitContext or AwaitWithTimeout. Neither cancels
// the underlying computation; they only stop waiting for it.
//
// # Error Handling
//
// Futures carry whatever error the callback returned. AwaitWithTimeout returns
// ErrTimeout, AwaitContext returns the context error. If the context passed to
// Async is already done, the callback is skipped and the future completes with
// ctx.Err().
package async
