// Package validator implements declarative, kind-based field validation.
//
// A Rule names a kind ("required", "minLength", "pattern", ...) plus a message
// and kind-specific parameters. A Registry maps kinds to routines, and an
// Executor runs a field's rules against a value and returns the messages of
// the rules that failed.
//
// # Architecture
//
// Rule routines come in two shapes:
//   - CheckFunc       – synchronous, func(value, rule) bool
//   - AsyncCheckFunc  – may block on I/O, func(ctx, value, rule) (bool, error)
//
// Both are normalized to Routine, which returns an *async.Future[bool].
// Synchronous routines are wrapped in an already-resolved future; asynchronous
// ones run on their own goroutine. Kinds the registry does not know resolve to
// a routine that never fails, so a form is never blocked by a rule it cannot
// evaluate.
//
// Builtin kinds are grouped by family in separate files (string_rules.go,
// numeric_rules.go, format_rules.go, ...). Every builtin except "required"
// passes on empty values, keeping optional fields optional.
//
// # Usage
//
//	reg := validator.DefaultRegistry(
//	    validator.WithAsyncCheck("unique", remote.SetMembership(client)),
//	)
//	exec := validator.NewExecutor(reg, validator.WithLogger(log))
//
//	msgs := exec.EvaluateRules(ctx, []validator.Rule{
//	    {Kind: "required", Message: "Name is required"},
//	    {Kind: "minLength", Message: "Too short", Params: map[string]any{"min": 3}},
//	}, "Al")
//	// msgs == []string{"Too short"}
//
// # Ordering
//
// Rules are evaluated sequentially, never concurrently. A slow remote rule
// delays the rules after it instead of letting their messages overtake its
// own, so the returned messages always follow declaration order.
//
// # Error Handling
//
// A failed rule is normal output, not an error. Invalid parameters make the
// rule pass; routine errors are logged at WARN and the rule counts as passed.
package validator
