package validator

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Executor runs a field's rules against a value and collects failure messages.
type Executor struct {
	registry *Registry
	log      *slog.Logger
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithLogger sets the logger used for degraded rule outcomes. Nil is ignored.
func WithLogger(l *slog.Logger) ExecutorOption {
	return func(e *Executor) {
		if l != nil {
			e.log = l
		}
	}
}

// NewExecutor creates an executor backed by registry. A nil registry behaves
// like an empty one: every rule passes.
func NewExecutor(registry *Registry, opts ...ExecutorOption) *Executor {
	e := &Executor{
		registry: registry,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With(logger.Component("validator"))
	return e
}

// Registry returns the registry rules are resolved against.
func (e *Executor) Registry() *Registry {
	return e.registry
}

// Evaluate looks up fieldCode in fields and evaluates its rules against value
// on a separate goroutine. Unknown fields resolve to an empty list. If ctx is
// done before every rule has run, the future fails with ctx.Err() instead of
// resolving with a partial list.
func (e *Executor) Evaluate(ctx context.Context, fields []Field, fieldCode string, value any) *async.Future[[]string] {
	field, ok := FindField(fields, fieldCode)
	if !ok || len(field.Rules) == 0 {
		return async.Resolved([]string{})
	}
	return async.Go(ctx, func(ctx context.Context) ([]string, error) {
		messages := e.EvaluateRules(ctx, field.Rules, value)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return messages, nil
	})
}

// EvaluateRules runs rules one at a time in declaration order, awaiting each
// before starting the next, and returns the messages of the failed ones in
// the same order. Rules without a message fail silently. A rule whose
// routine errors counts as passed. If ctx is done, the remaining rules are
// skipped.
func (e *Executor) EvaluateRules(ctx context.Context, rules []Rule, value any) []string {
	messages := make([]string, 0, len(rules))

	for i, rule := range rules {
		if err := ctx.Err(); err != nil {
			e.log.DebugContext(ctx, "rule evaluation interrupted",
				slog.Int("remaining", len(rules)-i),
				logger.Error(err),
			)
			break
		}

		start := time.Now()
		failed, err := e.registry.Resolve(rule.Kind)(ctx, value, rule).Await()
		if err != nil {
			e.log.WarnContext(ctx, "rule check failed, treating as passed",
				logger.RuleKind(rule.Kind),
				logger.Duration(time.Since(start)),
				logger.Error(err),
			)
			continue
		}
		if failed && rule.Message != "" {
			messages = append(messages, rule.Message)
		}
	}

	return messages
}
