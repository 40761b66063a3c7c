package form

import (
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// ChangeFunc is notified with the changed field and a copy of all values.
type ChangeFunc func(code string, values map[string]any)

// Option configures a Controller.
type Option func(*Controller)

// WithRegistry builds the controller's executor on top of registry.
// Ignored when WithExecutor is also given.
func WithRegistry(r *validator.Registry) Option {
	return func(c *Controller) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithExecutor sets the executor used for every validation.
func WithExecutor(e *validator.Executor) Option {
	return func(c *Controller) {
		if e != nil {
			c.executor = e
		}
	}
}

// WithLogger sets the controller and executor logger. Every validation runs
// under a context carrying a run id; build l with logger.WithRunIDFromContext
// to have it logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithOnFieldsChange registers the change notification fired after every
// OnFieldChange value write. It is a notification, not a validation gate.
func WithOnFieldsChange(fn ChangeFunc) Option {
	return func(c *Controller) { c.onFieldsChange = fn }
}

// WithRenderer registers the collaborator that receives the field views
// after every state mutation.
func WithRenderer(r Renderer) Option {
	return func(c *Controller) { c.renderer = r }
}

// WithDisplay sets the cosmetic options passed through to the renderer.
func WithDisplay(d Display) Option {
	return func(c *Controller) { c.display = d }
}
