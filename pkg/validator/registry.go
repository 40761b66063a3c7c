package validator

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/async"
)

// Routine is the normalized rule contract: every registered kind, synchronous
// or not, resolves to a future of "failed".
type Routine func(ctx context.Context, value any, rule Rule) *async.Future[bool]

// Registry maps rule kinds to routines. It is safe for concurrent use, so a
// single registry can back many forms.
type Registry struct {
	mu       sync.RWMutex
	routines map[string]Routine
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithCheck registers a synchronous routine at construction time.
func WithCheck(kind string, fn CheckFunc) RegistryOption {
	return func(r *Registry) { _ = r.Register(kind, fn) }
}

// WithAsyncCheck registers an asynchronous routine at construction time.
func WithAsyncCheck(kind string, fn AsyncCheckFunc) RegistryOption {
	return func(r *Registry) { _ = r.RegisterAsync(kind, fn) }
}

// WithBuiltins registers every builtin kind.
func WithBuiltins() RegistryOption {
	return func(r *Registry) {
		for kind, fn := range builtins() {
			_ = r.Register(kind, fn)
		}
	}
}

// NewRegistry creates an empty registry and applies opts in order.
// Later registrations of the same kind replace earlier ones.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{routines: make(map[string]Routine)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DefaultRegistry returns a new registry preloaded with the builtin kinds.
func DefaultRegistry(opts ...RegistryOption) *Registry {
	return NewRegistry(append([]RegistryOption{WithBuiltins()}, opts...)...)
}

// Register binds a synchronous routine to kind. The result is delivered
// through an already-resolved future.
func (r *Registry) Register(kind string, fn CheckFunc) error {
	if kind == "" {
		return ErrEmptyKind
	}
	if fn == nil {
		return ErrNilRoutine
	}
	r.set(kind, func(_ context.Context, value any, rule Rule) *async.Future[bool] {
		return async.Resolved(fn(value, rule))
	})
	return nil
}

// RegisterAsync binds an asynchronous routine to kind. Each invocation runs
// on its own goroutine.
func (r *Registry) RegisterAsync(kind string, fn AsyncCheckFunc) error {
	if kind == "" {
		return ErrEmptyKind
	}
	if fn == nil {
		return ErrNilRoutine
	}
	r.set(kind, func(ctx context.Context, value any, rule Rule) *async.Future[bool] {
		return async.Go(ctx, func(ctx context.Context) (bool, error) {
			return fn(ctx, value, rule)
		})
	})
	return nil
}

func (r *Registry) set(kind string, routine Routine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routines[kind] = routine
}

// Resolve returns the routine for kind. Unknown kinds resolve to a routine
// that never fails, so an unrecognised rule cannot block a form.
func (r *Registry) Resolve(kind string) Routine {
	if routine, ok := r.lookup(kind); ok {
		return routine
	}
	return noop
}

// Has reports whether kind is registered.
func (r *Registry) Has(kind string) bool {
	_, ok := r.lookup(kind)
	return ok
}

// Kinds returns the registered kinds in lexical order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	kinds := make([]string, 0, len(r.routines))
	for kind := range r.routines {
		kinds = append(kinds, kind)
	}
	r.mu.RUnlock()
	slices.Sort(kinds)
	return kinds
}

func (r *Registry) lookup(kind string) (Routine, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	routine, ok := r.routines[kind]
	return routine, ok
}

func noop(context.Context, any, Rule) *async.Future[bool] {
	return async.Resolved(false)
}
