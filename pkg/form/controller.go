package form

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// State is the controller lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "uninitialized"
}

// Controller owns the values and errors of one form instance and runs
// validation against its field definitions.
//
// Value writes are synchronous. Single-field validation triggered by
// OnFieldChange completes later on another goroutine, so a reader may
// briefly see a new value next to the previous error list.
type Controller struct {
	mu     sync.Mutex // guards fields, state, seq and error commits
	fields []validator.Field
	state  State
	seq    map[string]uint64

	values *Store[any]
	errors *Store[[]string]

	registry       *validator.Registry
	executor       *validator.Executor
	log            *slog.Logger
	onFieldsChange ChangeFunc
	renderer       Renderer
	display        Display

	pending sync.WaitGroup
}

// New creates a controller for fields. Its state is empty until Initialize.
func New(fields []validator.Field, opts ...Option) *Controller {
	c := &Controller{
		fields:  slices.Clone(fields),
		seq:     make(map[string]uint64),
		values:  NewStore[any](),
		errors:  NewStore[[]string](),
		log:     logger.Discard(),
		display: DefaultDisplay(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.executor == nil {
		if c.registry == nil {
			c.registry = validator.DefaultRegistry()
		}
		c.executor = validator.NewExecutor(c.registry, validator.WithLogger(c.log))
	}
	c.log = c.log.With(logger.Component("form"))
	return c
}

// Initialize seeds the values with initial and moves the controller to
// StateReady. It may be called once; later calls return ErrAlreadyInitialized.
func (c *Controller) Initialize(initial map[string]any) error {
	c.mu.Lock()
	if c.state == StateReady {
		c.mu.Unlock()
		return ErrAlreadyInitialized
	}
	c.state = StateReady
	c.mu.Unlock()

	c.SetFieldsValue(initial, nil)
	c.log.Debug("form initialized", slog.Int("values", c.values.Len()))
	return nil
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Fields returns a copy of the current field definitions.
func (c *Controller) Fields() []validator.Field {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.fields)
}

// SetFields replaces the field definitions. Existing values and errors are
// kept; validations already in flight use the definitions they started with.
func (c *Controller) SetFields(fields []validator.Field) {
	c.mu.Lock()
	c.fields = slices.Clone(fields)
	c.mu.Unlock()
	c.render()
}

// Display returns the pass-through cosmetic options.
func (c *Controller) Display() Display {
	return c.display
}

// OnFieldChange records value for code, notifies the change callback and
// starts validating the field. The returned future resolves with the field's
// new error list once it has been written.
//
// Validations of the same field are sequence-tagged: if a newer change
// arrives before an older validation finishes, the older result is returned
// to its caller but not written.
func (c *Controller) OnFieldChange(ctx context.Context, code string, value any) *async.Future[[]string] {
	c.values.Set(code, value)

	c.mu.Lock()
	c.seq[code]++
	ticket := c.seq[code]
	fields := c.fields
	c.mu.Unlock()

	c.render()
	if c.onFieldsChange != nil {
		c.onFieldsChange(code, c.values.Snapshot())
	}

	if _, known := validator.FindField(fields, code); !known {
		return async.Resolved([]string{})
	}

	ctx = withRunID(ctx)
	evaluation := c.executor.Evaluate(ctx, fields, code, value)

	c.pending.Add(1)
	// Detached so the bookkeeping always runs; cancellation reaches the rules through evaluation.
	return async.Go(context.WithoutCancel(ctx), func(context.Context) ([]string, error) {
		defer c.pending.Done()

		errs, err := evaluation.Await()
		if err != nil {
			c.log.DebugContext(ctx, "field validation aborted", logger.Field(code), logger.Error(err))
			return nil, err
		}

		if !c.commitField(code, ticket, errs) {
			c.log.DebugContext(ctx, "stale field validation dropped", logger.Field(code))
			return errs, nil
		}
		c.render()
		return errs, nil
	})
}

func (c *Controller) commitField(code string, ticket uint64, errs []string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seq[code] != ticket {
		return false
	}
	c.errors.Set(code, errs)
	return true
}

// Wait blocks until every validation started by OnFieldChange has finished.
func (c *Controller) Wait() {
	c.pending.Wait()
}

// SetFieldsValue merges values into the value map and then calls onDone.
// A nil map is ignored and onDone is not called. No validation is triggered.
func (c *Controller) SetFieldsValue(values map[string]any, onDone func()) {
	if values == nil {
		return
	}
	c.values.SetMany(values)
	c.render()
	if onDone != nil {
		onDone()
	}
}

// GetFieldValue returns the value of code.
func (c *Controller) GetFieldValue(code string) (any, bool) {
	return c.values.Get(code)
}

// GetFieldsValue returns the values of codes. Codes without a value are
// omitted.
func (c *Controller) GetFieldsValue(codes []string) map[string]any {
	return c.values.GetMany(codes)
}

// Values returns a copy of the whole value map.
func (c *Controller) Values() map[string]any {
	return c.values.Snapshot()
}

// GetFieldError returns the last computed error list for code.
func (c *Controller) GetFieldError(code string) []string {
	errs, _ := c.errors.Get(code)
	return slices.Clone(errs)
}

// GetFieldsError returns the last computed error lists for codes, or for
// every defined field when none are given. Fields never validated map to nil.
func (c *Controller) GetFieldsError(codes ...string) map[string][]string {
	if codes == nil {
		codes = fieldCodes(c.Fields())
	}
	out := make(map[string][]string, len(codes))
	for _, code := range codes {
		out[code] = c.GetFieldError(code)
	}
	return out
}

// Errors returns a copy of the whole error map.
func (c *Controller) Errors() map[string][]string {
	return c.errors.Snapshot()
}

// ResetFields removes the values of codes, or all values when called with
// no arguments. An explicit empty slice removes nothing. Error lists are kept
// until the next validation of each field.
func (c *Controller) ResetFields(codes ...string) {
	if codes == nil {
		c.values.Clear()
	} else {
		c.values.DeleteMany(codes)
	}
	c.render()
}

// ValidateFields validates codes, or every defined field in declaration order
// when none are given. Fields are evaluated one after another against the
// values as they were at the time of the call, and the error map is replaced
// once, after all of them finished. Codes without a definition are reported
// as valid but not written to the error map.
func (c *Controller) ValidateFields(ctx context.Context, codes ...string) *async.Future[map[string][]string] {
	fields := c.Fields()
	targets := codes
	if targets == nil {
		targets = fieldCodes(fields)
	}
	values := c.values.GetMany(targets)
	ctx = withRunID(ctx)

	return async.Go(ctx, func(ctx context.Context) (map[string][]string, error) {
		start := time.Now()
		result := make(map[string][]string, len(targets))
		commit := make(map[string][]string, len(targets))

		for _, code := range targets {
			field, ok := validator.FindField(fields, code)
			if !ok {
				result[code] = []string{}
				continue
			}
			errs := c.executor.EvaluateRules(ctx, field.Rules, values[code])
			result[code] = errs
			commit[code] = errs
		}

		if err := ctx.Err(); err != nil {
			c.log.WarnContext(ctx, "batch validation aborted", logger.Error(err))
			return nil, err
		}

		c.mu.Lock()
		c.errors.Replace(commit)
		c.mu.Unlock()
		c.render()

		c.log.DebugContext(ctx, "batch validation finished",
			logger.Fields(targets),
			logger.ErrorCount(countFailed(result)),
			logger.Duration(time.Since(start)),
		)
		return result, nil
	})
}

// Submit validates every field. It resolves with the value map as it was
// when Submit was called, or fails with a *SubmitError carrying the full
// error map when any field has a message.
func (c *Controller) Submit(ctx context.Context) *async.Future[map[string]any] {
	ctx = withRunID(ctx)
	values := c.values.Snapshot()
	validation := c.ValidateFields(ctx)

	return async.Go(context.WithoutCancel(ctx), func(context.Context) (map[string]any, error) {
		errs, err := validation.Await()
		if err != nil {
			return nil, err
		}
		if HasErrors(errs) {
			c.log.InfoContext(ctx, "form submission rejected", logger.ErrorCount(countFailed(errs)))
			return nil, &SubmitError{Errors: errs}
		}
		return values, nil
	})
}

// View returns the per-field tuples in declaration order.
func (c *Controller) View() []FieldView {
	return buildView(c.Fields(), c.values.Snapshot(), c.errors.Snapshot())
}

func (c *Controller) render() {
	if c.renderer == nil {
		return
	}
	c.renderer.Render(c.display, c.View())
}

// withRunID tags ctx with a fresh run id unless the caller already set one.
func withRunID(ctx context.Context) context.Context {
	if _, ok := logger.RunIDFromContext(ctx); ok {
		return ctx
	}
	return logger.ContextWithRunID(ctx, uuid.NewString())
}

func fieldCodes(fields []validator.Field) []string {
	codes := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Code != "" {
			codes = append(codes, f.Code)
		}
	}
	return codes
}

func countFailed(errs map[string][]string) int {
	n := 0
	for _, msgs := range errs {
		if len(msgs) > 0 {
			n++
		}
	}
	return n
}
