// Package form implements the form-state engine: a Controller that owns the
// values and error lists of a dynamically configured set of fields and
// validates them with a validator.Executor.
//
// # Architecture
//
//   - Store       – generic merge-semantics map (values and errors each use one)
//   - Controller  – initialize, change handling, batch validation, reset, submit
//   - Renderer    – outbound collaborator receiving []FieldView after each mutation
//
// Data flows from the rendering collaborator into OnFieldChange, which writes
// the value immediately and validates the field asynchronously. ValidateFields
// evaluates a batch of fields sequentially against a snapshot of their values
// and replaces the error map once. Submit runs ValidateFields over every field.
//
// # Usage
//
//	c := form.New(fields, form.WithRegistry(validator.DefaultRegistry()))
//	_ = c.Initialize(map[string]any{"name": ""})
//
//	errs, _ := c.OnFieldChange(ctx, "name", "Alice").Await()
//
//	values, err := c.Submit(ctx).Await()
//	var submitErr *form.SubmitError
//	if errors.As(err, &submitErr) {
//	    // submitErr.Errors holds every field's messages
//	}
//
// # Concurrency
//
// The controller is meant to have a single logical owner feeding it edits.
// Asynchronous validation results are applied from other goroutines, so all
// state sits behind mutexes. Validations are never cancelled by the engine:
// superseded single-field results are dropped by sequence number, but a
// single-field validation still in flight may overwrite a field after a batch
// commit. Pass a context with a deadline to bound slow remote rules.
//
// # Error Handling
//
// Failed rules are data (error lists), not errors. Unknown field codes are
// treated as valid. Submit fails with *SubmitError, which matches
// ErrSubmitFailed via errors.Is.
package form
