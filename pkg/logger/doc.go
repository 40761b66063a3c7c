// Package logger builds *slog.Logger instances for formkit components.
//
// New creates a logger configured by functional options: output format (text
// or json), minimum level, static attributes, and ContextExtractor callbacks
// that add attributes pulled from context.Context on every record. The
// handler is wrapped in LogHandlerDecorator, which runs the extractors before
// delegating.
//
// Attribute helpers in attr.go (Component, Field, RuleKind, RunID, Error, ...)
// keep key names consistent across the validator, form and remote packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithRunIDFromContext(),
//	)
//	ctx = logger.ContextWithRunID(ctx, id)
//	log.InfoContext(ctx, "form submitted", logger.Fields(codes))
//
// The form controller puts a fresh run id on the context of every validation
// it starts, so records logged by the controller, the executor and the rule
// routines of one run share the same run_id.
//
// Components that accept a logger default to Discard when none is given.
//
// # Error Handling
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally. WithFormat panics on an unknown format.
package logger
