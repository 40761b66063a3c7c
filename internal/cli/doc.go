// Package cli implements the formcheck command tree.
//
// Every command reads Settings from the environment (and optional dotenv
// files), builds a Runtime holding the logger and the rule registry, and
// connects the Redis and Postgres backends that have a URL configured.
// submit and validate load a form definition through formdef and drive a
// form.Controller exactly as an interactive form would.
package cli
