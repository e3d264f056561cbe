// Package logging builds the slog loggers used across the CLI.
//
// Two handler formats exist: a console handler that renders compact
// "TIME LEVEL component: message k=v" lines for humans, and the stdlib JSON
// handler for machine consumption. Output goes to stderr plus an append-only
// log file under paths.log_dir so CLI stdout stays reserved for command
// results.
package logging
