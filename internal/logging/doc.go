// Package logging builds the slog loggers used across docshelf.
//
// Two output formats are supported: a console handler that prints
// "timestamp LEVEL component: message key=value ..." lines, and a JSON
// handler for machine consumption. Components attach themselves with the
// standard FieldComponent attribute; the console handler lifts it into the
// line prefix.
package logging
