// Package logging configures slog for the userdirs CLI.
//
// The default text handler is TTY-optimized: colorized level and key
// output when the destination supports it, plain text otherwise. A JSON
// format is available for machine consumption, and ForTest routes log
// output through testing.T.
package logging
