// Package prompt provides simple interactive terminal prompts.
//
// Prompts are bubbletea programs so they behave correctly with terminal
// resizing and ctrl+c handling. They should only be used when stdin is a
// TTY; callers gate on isatty and fall back to non-interactive behavior.
package prompt
