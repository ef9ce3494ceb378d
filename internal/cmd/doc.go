// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users.
//
// # Design Notes
//
// relprep shells out to the git CLI rather than using Go git libraries. This
// approach is simpler, more reliable, and ensures compatibility with user
// configurations (SSH keys, signing setup, aliases).
package cmd
