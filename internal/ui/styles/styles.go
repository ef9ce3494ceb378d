// Package styles provides shared lipgloss styles for terminal output.
//
// This package centralizes color definitions and styling to ensure visual
// consistency across check results, diffs, and prompts.
package styles

import "charm.land/lipgloss/v2"

// Colors used throughout the output
var (
	// Success is used for checkmarks and positive outcomes (green)
	Success = lipgloss.Color("82")

	// Warning is used for non-fatal findings (orange)
	Warning = lipgloss.Color("214")

	// Error is used for failed checks and error messages (red)
	Error = lipgloss.Color("196")

	// Muted is used for secondary text (gray)
	Muted = lipgloss.Color("240")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)
