// Package styles provides lipgloss styling for all CLI output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorBrand   = lipgloss.Color("#9D00FF") // Electric purple
	ColorTeal    = lipgloss.Color("#00FFCC") // Bright teal accent
	ColorError   = lipgloss.Color("#FF3366") // Error red-pink
	ColorSuccess = lipgloss.Color("#00FF66") // Success green
	ColorMuted   = lipgloss.Color("#5555AA") // Muted purple-gray
)

// Styles used by help text, listings, and error reporting.
var (
	Brand = lipgloss.NewStyle().
		Foreground(ColorBrand)

	BrandBold = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBrand)

	Secondary = lipgloss.NewStyle().
			Foreground(ColorTeal)

	Error = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	Success = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)

	Muted = lipgloss.NewStyle().
		Foreground(ColorMuted)
)
