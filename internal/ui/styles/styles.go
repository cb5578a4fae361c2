// Package styles provides shared lipgloss styles for terminal output.
//
// Styled strings carry full ANSI color. Print them through lipgloss.Fprint
// and friends so colors are downsampled, or stripped when the writer is not
// a terminal.
package styles

import (
	"image/color"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/browser-schedule/internal/schedule"
)

// Palette
var (
	// Primary is the main accent color (cyan/teal)
	Primary color.Color = lipgloss.Color("62")

	// Accent is the highlight color for selected/active items (pink)
	Accent color.Color = lipgloss.Color("212")

	// Warning is used for non-fatal problems (orange)
	Warning color.Color = lipgloss.Color("214")

	// Muted is used for annotations (gray)
	Muted color.Color = lipgloss.Color("240")
)

// Common styles
var (
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
)

// Mode styles
var (
	// WorkStyle marks the work browser and work mode.
	WorkStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// PersonalStyle marks the personal browser and personal mode.
	PersonalStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// ForMode returns the style used to render values belonging to mode.
func ForMode(mode schedule.Mode) lipgloss.Style {
	if mode == schedule.ModeWork {
		return WorkStyle
	}
	return PersonalStyle
}

// Profile detects the color profile of w, honoring NO_COLOR and friends.
func Profile(w io.Writer) colorprofile.Profile {
	return colorprofile.Detect(w, os.Environ())
}
