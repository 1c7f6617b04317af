package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cubenav/cubenav"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("250"))

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)
)

// activeButtonStyle highlights the displayed face's button with its accent
// color.
func activeButtonStyle(fa cubenav.FaceAssignment) lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color(fa.Accent))
}

// backgroundStyle carries the per-face background color; the palette plays
// the role the site's CSS variables do.
func backgroundStyle(fa cubenav.FaceAssignment) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(fa.Background))
}

// markerPalette maps marker colors to terminal colors.
var markerPalette = map[cubenav.Color]lipgloss.Color{
	cubenav.White:  lipgloss.Color("255"),
	cubenav.Yellow: lipgloss.Color("220"),
	cubenav.Green:  lipgloss.Color("35"),
	cubenav.Blue:   lipgloss.Color("27"),
	cubenav.Red:    lipgloss.Color("160"),
	cubenav.Orange: lipgloss.Color("208"),
}

// bodyPalette shades the plastic between markers by depth, near to far.
var bodyPalette = [3]lipgloss.Color{
	lipgloss.Color("245"),
	lipgloss.Color("240"),
	lipgloss.Color("236"),
}

// altPalette swaps in the celebration palette while the solved display mode
// is active.
var altPalette = map[cubenav.Color]lipgloss.Color{
	cubenav.White:  lipgloss.Color("229"),
	cubenav.Yellow: lipgloss.Color("226"),
	cubenav.Green:  lipgloss.Color("48"),
	cubenav.Blue:   lipgloss.Color("39"),
	cubenav.Red:    lipgloss.Color("199"),
	cubenav.Orange: lipgloss.Color("214"),
}
