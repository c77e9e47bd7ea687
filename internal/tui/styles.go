package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff00ff"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688")).
			Italic(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(1, 2)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)
)

// Descriptions is the one-line summary shown next to each style.
var Descriptions = map[string]string{
	"sweep":               "rainbow bands scrolling across the screen",
	"burst":               "ring of sparks expanding from the centre",
	"wave":                "blue sine interference",
	"wave-gradient":       "sine interference through a drifting hue",
	"fractal":             "Mandelbrot zoom, restarting at 50x",
	"fractal-oscillating": "Mandelbrot zoom bouncing in and out",
	"fractal-fast":        "low-precision Mandelbrot with a sine zoom",
}
