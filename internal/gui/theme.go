package gui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Palette matching the device UI: black background, white primary text,
// green for success/highlight, red for errors, a darker red for the exit
// dialog chrome.
var (
	colorBackground = rl.NewColor(0, 0, 0, 255)
	colorPrimary    = rl.NewColor(255, 255, 255, 255)
	colorError      = rl.NewColor(255, 0, 0, 255)
	colorSuccess    = rl.NewColor(25, 203, 0, 255)
	colorAlert      = rl.NewColor(176, 48, 48, 255)
)

// logLineColor picks the log panel color from the fixed prefix convention.
func logLineColor(line string) rl.Color {
	switch {
	case strings.HasPrefix(line, "[ERROR]"):
		return colorError
	case strings.HasPrefix(line, "[SUCCESS]"):
		return colorSuccess
	default:
		return colorPrimary
	}
}
