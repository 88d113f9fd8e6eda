package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/input"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/state"
)

// Component is anything that can paint itself into a bounded region of the
// canvas.
type Component interface {
	Render(st *state.AppStatus, bounds rl.Rectangle)
}

// Content is an interactive screen or overlay: it also declares the button
// legend shown in the footer and handles one navigation pass per frame.
type Content interface {
	Component
	ButtonLegend() []LegendEntry
	HandleNavigation(tr *input.Tracker, st *state.AppStatus)
}

// LegendEntry is one footer hint: an icon glyph paired with its action label.
// Legends are ordered slices; footer draws them left to right.
type LegendEntry struct {
	Glyph string
	Label string
}

func wrapIndex(i, size int) int {
	if size <= 0 {
		return 0
	}
	i %= size
	if i < 0 {
		i += size
	}
	return i
}
