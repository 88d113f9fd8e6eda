package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/glyph"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/state"
)

// Footer draws the active context's button legend under a separator rule.
// The menu/exit hint is always appended after the screen-specific entries.
type Footer struct {
	Legend []LegendEntry

	padding         int32
	fontSize        int32
	separatorHeight int32
	entryGap        int32
}

func NewFooter(legend []LegendEntry) *Footer {
	return &Footer{
		Legend:          legend,
		padding:         10,
		fontSize:        25,
		separatorHeight: 2,
		entryGap:        20,
	}
}

func (f *Footer) Render(st *state.AppStatus, bounds rl.Rectangle) {
	rl.DrawRectangle(
		int32(bounds.X),
		int32(bounds.Y),
		int32(bounds.Width),
		f.separatorHeight,
		colorPrimary,
	)

	entries := append(append([]LegendEntry(nil), f.Legend...), LegendEntry{
		Glyph: glyph.GamePadMenu,
		Label: "Exit",
	})

	x := int32(bounds.X) + f.padding
	y := int32(bounds.Y) + f.padding + f.separatorHeight
	for _, entry := range entries {
		text := entry.Glyph + " " + entry.Label
		drawText(text, x, y, f.fontSize, colorPrimary)
		x += measureText(text, f.fontSize) + f.entryGap
	}
}
