package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/glyph"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/state"
)

// Header shows the application title and version above a separator rule.
type Header struct {
	Version string

	padding         int32
	fontSize        int32
	separatorHeight int32
}

func NewHeader(version string) *Header {
	return &Header{
		Version:         version,
		padding:         20,
		fontSize:        25,
		separatorHeight: 2,
	}
}

func (h *Header) Render(st *state.AppStatus, bounds rl.Rectangle) {
	height := int32(bounds.Height)
	textY := int32(bounds.Y) + height/2 - h.fontSize/2

	title := fmt.Sprintf("%s Pokémon Randomizer v%s", glyph.ThunderFilled, h.Version)
	drawText(title, int32(bounds.X)+h.padding, textY, h.fontSize, colorPrimary)

	rl.DrawRectangle(
		int32(bounds.X),
		int32(bounds.Y)+height-h.separatorHeight,
		int32(bounds.Width),
		h.separatorHeight,
		colorPrimary,
	)
}
