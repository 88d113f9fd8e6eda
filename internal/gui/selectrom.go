package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/glyph"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/input"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/romfs"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/state"
)

// listWindowSize is how many entries the browser shows per page. The
// highlight index runs over the whole child list; only display is windowed.
const listWindowSize = 10

// SelectROM is the file browser screen.
type SelectROM struct {
	padding  int32
	fontSize int32
	gap      int32
}

func NewSelectROM() *SelectROM {
	return &SelectROM{padding: 10, fontSize: 20, gap: 10}
}

func (s *SelectROM) ButtonLegend() []LegendEntry {
	return []LegendEntry{
		{Glyph: glyph.GamePadUp, Label: "Up"},
		{Glyph: glyph.GamePadDown, Label: "Down"},
		{Glyph: glyph.GamePadA, Label: "Select"},
		{Glyph: glyph.GamePadB, Label: "Back"},
	}
}

func (s *SelectROM) HandleNavigation(tr *input.Tracker, st *state.AppStatus) {
	sel := &st.Select

	switch {
	case tr.IsActive(input.ButtonDpadUp):
		if len(sel.CurrentDir.Children) == 0 {
			return
		}
		sel.CurrentSelection--
		if sel.CurrentSelection < 0 {
			sel.CurrentSelection = len(sel.CurrentDir.Children) - 1
		}

	case tr.IsActive(input.ButtonDpadDown):
		if len(sel.CurrentDir.Children) == 0 {
			return
		}
		sel.CurrentSelection++
		if sel.CurrentSelection >= len(sel.CurrentDir.Children) {
			sel.CurrentSelection = 0
		}

	case tr.IsActive(input.ButtonA):
		if len(sel.CurrentDir.Children) == 0 {
			return
		}
		chosen := sel.CurrentDir.Children[sel.CurrentSelection]
		sel.Selections = append(sel.Selections, chosen)

		if chosen.IsFile {
			sel.SelectedROM = chosen.Path
			st.NextStep()
		} else {
			sel.CurrentDir = chosen
			sel.CurrentSelection = 0
		}

	case tr.IsActive(input.ButtonB):
		if sel.CurrentDir.Path == romfs.RootPath {
			return
		}
		sel.Selections = sel.Selections[:len(sel.Selections)-1]
		// Position is reconstructed by re-walking from the root along the
		// remembered trail, matching nodes by path equality.
		sel.CurrentDir = sel.Tree
		for _, entry := range sel.Selections {
			for _, child := range sel.CurrentDir.Children {
				if entry.Path == child.Path {
					sel.CurrentDir = child
					break
				}
			}
		}
		sel.CurrentSelection = 0
	}
}

func (s *SelectROM) Render(st *state.AppStatus, bounds rl.Rectangle) {
	sel := &st.Select

	windowStart := sel.CurrentSelection / listWindowSize * listWindowSize
	windowEnd := windowStart + listWindowSize
	if windowEnd > len(sel.CurrentDir.Children) {
		windowEnd = len(sel.CurrentDir.Children)
	}
	highlighted := sel.CurrentSelection % listWindowSize

	x := int32(bounds.X) + s.padding
	y := int32(bounds.Y) + s.padding
	for i, child := range sel.CurrentDir.Children[windowStart:windowEnd] {
		color := colorPrimary
		if i == highlighted {
			color = colorSuccess
		}
		drawText(child.Name, x, y, s.fontSize, color)
		y += s.fontSize + s.gap
	}
}
