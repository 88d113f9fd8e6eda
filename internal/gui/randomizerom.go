package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/glyph"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/input"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/romfs"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/state"
)

// logTailLines bounds the on-screen log panel; the underlying run log is
// unbounded.
const logTailLines = 20

// Runner performs one randomization attempt against the shared status. It is
// satisfied by *randomize.Worker.
type Runner interface {
	Run(st *state.AppStatus)
}

// RandomizeROM is the randomization screen: start the run, watch the log,
// go back when it is over.
type RandomizeROM struct {
	runner Runner
	rescan func() *romfs.Node

	padding  int32
	fontSize int32
	gap      int32
}

func NewRandomizeROM(runner Runner, rescan func() *romfs.Node) *RandomizeROM {
	return &RandomizeROM{
		runner:   runner,
		rescan:   rescan,
		padding:  10,
		fontSize: 20,
		gap:      10,
	}
}

func (s *RandomizeROM) ButtonLegend() []LegendEntry {
	return []LegendEntry{
		{Glyph: glyph.GamePadA, Label: "Select"},
		{Glyph: glyph.GamePadB, Label: "Back"},
	}
}

// HandleNavigation starts a run on A and goes back on B. StartIfIdle claims
// the run slot atomically, so mashing A can never spawn a second worker, and
// a finished run stays locked out until the user goes back. Back is refused
// while the worker is in flight.
func (s *RandomizeROM) HandleNavigation(tr *input.Tracker, st *state.AppStatus) {
	switch {
	case tr.IsActive(input.ButtonA):
		if st.Randomize.StartIfIdle() {
			go s.runner.Run(st)
		}

	case tr.IsActive(input.ButtonB):
		if !st.Randomize.Running() {
			st.PreviousStep(s.rescan())
		}
	}
}

func (s *RandomizeROM) Render(st *state.AppStatus, bounds rl.Rectangle) {
	x := int32(bounds.X) + s.padding
	y := int32(bounds.Y) + s.padding

	caption := "Press " + glyph.GamePadA + " to start randomizing the ROM."
	drawText(caption, x, y, s.fontSize, colorPrimary)

	y += s.fontSize + s.gap
	for _, line := range st.Randomize.TailLines(logTailLines) {
		drawText(line, x, y, s.fontSize, logLineColor(line))
		y += s.fontSize + s.gap
	}
}
