package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/input"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/romfs"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/state"
)

const (
	canvasWidth  = 640
	canvasHeight = 480

	headerHeight = 50
	footerHeight = 50
)

// View owns the screen components and composes each frame: header, footer,
// the active step's content between them, and the exit overlay on top.
type View struct {
	header   *Header
	exitMenu *ExitMenu
	steps    map[state.Step]Content
}

func NewView(version string, runner Runner, rescan func() *romfs.Node) *View {
	return &View{
		header:   NewHeader(version),
		exitMenu: NewExitMenu(),
		steps: map[state.Step]Content{
			state.StepSelectROM:    NewSelectROM(),
			state.StepRandomizeROM: NewRandomizeROM(runner, rescan),
		},
	}
}

// Render paints one complete frame onto the 640x480 canvas. The footer shows
// the overlay's legend while the overlay is up, the current screen's
// otherwise.
func (v *View) Render(st *state.AppStatus) {
	rl.ClearBackground(colorBackground)

	legend := v.steps[st.CurrentStep].ButtonLegend()
	if st.ExitMenu.Show {
		legend = v.exitMenu.ButtonLegend()
	}

	full := rl.NewRectangle(0, 0, canvasWidth, canvasHeight)

	v.header.Render(st, rl.NewRectangle(0, 0, canvasWidth, headerHeight))
	NewFooter(legend).Render(st, rl.NewRectangle(0, canvasHeight-footerHeight, canvasWidth, footerHeight))

	content := rl.NewRectangle(0, headerHeight+1, canvasWidth, canvasHeight-headerHeight-footerHeight-2)
	v.steps[st.CurrentStep].Render(st, content)

	if st.ExitMenu.Show {
		v.exitMenu.Render(st, full)
	}
}

// HandleNavigation routes exactly one handler per frame: the menu button
// toggles the overlay (resetting its highlight to cancel), the overlay is
// modal while shown, and otherwise the active screen gets the input.
func (v *View) HandleNavigation(tr *input.Tracker, st *state.AppStatus) {
	if tr.IsActive(input.ButtonMenu) {
		st.ExitMenu.SelectedItem = 1
		st.ExitMenu.Show = !st.ExitMenu.Show
		return
	}

	if st.ExitMenu.Show {
		v.exitMenu.HandleNavigation(tr, st)
		return
	}

	v.steps[st.CurrentStep].HandleNavigation(tr, st)
}
