package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/glyph"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/input"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/state"
)

// ExitMenu is the modal exit-confirmation overlay. While visible it captures
// all navigation input.
type ExitMenu struct {
	height         int32
	padding        int32
	gap            int32
	titleFontSize  int32
	buttonFontSize int32
}

func NewExitMenu() *ExitMenu {
	return &ExitMenu{
		height:         160,
		padding:        10,
		gap:            3,
		titleFontSize:  25,
		buttonFontSize: 20,
	}
}

func (m *ExitMenu) ButtonLegend() []LegendEntry {
	return []LegendEntry{
		{Glyph: glyph.GamePadUp, Label: "Up"},
		{Glyph: glyph.GamePadDown, Label: "Down"},
		{Glyph: glyph.GamePadA, Label: "Select"},
	}
}

// HandleNavigation moves between the two options with wraparound. Confirming
// on option 0 flags the exit; option 1 hides the overlay. Either selection
// puts the highlight back on cancel.
func (m *ExitMenu) HandleNavigation(tr *input.Tracker, st *state.AppStatus) {
	switch {
	case tr.IsActive(input.ButtonDpadUp):
		st.ExitMenu.SelectedItem = wrapIndex(st.ExitMenu.SelectedItem-1, 2)

	case tr.IsActive(input.ButtonDpadDown):
		st.ExitMenu.SelectedItem = wrapIndex(st.ExitMenu.SelectedItem+1, 2)

	case tr.IsActive(input.ButtonA):
		if st.ExitMenu.SelectedItem == 0 {
			st.ExitMenu.Exit = true
		} else {
			st.ExitMenu.Show = false
		}
		st.ExitMenu.SelectedItem = 1
	}
}

func (m *ExitMenu) Render(st *state.AppStatus, bounds rl.Rectangle) {
	title := "DO YOU WANT TO EXIT?"
	titleWidth := measureText(title, m.titleFontSize)

	modalWidth := titleWidth + m.padding*2
	modalX := int32(bounds.X) + int32(bounds.Width)/2 - modalWidth/2
	modalY := int32(bounds.Y) + int32(bounds.Height)/2 - m.height/2

	rl.DrawRectangle(modalX, modalY, modalWidth, m.height, colorBackground)
	rl.DrawRectangleLinesEx(
		rl.NewRectangle(float32(modalX), float32(modalY), float32(modalWidth), float32(m.height)),
		2, colorAlert,
	)

	titleY := modalY + 2 + m.padding
	drawText(title, modalX+m.padding, titleY, m.titleFontSize, colorPrimary)

	buttonHeight := m.buttonFontSize + m.padding*2
	buttonsX := modalX + m.padding*3
	buttonsWidth := modalWidth - m.padding*6

	containerTop := titleY + m.titleFontSize + m.padding
	containerBottom := modalY + m.height - 2 - m.padding
	centerY := containerTop + (containerBottom-containerTop)/2
	buttonsY := centerY - (buttonHeight*2+m.gap)/2

	m.drawOption(st, glyph.Check+" YES", 0, buttonsX, buttonsY, buttonsWidth, buttonHeight)
	m.drawOption(st, glyph.Close+" NO", 1, buttonsX, buttonsY+buttonHeight+m.gap, buttonsWidth, buttonHeight)
}

func (m *ExitMenu) drawOption(st *state.AppStatus, text string, item, x, y, width, height int32) {
	selected := st.ExitMenu.SelectedItem == item

	if selected {
		rl.DrawRectangle(x, y, width, height, colorAlert)
	}
	rl.DrawRectangleLinesEx(
		rl.NewRectangle(float32(x), float32(y), float32(width), float32(height)),
		1, colorAlert,
	)

	textColor := colorAlert
	if selected {
		textColor = colorPrimary
	}
	textX := x + width/2 - measureText(text, m.buttonFontSize)/2
	textY := y + height/2 - m.buttonFontSize/2
	drawText(text, textX, textY, m.buttonFontSize, textColor)
}
