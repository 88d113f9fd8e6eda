package input

// Button identifies one physical controller button. The set is fixed and
// mirrors the handheld's pad layout.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonL1
	ButtonR1
	ButtonL3
	ButtonR3
	ButtonSelect
	ButtonStart
	ButtonMenu
	ButtonDpadUp
	ButtonDpadDown
	ButtonDpadLeft
	ButtonDpadRight
)

var buttonNames = map[Button]string{
	ButtonA:         "A",
	ButtonB:         "B",
	ButtonX:         "X",
	ButtonY:         "Y",
	ButtonL1:        "L1",
	ButtonR1:        "R1",
	ButtonL3:        "L3",
	ButtonR3:        "R3",
	ButtonSelect:    "SELECT",
	ButtonStart:     "START",
	ButtonMenu:      "MENU",
	ButtonDpadUp:    "DPAD_UP",
	ButtonDpadDown:  "DPAD_DOWN",
	ButtonDpadLeft:  "DPAD_LEFT",
	ButtonDpadRight: "DPAD_RIGHT",
}

func (b Button) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return "UNKNOWN"
}

// Buttons returns every known button, used by the event source to iterate
// per-frame state transitions.
func Buttons() []Button {
	return []Button{
		ButtonA, ButtonB, ButtonX, ButtonY,
		ButtonL1, ButtonR1, ButtonL3, ButtonR3,
		ButtonSelect, ButtonStart, ButtonMenu,
		ButtonDpadUp, ButtonDpadDown, ButtonDpadLeft, ButtonDpadRight,
	}
}
