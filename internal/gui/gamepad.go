package gui

import (
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/input"
)

// mappingEnvVar carries either an SDL-style gamepad mapping string or the
// path to a mapping file, same convention the stock muOS launcher uses.
const mappingEnvVar = "SDL_GAMECONTROLLERCONFIG"

var gamepadButtons = map[input.Button]int32{
	input.ButtonA:         rl.GamepadButtonRightFaceDown,
	input.ButtonB:         rl.GamepadButtonRightFaceRight,
	input.ButtonX:         rl.GamepadButtonRightFaceLeft,
	input.ButtonY:         rl.GamepadButtonRightFaceUp,
	input.ButtonL1:        rl.GamepadButtonLeftTrigger1,
	input.ButtonR1:        rl.GamepadButtonRightTrigger1,
	input.ButtonL3:        rl.GamepadButtonLeftThumb,
	input.ButtonR3:        rl.GamepadButtonRightThumb,
	input.ButtonSelect:    rl.GamepadButtonMiddleLeft,
	input.ButtonMenu:      rl.GamepadButtonMiddle,
	input.ButtonStart:     rl.GamepadButtonMiddleRight,
	input.ButtonDpadUp:    rl.GamepadButtonLeftFaceUp,
	input.ButtonDpadDown:  rl.GamepadButtonLeftFaceDown,
	input.ButtonDpadLeft:  rl.GamepadButtonLeftFaceLeft,
	input.ButtonDpadRight: rl.GamepadButtonLeftFaceRight,
}

// keyboardKeys is the development fallback used when no gamepad is present.
var keyboardKeys = map[input.Button]int32{
	input.ButtonA:         rl.KeyEnter,
	input.ButtonB:         rl.KeyBackspace,
	input.ButtonMenu:      rl.KeyEscape,
	input.ButtonDpadUp:    rl.KeyUp,
	input.ButtonDpadDown:  rl.KeyDown,
	input.ButtonDpadLeft:  rl.KeyLeft,
	input.ButtonDpadRight: rl.KeyRight,
}

// gamepadPoller turns raylib's per-frame button state into the discrete
// press/release transitions the tracker expects.
type gamepadPoller struct {
	keyboardFallback bool
	down             map[input.Button]bool
}

func newGamepadPoller(keyboardFallback bool) *gamepadPoller {
	return &gamepadPoller{
		keyboardFallback: keyboardFallback,
		down:             make(map[input.Button]bool),
	}
}

func (p *gamepadPoller) feed(tr *input.Tracker) {
	for _, b := range input.Buttons() {
		now := p.isDown(b)
		prev := p.down[b]
		switch {
		case now && !prev:
			tr.Press(b)
		case !now && prev:
			tr.Release(b)
		}
		p.down[b] = now
	}
}

func (p *gamepadPoller) isDown(b input.Button) bool {
	if rl.IsGamepadAvailable(0) && rl.IsGamepadButtonDown(0, gamepadButtons[b]) {
		return true
	}
	if p.keyboardFallback {
		if key, ok := keyboardKeys[b]; ok && rl.IsKeyDown(key) {
			return true
		}
	}
	return false
}

// loadGamepadMappings applies controller mappings from the environment: a
// mapping string is applied directly, anything else is treated as a file
// path. Failures are logged, never fatal.
func loadGamepadMappings() {
	value := os.Getenv(mappingEnvVar)
	if value == "" {
		logrus.Info("No controller mappings configured, using defaults")
		return
	}

	if strings.Contains(value, ",") && !strings.HasSuffix(value, ".txt") && !strings.HasSuffix(value, ".cfg") {
		if rl.SetGamepadMappings(value) == 0 {
			logrus.Warn("Failed to apply controller mapping from environment")
			return
		}
		logrus.Info("Loaded controller mapping from environment")
		return
	}

	data, err := os.ReadFile(value)
	if err != nil {
		logrus.WithError(err).WithField("path", value).Warn("Controller mapping file not readable")
		return
	}
	if rl.SetGamepadMappings(string(data)) == 0 {
		logrus.WithField("path", value).Warn("Failed to apply controller mappings from file")
		return
	}
	logrus.WithField("path", value).Info("Loaded controller mappings from file")
}
