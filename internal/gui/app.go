package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/config"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/input"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/randomize"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/romfs"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/state"
)

// AppConfig carries the build identity injected by the linker.
type AppConfig struct {
	Version string
	Commit  string
}

// App wires the frame loop together: input polling into the tracker, view
// rendering onto the fixed 640x480 canvas, canvas blit to the window, then
// one navigation pass.
type App struct {
	cfg AppConfig
	app *config.Config
}

func NewApp(cfg AppConfig, appCfg *config.Config) *App {
	return &App{cfg: cfg, app: appCfg}
}

// Run blocks until the user confirms exit or the window manager closes the
// window. A non-nil error means startup failed; after startup nothing here
// returns an error.
func (a *App) Run() error {
	if a.app.Video.Fullscreen {
		rl.SetConfigFlags(rl.FlagVsyncHint | rl.FlagFullscreenMode)
	} else {
		rl.SetConfigFlags(rl.FlagVsyncHint)
	}
	rl.InitWindow(canvasWidth, canvasHeight, "Pokémon Randomizer")
	if !rl.IsWindowReady() {
		return fmt.Errorf("creating window failed")
	}
	defer rl.CloseWindow()

	rl.SetExitKey(0)
	rl.SetTargetFPS(int32(a.app.Video.TargetFPS))

	initTypography()
	defer shutdownTypography()

	loadGamepadMappings()
	if rl.IsGamepadAvailable(0) {
		logrus.WithField("name", rl.GetGamepadName(0)).Info("Found game controller")
	} else if !a.app.Input.KeyboardFallback {
		return fmt.Errorf("no game controllers found")
	}

	scanner, err := romfs.NewScanner(a.app.ROMs.MountRoots, a.app.ROMs.Extensions)
	if err != nil {
		return fmt.Errorf("building ROM scanner: %w", err)
	}
	st := state.New(scanner.Scan())

	watcher, err := romfs.NewWatcher(a.app.ROMs.MountRoots)
	if err != nil {
		logrus.WithError(err).Warn("Mount watching disabled")
		watcher = nil
	} else {
		defer watcher.Close()
	}

	tracker := input.NewTracker(a.app.RepeatDelay())
	view := NewView(a.cfg.Version, randomize.NewWorker(a.app), scanner.Scan)
	poller := newGamepadPoller(a.app.Input.KeyboardFallback)

	canvas := rl.LoadRenderTexture(canvasWidth, canvasHeight)
	defer rl.UnloadRenderTexture(canvas)

	logrus.Info("Entering main loop")
	for !rl.WindowShouldClose() {
		poller.feed(tracker)

		if watcher != nil && watcher.Stale() &&
			st.CurrentStep == state.StepSelectROM && !st.ExitMenu.Show {
			st.SetTree(scanner.Scan())
		}

		rl.BeginTextureMode(canvas)
		view.Render(st)
		rl.EndTextureMode()

		rl.BeginDrawing()
		rl.ClearBackground(colorBackground)
		blitCanvas(canvas)
		rl.EndDrawing()

		view.HandleNavigation(tracker, st)
		tracker.EndFrame()

		if st.ExitMenu.Exit {
			logrus.Info("Exit confirmed")
			break
		}
	}
	return nil
}

// blitCanvas scales the canvas onto the window preserving the 4:3 aspect
// ratio, centering with letterbox/pillarbox bars as needed.
func blitCanvas(canvas rl.RenderTexture2D) {
	winW := float32(rl.GetScreenWidth())
	winH := float32(rl.GetScreenHeight())

	scale := winW / canvasWidth
	if s := winH / canvasHeight; s < scale {
		scale = s
	}

	dstW := canvasWidth * scale
	dstH := canvasHeight * scale

	// Negative source height: render textures are stored bottom-up.
	src := rl.NewRectangle(0, 0, canvasWidth, -canvasHeight)
	dst := rl.NewRectangle((winW-dstW)/2, (winH-dstH)/2, dstW, dstH)
	rl.DrawTexturePro(canvas.Texture, src, dst, rl.Vector2{}, 0, rl.White)
}
