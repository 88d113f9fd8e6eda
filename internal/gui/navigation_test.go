package gui

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/input"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/romfs"
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/state"
)

// press delivers one discrete button press to a fresh frame.
func press(tr *input.Tracker, b input.Button) {
	tr.EndFrame()
	tr.Press(b)
}

func browserTree() *romfs.Node {
	red := &romfs.Node{Name: "red.gb", Path: "/mnt/mmc/ROMS/gb/red.gb", IsFile: true}
	blue := &romfs.Node{Name: "blue.gb", Path: "/mnt/mmc/ROMS/gb/blue.gb", IsFile: true}
	gb := &romfs.Node{Name: "gb/", Path: "/mnt/mmc/ROMS/gb", Children: []*romfs.Node{red, blue}}
	emerald := &romfs.Node{Name: "emerald.gba", Path: "/mnt/mmc/ROMS/emerald.gba", IsFile: true}
	sd1 := &romfs.Node{Name: "SD1/", Path: "/mnt/mmc/ROMS", Children: []*romfs.Node{gb, emerald}}
	return &romfs.Node{Name: "root", Path: romfs.RootPath, Children: []*romfs.Node{sd1}}
}

// recordingRunner counts Run invocations without doing any work.
type recordingRunner struct {
	calls atomic.Int32
	ends  chan struct{}
}

func (r *recordingRunner) Run(st *state.AppStatus) {
	r.calls.Add(1)
	if r.ends != nil {
		r.ends <- struct{}{}
	}
}

func newBrowser() (*SelectROM, *input.Tracker, *state.AppStatus) {
	return NewSelectROM(), input.NewTracker(input.DefaultRepeatDelay), state.New(browserTree())
}

func TestBrowserHighlightWrapsAround(t *testing.T) {
	browser, tr, st := newBrowser()

	// Descend into SD1, which holds two entries.
	press(tr, input.ButtonA)
	browser.HandleNavigation(tr, st)
	require.Equal(t, "/mnt/mmc/ROMS", st.Select.CurrentDir.Path)

	press(tr, input.ButtonDpadUp)
	browser.HandleNavigation(tr, st)
	assert.Equal(t, 1, st.Select.CurrentSelection, "up from top wraps to bottom")

	press(tr, input.ButtonDpadDown)
	browser.HandleNavigation(tr, st)
	assert.Equal(t, 0, st.Select.CurrentSelection, "down from bottom wraps to top")
}

func TestBrowserSelectFileTransitionsStep(t *testing.T) {
	browser, tr, st := newBrowser()

	press(tr, input.ButtonA) // into SD1
	browser.HandleNavigation(tr, st)
	press(tr, input.ButtonDpadDown) // highlight emerald.gba
	browser.HandleNavigation(tr, st)
	press(tr, input.ButtonA)
	browser.HandleNavigation(tr, st)

	assert.Equal(t, state.StepRandomizeROM, st.CurrentStep)
	assert.Equal(t, "/mnt/mmc/ROMS/emerald.gba", st.Select.SelectedROM)
}

func TestBrowserDescendAndBackRewalksByPath(t *testing.T) {
	browser, tr, st := newBrowser()

	press(tr, input.ButtonA) // into SD1
	browser.HandleNavigation(tr, st)
	press(tr, input.ButtonA) // into gb/
	browser.HandleNavigation(tr, st)
	require.Equal(t, "/mnt/mmc/ROMS/gb", st.Select.CurrentDir.Path)
	require.Len(t, st.Select.Selections, 2)

	press(tr, input.ButtonB)
	browser.HandleNavigation(tr, st)
	assert.Equal(t, "/mnt/mmc/ROMS", st.Select.CurrentDir.Path)
	assert.Equal(t, 0, st.Select.CurrentSelection)
	assert.Len(t, st.Select.Selections, 1)
}

func TestBrowserBackAtRootIsNoOp(t *testing.T) {
	browser, tr, st := newBrowser()

	press(tr, input.ButtonB)
	browser.HandleNavigation(tr, st)
	assert.Equal(t, romfs.RootPath, st.Select.CurrentDir.Path)
	assert.Empty(t, st.Select.Selections)
}

func TestExitMenuSelectionSemantics(t *testing.T) {
	menu := NewExitMenu()
	tr := input.NewTracker(input.DefaultRepeatDelay)
	st := state.New(browserTree())
	st.ExitMenu.Show = true

	press(tr, input.ButtonDpadUp)
	menu.HandleNavigation(tr, st)
	assert.Equal(t, 0, st.ExitMenu.SelectedItem, "up from cancel wraps to confirm")

	press(tr, input.ButtonA)
	menu.HandleNavigation(tr, st)
	assert.True(t, st.ExitMenu.Exit)
	assert.Equal(t, 1, st.ExitMenu.SelectedItem, "highlight resets to cancel after select")

	// Cancel path: selecting option 1 hides the overlay.
	st.ExitMenu.Exit = false
	press(tr, input.ButtonA)
	menu.HandleNavigation(tr, st)
	assert.False(t, st.ExitMenu.Exit)
	assert.False(t, st.ExitMenu.Show)
	assert.Equal(t, 1, st.ExitMenu.SelectedItem)
}

func TestViewMenuButtonTogglesOverlay(t *testing.T) {
	runner := &recordingRunner{}
	view := NewView("1.0.0", runner, browserTree)
	tr := input.NewTracker(input.DefaultRepeatDelay)
	st := state.New(browserTree())
	st.ExitMenu.SelectedItem = 0

	press(tr, input.ButtonMenu)
	view.HandleNavigation(tr, st)
	assert.True(t, st.ExitMenu.Show)
	assert.Equal(t, 1, st.ExitMenu.SelectedItem, "toggle resets highlight to cancel")

	press(tr, input.ButtonMenu)
	view.HandleNavigation(tr, st)
	assert.False(t, st.ExitMenu.Show)
}

func TestViewOverlayCapturesInput(t *testing.T) {
	runner := &recordingRunner{}
	view := NewView("1.0.0", runner, browserTree)
	tr := input.NewTracker(input.DefaultRepeatDelay)
	st := state.New(browserTree())
	st.ExitMenu.Show = true

	// A select on the overlay's default (cancel) hides it; the browser below
	// must not also act on the same press.
	press(tr, input.ButtonA)
	view.HandleNavigation(tr, st)
	assert.False(t, st.ExitMenu.Show)
	assert.Equal(t, state.StepSelectROM, st.CurrentStep)
	assert.Empty(t, st.Select.Selections)
}

func TestRandomizeStartSpawnsSingleWorker(t *testing.T) {
	runner := &recordingRunner{ends: make(chan struct{}, 1)}
	screen := NewRandomizeROM(runner, browserTree)
	tr := input.NewTracker(input.DefaultRepeatDelay)
	st := state.New(browserTree())
	st.Select.SelectedROM = "/mnt/mmc/ROMS/emerald.gba"
	st.NextStep()

	press(tr, input.ButtonA)
	screen.HandleNavigation(tr, st)
	require.True(t, st.Randomize.Running())

	// Mashing A while the run is in flight must not spawn another worker.
	press(tr, input.ButtonA)
	screen.HandleNavigation(tr, st)
	press(tr, input.ButtonA)
	screen.HandleNavigation(tr, st)

	select {
	case <-runner.ends:
	case <-time.After(2 * time.Second):
		t.Fatal("worker never ran")
	}
	assert.Equal(t, int32(1), runner.calls.Load())
}

func TestRandomizeBackGatedOnRunning(t *testing.T) {
	runner := &recordingRunner{}
	screen := NewRandomizeROM(runner, browserTree)
	tr := input.NewTracker(input.DefaultRepeatDelay)
	st := state.New(browserTree())
	st.Select.SelectedROM = "/mnt/mmc/ROMS/emerald.gba"
	st.NextStep()

	require.True(t, st.Randomize.StartIfIdle())
	press(tr, input.ButtonB)
	screen.HandleNavigation(tr, st)
	assert.Equal(t, state.StepRandomizeROM, st.CurrentStep, "back while running is a no-op")

	st.Randomize.EndAttempted()
	press(tr, input.ButtonB)
	screen.HandleNavigation(tr, st)
	assert.Equal(t, state.StepSelectROM, st.CurrentStep)
	assert.False(t, st.Randomize.Finished(), "run state fully reset on back")
	assert.Empty(t, st.Select.SelectedROM)
}
