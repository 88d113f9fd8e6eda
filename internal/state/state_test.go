package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/romfs"
)

func testTree() *romfs.Node {
	file := &romfs.Node{Name: "red.gb", Path: "/mnt/mmc/ROMS/red.gb", IsFile: true}
	dir := &romfs.Node{Name: "SD1/", Path: "/mnt/mmc/ROMS", Children: []*romfs.Node{file}}
	return &romfs.Node{Name: "root", Path: romfs.RootPath, Children: []*romfs.Node{dir}}
}

func TestNextStepOnlyAdvancesFromSelect(t *testing.T) {
	st := New(testTree())
	require.Equal(t, StepSelectROM, st.CurrentStep)

	st.NextStep()
	assert.Equal(t, StepRandomizeROM, st.CurrentStep)

	// Idempotent re-entry guard.
	st.NextStep()
	assert.Equal(t, StepRandomizeROM, st.CurrentStep)
}

func TestPreviousStepResetsEverything(t *testing.T) {
	st := New(testTree())
	st.Select.SelectedROM = "/mnt/mmc/ROMS/red.gb"
	st.Select.Selections = st.Select.Tree.Children
	st.Select.CurrentSelection = 3
	st.NextStep()

	st.Randomize.StartIfIdle()
	st.Randomize.AppendLog("Starting randomization")
	st.Randomize.EndAttempted()

	fresh := testTree()
	st.PreviousStep(fresh)

	assert.Equal(t, StepSelectROM, st.CurrentStep)
	assert.Same(t, fresh, st.Select.Tree)
	assert.Same(t, fresh, st.Select.CurrentDir)
	assert.Empty(t, st.Select.Selections)
	assert.Zero(t, st.Select.CurrentSelection)
	assert.Empty(t, st.Select.SelectedROM)
	assert.False(t, st.Randomize.Running())
	assert.False(t, st.Randomize.Finished())
	assert.Empty(t, st.Randomize.Logs())
}

func TestPreviousStepIgnoredOnSelectScreen(t *testing.T) {
	st := New(testTree())
	orig := st.Select.Tree
	st.PreviousStep(testTree())
	assert.Same(t, orig, st.Select.Tree)
}

func TestRunStateLifecycle(t *testing.T) {
	var run RunState

	require.True(t, run.StartIfIdle())
	assert.False(t, run.StartIfIdle(), "second start while running")

	run.EndRetryable()
	assert.False(t, run.Running())
	assert.False(t, run.Finished())
	require.True(t, run.StartIfIdle(), "validation failures are retryable")

	run.EndAttempted()
	assert.False(t, run.Running())
	assert.True(t, run.Finished())
	assert.False(t, run.StartIfIdle(), "finished run locks out retry")

	run.Reset()
	assert.True(t, run.StartIfIdle())
}

func TestTailLinesDropsBlanksAndTruncates(t *testing.T) {
	var run RunState
	run.AppendLog("first")
	run.AppendLog("")
	run.AppendLog("  ")
	for i := 0; i < 25; i++ {
		run.AppendLog("line")
	}

	tail := run.TailLines(20)
	require.Len(t, tail, 20)
	for _, line := range tail {
		assert.Equal(t, "line", line)
	}
}

func TestStartIfIdleSingleWinner(t *testing.T) {
	var run RunState

	var wg sync.WaitGroup
	wins := make(chan bool, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- run.StartIfIdle()
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for won := range wins {
		if won {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
