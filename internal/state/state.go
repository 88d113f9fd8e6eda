// Package state holds the shared application state. Everything here is owned
// by the UI thread except RunState, which the randomization worker mutates
// and therefore carries its own lock.
package state

import (
	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/romfs"
)

// Step identifies the top-level screen.
type Step int

const (
	StepSelectROM Step = iota
	StepRandomizeROM
)

// ExitMenuState tracks the modal exit-confirmation overlay. Option 0 is
// confirm, option 1 is cancel; cancel is the default highlight.
type ExitMenuState struct {
	Exit         bool
	Show         bool
	SelectedItem int
}

// SelectState is the ROM browser's state: the scanned tree, the trail of
// descended nodes, and the highlight within the current directory.
type SelectState struct {
	Tree             *romfs.Node
	CurrentDir       *romfs.Node
	Selections       []*romfs.Node
	CurrentSelection int
	SelectedROM      string
}

// AppStatus is the aggregate root, one instance per process.
type AppStatus struct {
	CurrentStep Step
	ExitMenu    ExitMenuState
	Select      SelectState
	Randomize   RunState
}

// New builds the initial status around a freshly scanned tree.
func New(tree *romfs.Node) *AppStatus {
	st := &AppStatus{CurrentStep: StepSelectROM}
	st.ExitMenu.SelectedItem = 1
	st.SetTree(tree)
	return st
}

// SetTree installs a tree, points the browser at its root and resets the
// highlight and the descent trail.
func (s *AppStatus) SetTree(tree *romfs.Node) {
	s.Select.Tree = tree
	s.Select.CurrentDir = tree
	s.Select.Selections = nil
	s.Select.CurrentSelection = 0
}

// NextStep advances the workflow. Re-entering the randomize screen is a
// no-op.
func (s *AppStatus) NextStep() {
	if s.CurrentStep == StepSelectROM {
		s.CurrentStep = StepRandomizeROM
	}
}

// PreviousStep returns from the randomize screen to selection, installing the
// given freshly rebuilt tree and fully resetting both selection and run
// state. Callers must gate on the run not being active.
func (s *AppStatus) PreviousStep(tree *romfs.Node) {
	if s.CurrentStep != StepRandomizeROM {
		return
	}
	s.SetTree(tree)
	s.Select.SelectedROM = ""
	s.Randomize.Reset()
	s.CurrentStep = StepSelectROM
}
