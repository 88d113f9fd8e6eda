// Package input tracks controller button state with press/hold/auto-repeat
// semantics. The event source and the UI frame loop touch the tracker from
// different goroutines, so all state lives behind one mutex.
package input

import (
	"sync"
	"time"
)

// DefaultRepeatDelay is how long a button must stay held before IsActive
// starts reporting it again.
const DefaultRepeatDelay = 350 * time.Millisecond

// Tracker records discrete button transitions and answers per-frame "is this
// button active" queries. A button is active on the frame it was pressed and,
// after the repeat delay, on every frame while it remains held. There is a
// single repeat tier; holding longer does not speed repeats up.
type Tracker struct {
	mu          sync.Mutex
	pressed     map[Button]bool
	held        map[Button]bool
	heldSince   map[Button]time.Time
	repeatDelay time.Duration

	now func() time.Time
}

// NewTracker returns a tracker with the given repeat delay; a non-positive
// delay falls back to DefaultRepeatDelay.
func NewTracker(repeatDelay time.Duration) *Tracker {
	if repeatDelay <= 0 {
		repeatDelay = DefaultRepeatDelay
	}
	return &Tracker{
		pressed:     make(map[Button]bool),
		held:        make(map[Button]bool),
		heldSince:   make(map[Button]time.Time),
		repeatDelay: repeatDelay,
		now:         time.Now,
	}
}

// Press records a down transition. The hold-start time is only written on the
// transition into held: a duplicate press event while already held must not
// reset the repeat timer.
func (t *Tracker) Press(b Button) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pressed[b] = true
	if !t.held[b] {
		t.held[b] = true
		t.heldSince[b] = t.now()
	}
}

// Release records an up transition, clearing held state and the hold timer.
func (t *Tracker) Release(b Button) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.held, b)
	delete(t.heldSince, b)
}

// IsActive reports whether the button should act this frame. A fresh press is
// consumed: at most one true per physical press until the repeat delay
// elapses, after which the button stays active while held.
func (t *Tracker) IsActive(b Button) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	active := t.pressed[b]
	delete(t.pressed, b)

	if since, ok := t.heldSince[b]; ok && t.held[b] {
		if t.now().Sub(since) >= t.repeatDelay {
			active = true
		}
	}
	return active
}

// IsHeld reports whether the button is currently down, without consuming
// anything.
func (t *Tracker) IsHeld(b Button) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.held[b]
}

// EndFrame drops all just-pressed flags; held state persists.
func (t *Tracker) EndFrame() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for b := range t.pressed {
		delete(t.pressed, b)
	}
}
