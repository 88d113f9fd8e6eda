package input

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// testClock drives the tracker's notion of time without sleeping.
type testClock struct {
	now time.Time
}

func (c *testClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestTracker() (*Tracker, *testClock) {
	clock := &testClock{now: time.Unix(1000, 0)}
	tr := NewTracker(DefaultRepeatDelay)
	tr.now = func() time.Time { return clock.now }
	return tr, clock
}

func TestFreshPressActiveExactlyOnce(t *testing.T) {
	tr, _ := newTestTracker()

	tr.Press(ButtonA)
	assert.True(t, tr.IsActive(ButtonA))
	// The transient flag is consumed by the first query.
	assert.False(t, tr.IsActive(ButtonA))

	tr.EndFrame()
	assert.False(t, tr.IsActive(ButtonA))
	assert.True(t, tr.IsHeld(ButtonA))
}

func TestHeldBelowRepeatDelayStaysInactive(t *testing.T) {
	tr, clock := newTestTracker()

	tr.Press(ButtonDpadDown)
	assert.True(t, tr.IsActive(ButtonDpadDown))
	tr.EndFrame()

	clock.advance(349 * time.Millisecond)
	assert.False(t, tr.IsActive(ButtonDpadDown))
}

func TestHeldPastRepeatDelayRepeatsEveryQuery(t *testing.T) {
	tr, clock := newTestTracker()

	tr.Press(ButtonDpadDown)
	tr.IsActive(ButtonDpadDown)
	tr.EndFrame()

	clock.advance(350 * time.Millisecond)
	// No re-arm logic: once past the threshold every query while held is true.
	assert.True(t, tr.IsActive(ButtonDpadDown))
	assert.True(t, tr.IsActive(ButtonDpadDown))

	tr.Release(ButtonDpadDown)
	assert.False(t, tr.IsActive(ButtonDpadDown))
}

func TestRepressWhileHeldDoesNotResetHoldStart(t *testing.T) {
	tr, clock := newTestTracker()

	tr.Press(ButtonA)
	tr.IsActive(ButtonA)
	tr.EndFrame()

	clock.advance(300 * time.Millisecond)
	// A duplicate down event from the source must not restart the timer.
	tr.Press(ButtonA)
	tr.EndFrame()

	clock.advance(50 * time.Millisecond)
	assert.True(t, tr.IsActive(ButtonA))
}

func TestReleaseClearsHoldState(t *testing.T) {
	tr, clock := newTestTracker()

	tr.Press(ButtonB)
	tr.Release(ButtonB)
	// Press flag from before the release is still consumable this frame.
	assert.True(t, tr.IsActive(ButtonB))
	assert.False(t, tr.IsHeld(ButtonB))

	clock.advance(time.Second)
	assert.False(t, tr.IsActive(ButtonB))
}

func TestEndFrameKeepsHeldButtons(t *testing.T) {
	tr, clock := newTestTracker()

	tr.Press(ButtonX)
	tr.EndFrame()

	assert.True(t, tr.IsHeld(ButtonX))
	clock.advance(400 * time.Millisecond)
	assert.True(t, tr.IsActive(ButtonX))
}

func TestConcurrentAccess(t *testing.T) {
	tr := NewTracker(DefaultRepeatDelay)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				for _, b := range Buttons() {
					tr.Press(b)
					tr.IsActive(b)
					tr.Release(b)
				}
				tr.EndFrame()
			}
		}()
	}
	wg.Wait()
}
