package state

import (
	"strings"
	"sync"
)

// RunState is the randomization run's running/finished/logs triple. One mutex
// guards all three: the worker takes it on every mutation, the UI thread on
// every read, and no caller ever holds it across blocking work.
type RunState struct {
	mu       sync.Mutex
	running  bool
	finished bool
	logs     strings.Builder
}

// StartIfIdle atomically claims the run slot. It returns false while a run is
// in flight or after a fully-attempted run finished; retry after a finished
// run requires going back to the selection screen first.
func (r *RunState) StartIfIdle() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running || r.finished {
		return false
	}
	r.running = true
	return true
}

// EndRetryable marks a validation failure: not running, not finished, so the
// user may press the action button again.
func (r *RunState) EndRetryable() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.running = false
}

// EndAttempted marks a fully-attempted invocation, success or failure. The
// run is locked out until the state is reset by going back.
func (r *RunState) EndAttempted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.running = false
	r.finished = true
}

// Running reports whether a worker is in flight.
func (r *RunState) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Finished reports whether a full attempt completed.
func (r *RunState) Finished() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.finished
}

// AppendLog adds one line to the run log. The underlying text is unbounded;
// display trimming happens in TailLines.
func (r *RunState) AppendLog(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs.WriteString(line)
	r.logs.WriteString("\n")
}

// Logs returns the accumulated log text.
func (r *RunState) Logs() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.logs.String()
}

// TailLines returns the most recent n non-blank log lines for display.
func (r *RunState) TailLines(n int) []string {
	r.mu.Lock()
	text := r.logs.String()
	r.mu.Unlock()

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}

// Reset clears the triple back to idle. Called when leaving the randomize
// screen.
func (r *RunState) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.running = false
	r.finished = false
	r.logs.Reset()
}
