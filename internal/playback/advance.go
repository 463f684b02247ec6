package playback

import "time"

// DebounceWindow is how long a track must continuously look finished before
// auto-advance fires. Progress samples are clamped to the total slightly
// before the sink physically empties (monitor cadence granularity), so
// advancing on the first elapsed>=total sample could cut off trailing audio.
const DebounceWindow = 700 * time.Millisecond

// AutoAdvance decides when a finished track should trigger the next one.
//
// It is a pure state machine with no goroutines or timers of its own: the UI
// loop calls Observe once per tick, after draining the progress channel, and
// acts when it returns true. Keeping the decision out of the render path
// makes it testable without a terminal backend.
//
// States:
//   - idle: no pending end observation
//   - end observed: the latest sample showed elapsed >= total while unpaused;
//     holds until the condition breaks or the debounce window passes
//
// Pause suppresses end detection entirely, so a track paused exactly at its
// end is never treated as finished. An unknown total (0) never advances.
type AutoAdvance struct {
	window   time.Duration
	endAt    time.Time
	observed bool
}

func NewAutoAdvance() *AutoAdvance {
	return &AutoAdvance{window: DebounceWindow}
}

// Observe feeds the latest drained sample and the current pause state into
// the machine. It returns true exactly once per track end, after the end
// condition has held for longer than the debounce window.
func (a *AutoAdvance) Observe(elapsed, total uint64, paused bool, now time.Time) bool {
	if total == 0 || elapsed < total || paused {
		a.observed = false
		return false
	}

	if !a.observed {
		a.observed = true
		a.endAt = now
		return false
	}

	if now.Sub(a.endAt) > a.window {
		a.observed = false
		return true
	}
	return false
}

// Reset clears any pending end observation. Called when a new track starts so
// leftover state from the previous one cannot trigger a spurious advance.
func (a *AutoAdvance) Reset() {
	a.observed = false
}
