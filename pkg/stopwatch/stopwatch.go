// Package stopwatch holds the state of a single stopwatch: the elapsed
// second counter, the running flag, and the handle of the one recurring
// tick source that drives it.
//
// The package does not own a timer. Callers schedule ticks on their own
// event loop and deliver them back through Tick with the handle returned
// by StartStop. Ticks carrying any other handle are dropped, so only one
// tick source can ever advance a Stopwatch.
package stopwatch

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Interval is the period of the tick source.
const Interval = time.Second

const secondsPerMinute = 60

var lastID atomic.Int64

func nextID() int64 {
	return lastID.Add(1)
}

// State is the coarse state of a Stopwatch.
type State int

const (
	// Idle means no tick source is live. Elapsed may be zero or not.
	Idle State = iota
	// Running means exactly one tick source is live.
	Running
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	default:
		return "idle"
	}
}

// TickHandle identifies one recurring tick source. The zero value is
// never live.
type TickHandle struct {
	id  int64
	seq int
}

// Stopwatch counts whole seconds while running.
type Stopwatch struct {
	id      int64
	seq     int
	elapsed int
	running bool
	closed  bool
}

// New returns an idle stopwatch at zero.
func New() Stopwatch {
	return Stopwatch{id: nextID()}
}

// StartStop toggles the running flag. When the stopwatch starts, a fresh
// handle is acquired and returned with true; the caller must schedule
// the first tick for it. When it stops, the handle is released and the
// elapsed count is kept.
func (s *Stopwatch) StartStop() (TickHandle, bool) {
	if s.closed {
		return TickHandle{}, false
	}
	if s.running {
		s.running = false
		return TickHandle{}, false
	}
	s.running = true
	s.seq++
	return s.handle(), true
}

// Tick applies one tick delivered for h. It reports whether the tick was
// counted, which is also whether the caller should schedule the next one.
func (s *Stopwatch) Tick(h TickHandle) bool {
	if !s.live(h) {
		return false
	}
	s.elapsed++
	return true
}

// Reset zeroes the counter and stops the stopwatch, releasing any live
// handle. It is safe to call in any state.
func (s *Stopwatch) Reset() {
	s.elapsed = 0
	s.running = false
}

// Close tears the stopwatch down. A closed stopwatch never starts again
// and ignores every tick.
func (s *Stopwatch) Close() {
	s.running = false
	s.closed = true
}

// Elapsed returns the accumulated seconds since the last reset.
func (s *Stopwatch) Elapsed() int {
	return s.elapsed
}

// Running reports whether a tick source is live.
func (s *Stopwatch) Running() bool {
	return s.running
}

// State returns Running or Idle.
func (s *Stopwatch) State() State {
	if s.running {
		return Running
	}
	return Idle
}

// Handle returns the live handle, if any.
func (s *Stopwatch) Handle() (TickHandle, bool) {
	if !s.running {
		return TickHandle{}, false
	}
	return s.handle(), true
}

// Closed reports whether Close has been called.
func (s *Stopwatch) Closed() bool {
	return s.closed
}

// CanReset reports whether resetting would change anything visible.
// Reset itself does not consult it.
func (s *Stopwatch) CanReset() bool {
	return s.elapsed != 0
}

// String returns the formatted elapsed time.
func (s *Stopwatch) String() string {
	return Format(s.elapsed)
}

func (s *Stopwatch) handle() TickHandle {
	return TickHandle{id: s.id, seq: s.seq}
}

func (s *Stopwatch) live(h TickHandle) bool {
	return s.running && !s.closed && h.seq != 0 && h == s.handle()
}

// Format renders seconds as zero-padded MM:SS. Minutes are not clamped,
// so 6000 renders as "100:00". Negative values render as "00:00".
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/secondsPerMinute, seconds%secondsPerMinute)
}
