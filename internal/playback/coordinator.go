// Package playback owns the single-track playback core: the slot holding the
// one live sink, the engine that swaps tracks, the progress monitor, and the
// auto-advance decision.
package playback

import (
	"sync"
	"time"

	"github.com/llehouerou/pitrio/internal/player"
)

const (
	monitorInterval = 500 * time.Millisecond
	progressBuffer  = 64
	errorBuffer     = 8
)

// Error reports a failed play attempt. Play is fire-and-forget, so failures
// surface here instead of a return value.
type Error struct {
	Path string
	Err  error
}

func (e Error) Error() string {
	return "play " + e.Path + ": " + e.Err.Error()
}

func (e Error) Unwrap() error {
	return e.Err
}

// Coordinator guarantees at most one audible track at any instant. It is
// constructed once at the application root and shared by every task that
// needs playback control.
type Coordinator struct {
	opener player.Opener

	// mu guards the slot: the installed session and the ID counter.
	// Evicting and installing both stop the occupant inside the critical
	// section, so no caller ever observes two live sinks.
	mu      sync.Mutex
	current *session
	lastID  SessionID

	progress chan Sample
	errs     chan Error
}

func New(opener player.Opener) *Coordinator {
	return &Coordinator{
		opener:   opener,
		progress: make(chan Sample, progressBuffer),
		errs:     make(chan Error, errorBuffer),
	}
}

// Progress is the sample channel drained by the UI each tick.
func (c *Coordinator) Progress() <-chan Sample {
	return c.progress
}

// Errors carries failed play attempts to the UI.
func (c *Coordinator) Errors() <-chan Error {
	return c.errs
}

// Play starts path on a background goroutine and returns immediately so the
// caller stays responsive. Any failure is reported on Errors.
func (c *Coordinator) Play(path string) {
	go func() {
		if err := c.play(path); err != nil {
			select {
			case c.errs <- Error{Path: path, Err: err}:
			default:
			}
		}
	}()
}

func (c *Coordinator) play(path string) error {
	// Evict before we know the new track will open: switching fast beats
	// switching safely. A failed open leaves the slot empty and no track
	// audible.
	c.evict()

	sink, total, err := c.opener.Open(path)
	if err != nil {
		return err
	}

	sess := &session{
		sink:  sink,
		start: time.Now(),
		total: total,
	}
	c.install(sess)

	go c.monitor(sess)

	// This goroutine is the completion waiter: it stays alive for exactly
	// the track's lifetime so the sink's resources are released when it
	// exits.
	sink.Wait()
	return nil
}

// evict stops and discards the installed session, leaving the slot empty.
func (c *Coordinator) evict() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil {
		c.current.sink.Stop()
		c.current = nil
	}
}

// install stores sess as the active session, stopping any occupant first.
// Two racing Play calls can both pass evict; whichever installs last wins and
// the loser's sink is stopped here.
func (c *Coordinator) install(sess *session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil {
		c.current.sink.Stop()
	}
	c.lastID++
	sess.id = c.lastID
	c.current = sess
}

// TogglePause flips the pause state of the installed session. No-op when the
// slot is empty. Pausing never changes which session is active.
func (c *Coordinator) TogglePause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return
	}
	if c.current.sink.IsPaused() {
		c.current.sink.Resume()
	} else {
		c.current.sink.Pause()
	}
}

// IsPaused reports the pause state of the installed session, false when the
// slot is empty.
func (c *Coordinator) IsPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return false
	}
	return c.current.sink.IsPaused()
}

// CurrentSession returns the ID of the installed session, 0 when none.
func (c *Coordinator) CurrentSession() SessionID {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return 0
	}
	return c.current.id
}

// Stop evicts the installed session without starting a new one.
func (c *Coordinator) Stop() {
	c.evict()
}
