package player

import (
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// sink is a speaker-backed output sink. Each sink owns one beep.Ctrl; pausing
// and stopping touch only this sink's streamer, never other speaker content.
type sink struct {
	ctrl *beep.Ctrl

	done    chan struct{} // closed by the speaker callback when the stream drains
	stopped chan struct{} // closed by Stop

	stopOnce    sync.Once
	releaseOnce sync.Once
	release     func()
}

func newSink(stream beep.Streamer, release func()) *sink {
	s := &sink{
		ctrl:    &beep.Ctrl{Streamer: stream},
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		release: release,
	}
	speaker.Play(beep.Seq(s.ctrl, beep.Callback(func() {
		close(s.done)
	})))
	return s
}

func (s *sink) Pause() {
	speaker.Lock()
	s.ctrl.Paused = true
	speaker.Unlock()
}

func (s *sink) Resume() {
	speaker.Lock()
	s.ctrl.Paused = false
	speaker.Unlock()
}

func (s *sink) IsPaused() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return s.ctrl.Paused
}

// Stop silences the sink immediately and irreversibly. Detaching the streamer
// makes the Ctrl report completion on the next speaker fill, which lets the
// pending Callback run and the speaker drop the sequence on its own.
func (s *sink) Stop() {
	s.stopOnce.Do(func() {
		speaker.Lock()
		s.ctrl.Streamer = nil
		s.ctrl.Paused = false
		speaker.Unlock()
		close(s.stopped)
	})
}

func (s *sink) Empty() bool {
	select {
	case <-s.done:
		return true
	case <-s.stopped:
		return true
	default:
		return false
	}
}

// Wait blocks until the sink drains or is stopped, then releases the decoded
// stream and its backing file.
func (s *sink) Wait() {
	select {
	case <-s.done:
	case <-s.stopped:
	}
	s.releaseOnce.Do(s.release)
}
