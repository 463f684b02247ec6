package player

import "time"

// Opener is the decoder/output capability consumed by the playback
// coordinator: it turns a file path into a live sink plus the track's total
// duration (0 when the format does not expose one).
type Opener interface {
	Open(path string) (Sink, time.Duration, error)
}

// Sink accepts decoded audio for output. A sink starts playing immediately
// when created and exposes pause/resume/stop/empty queries.
//
// Stop is irreversible: a stopped sink can never resume and must be
// discarded. Wait blocks until the sink drains naturally or is stopped.
type Sink interface {
	Pause()
	Resume()
	IsPaused() bool
	Stop()
	Empty() bool
	Wait()
}

// Verify implementations at compile time.
var (
	_ Opener = (*Output)(nil)
	_ Sink   = (*sink)(nil)
)
