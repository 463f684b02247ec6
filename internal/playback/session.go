package playback

import (
	"time"

	"github.com/llehouerou/pitrio/internal/player"
)

// SessionID identifies one playback attempt. IDs increase monotonically for
// the life of the coordinator; 0 means "no session".
//
// Every progress sample is stamped with the session that produced it. A
// monitor for an evicted track only notices the eviction on its next poll, so
// it can emit one or two samples after a new track has already started;
// consumers drop samples whose ID is not the currently installed session.
type SessionID uint64

// session bundles the state of one in-progress playback attempt. The sink is
// shared between the engine goroutine (completion waiter) and the progress
// monitor; both exit on their own once the sink reports empty.
type session struct {
	id    SessionID
	sink  player.Sink
	start time.Time
	total time.Duration
}
