package playback

import "time"

// monitor samples playback position every monitorInterval until the sink
// drains, then emits one final (total, total) sample so a consumer that
// missed every earlier sample still observes completion.
//
// There is no cancellation signal. An evicted session's monitor sees the sink
// empty on its next poll and exits on its own, at most one interval late.
func (c *Coordinator) monitor(sess *session) {
	total := uint64(sess.total / time.Second)

	var pausedFor time.Duration
	lastCheck := time.Now()

	ticker := time.NewTicker(monitorInterval)
	defer ticker.Stop()

	for !sess.sink.Empty() {
		now := time.Now()

		// Time spent paused does not count as elapsed.
		if sess.sink.IsPaused() {
			pausedFor += now.Sub(lastCheck)
		}
		lastCheck = now

		played := now.Sub(sess.start) - pausedFor
		if played < 0 {
			played = 0
		}
		elapsed := uint64(played / time.Second)
		if total > 0 && elapsed > total {
			elapsed = total
		}

		c.send(Sample{Session: sess.id, Elapsed: elapsed, Total: total})
		<-ticker.C
	}

	c.send(Sample{Session: sess.id, Elapsed: total, Total: total})
}

// send is best-effort: a full channel or absent consumer must never stall the
// monitor, so samples are dropped instead.
func (c *Coordinator) send(s Sample) {
	select {
	case c.progress <- s:
	default:
	}
}
