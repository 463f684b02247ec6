package playback

// Sample is one progress observation: elapsed and total playback time in
// whole seconds. Total == 0 means the duration is unknown. Elapsed never
// exceeds Total when Total is known.
type Sample struct {
	Session SessionID
	Elapsed uint64
	Total   uint64
}

// Complete reports whether the sample shows the track fully played. Unknown
// durations never complete.
func (s Sample) Complete() bool {
	return s.Total > 0 && s.Elapsed >= s.Total
}

// Percent returns how much of the track has played, 0–100. Zero when the
// total is unknown.
func (s Sample) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Elapsed) / float64(s.Total) * 100
}

// LatestSample drains ch to exhaustion and returns the most recent sample
// belonging to current, collapsing burstiness: intermediate samples carry no
// information the latest one doesn't. Samples from other sessions are stale
// monitor output and are discarded. Returns false when nothing relevant was
// queued.
func LatestSample(ch <-chan Sample, current SessionID) (Sample, bool) {
	var last Sample
	var ok bool
	for {
		select {
		case s := <-ch:
			if s.Session == current {
				last = s
				ok = true
			}
		default:
			return last, ok
		}
	}
}
