package playback

import "testing"

func TestSample_Complete(t *testing.T) {
	tests := []struct {
		name   string
		sample Sample
		want   bool
	}{
		{"mid-track", Sample{Elapsed: 3, Total: 10}, false},
		{"at end", Sample{Elapsed: 10, Total: 10}, true},
		{"clamp overshoot", Sample{Elapsed: 11, Total: 10}, true},
		{"unknown duration", Sample{Elapsed: 500, Total: 0}, false},
		{"start", Sample{Elapsed: 0, Total: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sample.Complete(); got != tt.want {
				t.Errorf("Complete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSample_Percent(t *testing.T) {
	tests := []struct {
		name   string
		sample Sample
		want   float64
	}{
		{"half", Sample{Elapsed: 5, Total: 10}, 50},
		{"full", Sample{Elapsed: 10, Total: 10}, 100},
		{"unknown total", Sample{Elapsed: 42, Total: 0}, 0},
		{"start", Sample{Elapsed: 0, Total: 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sample.Percent(); got != tt.want {
				t.Errorf("Percent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLatestSample_DrainsToLatest(t *testing.T) {
	ch := make(chan Sample, 16)
	ch <- Sample{Session: 1, Elapsed: 1, Total: 10}
	ch <- Sample{Session: 1, Elapsed: 2, Total: 10}
	ch <- Sample{Session: 1, Elapsed: 3, Total: 10}

	s, ok := LatestSample(ch, 1)

	if !ok {
		t.Fatal("expected a sample")
	}
	if s.Elapsed != 3 {
		t.Errorf("Elapsed = %d, want 3 (most recent)", s.Elapsed)
	}
	if len(ch) != 0 {
		t.Errorf("channel should be drained, %d left", len(ch))
	}
}

func TestLatestSample_DiscardsStaleSessions(t *testing.T) {
	ch := make(chan Sample, 16)
	// Stale monitor from an evicted track emits after the new one started.
	ch <- Sample{Session: 1, Elapsed: 10, Total: 10}
	ch <- Sample{Session: 2, Elapsed: 1, Total: 240}
	ch <- Sample{Session: 1, Elapsed: 10, Total: 10}

	s, ok := LatestSample(ch, 2)

	if !ok {
		t.Fatal("expected a sample for session 2")
	}
	if s.Session != 2 || s.Elapsed != 1 {
		t.Errorf("sample = %+v, want session 2 elapsed 1", s)
	}
}

func TestLatestSample_EmptyChannel(t *testing.T) {
	ch := make(chan Sample, 16)

	if _, ok := LatestSample(ch, 1); ok {
		t.Error("expected no sample from an empty channel")
	}
}

func TestLatestSample_OnlyStaleSamples(t *testing.T) {
	ch := make(chan Sample, 16)
	ch <- Sample{Session: 7, Elapsed: 10, Total: 10}

	if _, ok := LatestSample(ch, 8); ok {
		t.Error("stale-only channel should report no sample")
	}
}
