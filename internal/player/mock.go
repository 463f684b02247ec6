package player

import (
	"sync"
	"time"
)

// MockSink is a test double for Sink. It plays nothing; tests drive it by
// calling Finish to simulate the stream draining.
type MockSink struct {
	mu      sync.Mutex
	paused  bool
	stopped bool

	done    chan struct{}
	endOnce sync.Once
}

func NewMockSink() *MockSink {
	return &MockSink{
		done: make(chan struct{}),
	}
}

func (m *MockSink) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.stopped {
		m.paused = true
	}
}

func (m *MockSink) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.stopped {
		m.paused = false
	}
}

func (m *MockSink) IsPaused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paused
}

func (m *MockSink) Stop() {
	m.mu.Lock()
	m.stopped = true
	m.paused = false
	m.mu.Unlock()
	m.endOnce.Do(func() { close(m.done) })
}

func (m *MockSink) Empty() bool {
	select {
	case <-m.done:
		return true
	default:
		return false
	}
}

func (m *MockSink) Wait() {
	<-m.done
}

// Test helpers

// Finish simulates the stream draining naturally.
func (m *MockSink) Finish() {
	m.endOnce.Do(func() { close(m.done) })
}

// Stopped reports whether Stop was called.
func (m *MockSink) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

// MockOpener is a test double for Opener. Each Open call hands out a fresh
// MockSink and records it along with the requested path.
type MockOpener struct {
	mu       sync.Mutex
	duration time.Duration
	openErr  error
	opened   []string
	sinks    []*MockSink
}

func NewMockOpener() *MockOpener {
	return &MockOpener{}
}

func (m *MockOpener) Open(path string) (Sink, time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opened = append(m.opened, path)
	if m.openErr != nil {
		return nil, 0, m.openErr
	}
	s := NewMockSink()
	m.sinks = append(m.sinks, s)
	return s, m.duration, nil
}

func (m *MockOpener) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
}

func (m *MockOpener) SetOpenError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.openErr = err
}

func (m *MockOpener) Opened() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.opened...)
}

func (m *MockOpener) Sinks() []*MockSink {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*MockSink(nil), m.sinks...)
}

// LastSink returns the most recently opened sink, or nil.
func (m *MockOpener) LastSink() *MockSink {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sinks) == 0 {
		return nil
	}
	return m.sinks[len(m.sinks)-1]
}

// Verify mocks implement the contracts at compile time.
var (
	_ Opener = (*MockOpener)(nil)
	_ Sink   = (*MockSink)(nil)
)
