// Package player provides the beep-backed decoder and output sink used by
// the playback coordinator.
package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
	extOGG  = ".ogg"

	resampleQuality = 4
)

// The speaker is initialized once, at the sample rate of the first track.
// Later tracks with a different rate are resampled to match.
var (
	speakerOnce sync.Once
	speakerRate beep.SampleRate
	speakerErr  error
)

// Output decodes audio files and plays them through the system speaker.
type Output struct{}

func New() *Output {
	return &Output{}
}

// Open decodes path and starts playing it on a fresh sink, unpaused.
// The returned duration is 0 when the stream does not expose its length.
func (o *Output) Open(path string) (Sink, time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}

	streamer, format, err := decode(f, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	if err := initSpeaker(format.SampleRate); err != nil {
		streamer.Close()
		f.Close()
		return nil, 0, fmt.Errorf("%w: %v", ErrOutputDevice, err)
	}

	var total time.Duration
	if n := streamer.Len(); n > 0 {
		total = format.SampleRate.D(n)
	}

	// Resample if the track's sample rate differs from the speaker's
	var play beep.Streamer = streamer
	if format.SampleRate != speakerRate {
		play = beep.Resample(resampleQuality, format.SampleRate, speakerRate, streamer)
	}

	s := newSink(play, func() {
		streamer.Close()
		f.Close()
	})
	return s, total, nil
}

func decode(f *os.File, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext {
	case extMP3:
		return mp3.Decode(f)
	case extFLAC:
		return flac.Decode(f)
	case extWAV:
		return wav.Decode(f)
	case extOGG:
		return vorbis.Decode(f)
	}
	return nil, beep.Format{}, fmt.Errorf("unsupported format: %s", ext)
}

func initSpeaker(rate beep.SampleRate) error {
	speakerOnce.Do(func() {
		speakerRate = rate
		speakerErr = speaker.Init(rate, rate.N(time.Second/10))
	})
	return speakerErr
}

// IsMusicFile reports whether path has a playable audio extension.
func IsMusicFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3, extFLAC, extWAV, extOGG:
		return true
	}
	return false
}
