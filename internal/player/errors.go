package player

import "errors"

// Failure modes of a single play attempt. All are terminal for that attempt:
// nothing is retried, and a failed open leaves no track active.
var (
	// ErrOpen means the path could not be read.
	ErrOpen = errors.New("open failed")

	// ErrDecode means the stream is unsupported or corrupt.
	ErrDecode = errors.New("decode failed")

	// ErrOutputDevice means no audio output device is available.
	ErrOutputDevice = errors.New("no audio output device")
)
