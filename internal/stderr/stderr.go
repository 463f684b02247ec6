//go:build !windows

// Package stderr diverts writes made directly to file descriptor 2 by C
// audio libraries (ALSA, the mp3 decoder) into a channel, so they surface
// in the status bar instead of tearing the TUI layout apart.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

// Messages receives the captured stderr lines. The UI drains it on its
// poll tick; when the buffer is full further lines are dropped.
var Messages = make(chan string, 100)

var (
	origFd    int
	pipeRead  *os.File
	pipeWrite *os.File
	started   bool
)

// Start redirects fd 2 into a pipe feeding Messages. Call it before the
// audio backend initializes. A setup failure is not fatal: playback still
// works, stderr just stays on the terminal.
func Start() error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origFd, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(origFd)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true

	go func() {
		scanner := bufio.NewScanner(pipeRead)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case Messages <- line:
			default:
			}
		}
	}()

	return nil
}

// WriteOriginal writes to the saved stderr, bypassing the capture. Used
// for fatal errors that must reach the terminal even mid-capture.
func WriteOriginal(msg string) {
	if origFd > 0 {
		_, _ = syscall.Write(origFd, []byte(msg))
	}
}

// Stop restores fd 2 and closes Messages. Call on program exit.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(origFd, int(os.Stderr.Fd()))
	_ = syscall.Close(origFd)

	pipeWrite.Close()
	pipeRead.Close()

	close(Messages)
	started = false
}
