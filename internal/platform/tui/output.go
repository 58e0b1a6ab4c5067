package tui

import (
	"io"
	"os"
	"sync"
)

// lockedOutput serializes writes to the terminal. The renderer flushes each
// frame with a single Write, so escape sequences written through the same
// output land between frames, never inside one.
type lockedOutput struct {
	mu sync.Mutex
	w  io.Writer
}

func (o *lockedOutput) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.w.Write(p)
}

// lockedFile is a lockedOutput on a file. It exposes the file descriptor so
// Bubble Tea still detects the terminal behind the lock.
type lockedFile struct {
	*lockedOutput
	f *os.File
}

func (o lockedFile) Read(p []byte) (int, error) {
	return o.f.Read(p)
}

func (o lockedFile) Close() error {
	return o.f.Close()
}

func (o lockedFile) Fd() uintptr {
	return o.f.Fd()
}

// newLockedOutput wraps w for shared use by the renderer and the terminal.
func newLockedOutput(w io.Writer) io.Writer {
	o := &lockedOutput{w: w}
	if f, ok := w.(*os.File); ok {
		return lockedFile{lockedOutput: o, f: f}
	}
	return o
}
