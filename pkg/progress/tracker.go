// Package progress accounts for the entries and bytes handled by one run
// and reports a summary when the run finishes.
package progress

import (
	"io"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

// Tracker counts what a single pack, unpack, encode or decode run handled.
// It is not safe for concurrent use; every run is single-threaded.
type Tracker struct {
	op    string
	start time.Time

	dirs    uint64
	files   uint64
	payload uint64 // content bytes of file entries
	written uint64 // bytes passed through Writer
}

// New starts tracking the operation named op.
func New(op string) *Tracker {
	return &Tracker{op: op, start: time.Now()}
}

// AddEntry records one directory or file entry carrying size content bytes.
func (t *Tracker) AddEntry(dir bool, size uint64) {
	if dir {
		t.dirs++
		return
	}
	t.files++
	t.payload += size
}

// AddBytes adds n to the count of bytes written.
func (t *Tracker) AddBytes(n uint64) {
	t.written += n
}

// Dirs returns the number of directory entries seen.
func (t *Tracker) Dirs() uint64 { return t.dirs }

// Files returns the number of file entries seen.
func (t *Tracker) Files() uint64 { return t.files }

// Payload returns the total content size of the file entries seen.
func (t *Tracker) Payload() uint64 { return t.payload }

// Written returns the number of bytes passed through Writer.
func (t *Tracker) Written() uint64 { return t.written }

// Writer returns w wrapped so that every byte written is counted.
func (t *Tracker) Writer(w io.Writer) io.Writer {
	return &Writer{W: w, T: t}
}

// Done logs the summary of the run.
func (t *Tracker) Done() {
	fields := logrus.Fields{
		"elapsed": time.Since(t.start).Round(time.Millisecond),
	}
	if t.dirs+t.files > 0 {
		fields["dirs"] = t.dirs
		fields["files"] = t.files
		fields["payload"] = humanize.IBytes(t.payload)
	}
	if t.written > 0 {
		fields["written"] = humanize.IBytes(t.written)
	}
	logrus.WithFields(fields).Infof("%s completed", t.op)
}

// Writer is a writer that tracks bytes written for progress reporting
type Writer struct {
	W io.Writer
	T *Tracker
}

// Write implements io.Writer and tracks bytes written
func (pw *Writer) Write(p []byte) (n int, err error) {
	n, err = pw.W.Write(p)
	if n > 0 {
		pw.T.AddBytes(uint64(n))
	}
	return
}
