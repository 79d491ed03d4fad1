package core

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures Write and Extract.
type Option func(*options)

type options struct {
	onEntry func(*Entry)
}

// OnEntry registers fn to be called once for every entry written or
// extracted, after the entry has been handled. fn must not retain the entry.
func OnEntry(fn func(*Entry)) Option {
	return func(o *options) {
		o.onEntry = fn
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) notify(e *Entry) {
	if o.onEntry != nil {
		o.onEntry(e)
	}
}

// Write serializes a version 2 header followed by one record per entry, in
// the order given. Entries are not reordered; callers must keep every
// directory ahead of its descendants, as Collect does.
//
// Paths longer than MaxPathLen cannot be represented and are rejected with
// ErrInvalidInput before anything is written. A failure after that point
// leaves whatever was already written in w.
func Write(w io.Writer, entries []Entry, opts ...Option) error {
	o := newOptions(opts)
	for i := range entries {
		if err := checkPath(entries[i].Path); err != nil {
			return err
		}
	}

	bw := bufio.NewWriter(w)
	h := Header{
		Version:         Version,
		Compression:     CompressionNone,
		ErrorCorrection: ErrorCorrectionNone,
		Count:           uint64(len(entries)),
	}
	if err := h.write(bw); err != nil {
		return ErrIO.Wrap(err, "writing header")
	}

	for i := range entries {
		e := &entries[i]
		if err := writeRecord(bw, e); err != nil {
			return ErrIO.Wrap(err, "writing entry "+e.Path)
		}
		logrus.WithFields(logrus.Fields{
			"path": e.Path,
			"dir":  e.IsDir,
			"size": e.Size(),
		}).Debug("wrote entry")
		o.notify(e)
	}

	if err := bw.Flush(); err != nil {
		return ErrIO.Wrap(err, "flushing archive")
	}
	return nil
}

func checkPath(p string) error {
	if len(p) > MaxPathLen {
		return ErrInvalidInput.New(fmt.Sprintf("path of %d bytes exceeds the %d byte limit", len(p), MaxPathLen))
	}
	return nil
}

// writeRecord emits path length, path, directory flag and, for files, the
// size and content.
func writeRecord(w io.Writer, e *Entry) error {
	buf := make([]byte, 0, 2+len(e.Path)+1+8)
	buf = byteOrder.AppendUint16(buf, uint16(len(e.Path)))
	buf = append(buf, e.Path...)
	if e.IsDir {
		buf = append(buf, 1)
		_, err := w.Write(buf)
		return err
	}
	buf = append(buf, 0)
	buf = byteOrder.AppendUint64(buf, e.Size())
	if _, err := w.Write(buf); err != nil {
		return err
	}
	_, err := w.Write(e.Content)
	return err
}
