// Package lib binds the container format in pkg/core to the host
// filesystem. It is what the otik command line calls, and what other Go
// programs should call to pack and unpack real directories.
package lib

import (
	"bufio"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/DedMokus/OTIK/pkg/core"
	"github.com/DedMokus/OTIK/pkg/progress"

	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"
)

// Constants for archive format re-exported from core
const (
	Magic   = core.Magic
	Version = core.Version
)

// Entry re-exported from core
type Entry = core.Entry

// hostRoot splits p into a filesystem rooted at its parent directory and the
// name of p within it.
func hostRoot(p string) (billy.Filesystem, string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return nil, "", core.ErrInvalidInput.Wrap(err, "resolving "+p)
	}
	return osfs.New(filepath.Dir(abs)), filepath.Base(abs), nil
}

func tally(t *progress.Tracker) core.Option {
	return core.OnEntry(func(e *core.Entry) {
		t.AddEntry(e.IsDir, e.Size())
	})
}

// Pack archives the directory src into the file out, replacing out if it
// exists. A failed run may leave a truncated file at out.
func Pack(src, out string) error {
	fs, root, err := hostRoot(src)
	if err != nil {
		return err
	}
	entries, err := core.Collect(fs, root)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return core.ErrIO.Wrap(err, "creating "+out)
	}
	defer f.Close()

	t := progress.New("pack")
	if err := core.Write(t.Writer(f), entries, tally(t)); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return core.ErrIO.Wrap(err, "closing "+out)
	}
	t.Done()
	return nil
}

// Unpack extracts the archive file in into the directory dest, creating
// dest if it is absent.
func Unpack(in, dest string) error {
	f, err := os.Open(in)
	if err != nil {
		return core.ErrIO.Wrap(err, "opening "+in)
	}
	defer f.Close()

	fs, root, err := hostRoot(dest)
	if err != nil {
		return err
	}

	t := progress.New("unpack")
	if err := core.Extract(fs, root, bufio.NewReader(f), tally(t)); err != nil {
		return err
	}
	t.Done()
	return nil
}

// Encode wraps the file in into a single-file container of the given
// version written to out.
func Encode(in, out string, version uint16) error {
	data, err := ioutil.ReadFile(in)
	if err != nil {
		return core.ErrIO.Wrap(err, "reading "+in)
	}

	f, err := os.Create(out)
	if err != nil {
		return core.ErrIO.Wrap(err, "creating "+out)
	}
	defer f.Close()

	t := progress.New("encode")
	bw := bufio.NewWriter(t.Writer(f))
	if err := core.EncodeSingle(bw, version, data); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return core.ErrIO.Wrap(err, "writing "+out)
	}
	if err := f.Close(); err != nil {
		return core.ErrIO.Wrap(err, "closing "+out)
	}
	t.Done()
	return nil
}

// Decode restores the content of the single-file container in, which must
// be of the given version, into out. out is only created once the container
// parsed completely.
func Decode(in, out string, version uint16) error {
	f, err := os.Open(in)
	if err != nil {
		return core.ErrIO.Wrap(err, "opening "+in)
	}
	defer f.Close()

	data, err := core.DecodeSingle(bufio.NewReader(f), version)
	if err != nil {
		return err
	}

	t := progress.New("decode")
	t.AddBytes(uint64(len(data)))
	if err := ioutil.WriteFile(out, data, 0644); err != nil {
		return core.ErrIO.Wrap(err, "writing "+out)
	}
	t.Done()
	return nil
}
