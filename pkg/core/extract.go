package core

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/util"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Extract validates the archive read from r and recreates its entries under
// dest in fs, creating dest if it is absent. Records are applied strictly in
// order; a file's parent directory is created right before the file is
// written, so out-of-order or filtered archives still extract.
//
// Nothing is created until the header has been validated. Any later failure
// stops the extraction and leaves the entries already applied on disk.
func Extract(fs billy.Filesystem, dest string, r io.Reader, opts ...Option) error {
	o := newOptions(opts)

	rd, err := NewReader(r)
	if err != nil {
		return err
	}
	if err := fs.MkdirAll(dest, dirPerm); err != nil {
		return ErrIO.Wrap(err, "creating destination "+dest)
	}

	for {
		e, err := rd.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := apply(fs, dest, e); err != nil {
			return err
		}
		o.notify(e)
	}
}

func apply(fs billy.Filesystem, dest string, e *Entry) error {
	rel, err := cleanEntryPath(e.Path)
	if err != nil {
		return err
	}
	target := fs.Join(dest, filepath.FromSlash(rel))

	log := logrus.WithFields(logrus.Fields{"path": e.Path, "dir": e.IsDir})
	if e.IsDir {
		if err := fs.MkdirAll(target, dirPerm); err != nil {
			return ErrIO.Wrap(err, "creating directory "+e.Path)
		}
		log.Debug("extracted entry")
		return nil
	}

	if parent := path.Dir(rel); parent != "." {
		if err := fs.MkdirAll(fs.Join(dest, filepath.FromSlash(parent)), dirPerm); err != nil {
			return ErrIO.Wrap(err, "creating parent of "+e.Path)
		}
	}
	if err := util.WriteFile(fs, target, e.Content, filePerm); err != nil {
		return ErrIO.Wrap(err, "writing "+e.Path)
	}
	log.WithField("size", e.Size()).Debug("extracted entry")
	return nil
}

// cleanEntryPath rejects paths that are empty, absolute or would resolve
// outside the destination.
func cleanEntryPath(p string) (string, error) {
	if p == "" {
		return "", ErrFormat.New("entry with empty path")
	}
	if path.IsAbs(p) || filepath.IsAbs(p) {
		return "", ErrFormat.New("entry path " + p + " is absolute")
	}
	clean := path.Clean(filepath.ToSlash(p))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", ErrFormat.New("entry path " + p + " escapes the destination")
	}
	return clean, nil
}
