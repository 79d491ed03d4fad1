package core

import (
	"io/ioutil"
	"os"
	"path"
	"sort"

	"github.com/sirupsen/logrus"
	billy "gopkg.in/src-d/go-billy.v4"
)

// Collect walks the directory root of fs and returns its entries in
// pre-order: every directory precedes everything nested beneath it, and
// siblings are sorted by name. Paths are relative to root and slash
// separated. File contents are read in full.
//
// Only directories and regular files are supported; any other object in the
// tree fails the walk with ErrInvalidInput.
func Collect(fs billy.Filesystem, root string) ([]Entry, error) {
	info, err := fs.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrInvalidInput.Wrap(err, "source "+root+" does not exist")
		}
		return nil, ErrIO.Wrap(err, "stat "+root)
	}
	if !info.IsDir() {
		return nil, ErrInvalidInput.New("source " + root + " is not a directory")
	}

	var entries []Entry
	if err := collectDir(fs, root, "", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// collectDir appends the children of dir (relative path rel) to entries,
// descending into each subdirectory right after its own entry.
func collectDir(fs billy.Filesystem, dir, rel string, entries *[]Entry) error {
	infos, err := fs.ReadDir(dir)
	if err != nil {
		return ErrIO.Wrap(err, "reading directory "+dir)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })

	for _, info := range infos {
		name := info.Name()
		full := fs.Join(dir, name)
		relPath := path.Join(rel, name)

		switch mode := info.Mode(); {
		case mode.IsDir():
			*entries = append(*entries, Entry{Path: relPath, IsDir: true})
			if err := collectDir(fs, full, relPath, entries); err != nil {
				return err
			}

		case mode.IsRegular():
			content, err := readFile(fs, full)
			if err != nil {
				return err
			}
			*entries = append(*entries, Entry{Path: relPath, Content: content})

		default:
			return ErrInvalidInput.New("unsupported file type " + mode.Type().String() + " at " + relPath)
		}
		logrus.WithField("path", relPath).Debug("collected entry")
	}
	return nil
}

func readFile(fs billy.Filesystem, name string) ([]byte, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, ErrIO.Wrap(err, "opening "+name)
	}
	defer f.Close()

	content, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, ErrIO.Wrap(err, "reading "+name)
	}
	return content, nil
}
