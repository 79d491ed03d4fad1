package lib

import (
	"bufio"
	"io"
	"os"

	"github.com/DedMokus/OTIK/pkg/core"
)

// Manifest describes the records of an archive without their content.
type Manifest struct {
	Version uint16          `yaml:"version"`
	Entries []ManifestEntry `yaml:"entries"`
}

// ManifestEntry is one record of a Manifest.
type ManifestEntry struct {
	Path string `yaml:"path"`
	Dir  bool   `yaml:"dir"`
	Size uint64 `yaml:"size,omitempty"`
}

// List parses every record of the archive file in and returns its manifest.
// The filesystem is not touched besides reading in.
func List(in string) (*Manifest, error) {
	f, err := os.Open(in)
	if err != nil {
		return nil, core.ErrIO.Wrap(err, "opening "+in)
	}
	defer f.Close()

	return ReadManifest(bufio.NewReader(f))
}

// ReadManifest is List over an arbitrary reader.
func ReadManifest(r io.Reader) (*Manifest, error) {
	rd, err := core.NewReader(r)
	if err != nil {
		return nil, err
	}

	m := &Manifest{Version: rd.Header().Version, Entries: []ManifestEntry{}}
	for {
		e, err := rd.Next()
		if err == io.EOF {
			return m, nil
		}
		if err != nil {
			return nil, err
		}
		m.Entries = append(m.Entries, ManifestEntry{Path: e.Path, Dir: e.IsDir, Size: e.Size()})
	}
}
