package core

import (
	"bytes"
	"io/ioutil"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/memfs"
	"gopkg.in/src-d/go-billy.v4/util"
)

const dirMarker = "<dir>"

// newTree builds an in-memory filesystem from a map of slash separated
// paths. A value of dirMarker creates a directory, anything else a file with
// that content.
func newTree(t *testing.T, files map[string]string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	for p, content := range files {
		if content == dirMarker {
			require.NoError(t, fs.MkdirAll(p, 0755))
			continue
		}
		require.NoError(t, util.WriteFile(fs, p, []byte(content), 0644))
	}
	return fs
}

// snapshot walks root and returns every path below it mapped to its content,
// or dirMarker for directories.
func snapshot(t *testing.T, fs billy.Filesystem, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	var walk func(dir, rel string)
	walk = func(dir, rel string) {
		infos, err := fs.ReadDir(dir)
		require.NoError(t, err)
		for _, info := range infos {
			full := fs.Join(dir, info.Name())
			relPath := path.Join(rel, info.Name())
			if info.IsDir() {
				out[relPath] = dirMarker
				walk(full, relPath)
				continue
			}
			f, err := fs.Open(full)
			require.NoError(t, err)
			content, err := ioutil.ReadAll(f)
			require.NoError(t, err)
			require.NoError(t, f.Close())
			out[relPath] = string(content)
		}
	}
	walk(root, "")
	return out
}

func archive(t *testing.T, entries ...Entry) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, entries))
	return buf.Bytes()
}

func dir(p string) Entry {
	return Entry{Path: p, IsDir: true}
}

func file(p, content string) Entry {
	return Entry{Path: p, Content: []byte(content)}
}
