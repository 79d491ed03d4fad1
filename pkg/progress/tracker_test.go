package progress

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestTrackerCounts(t *testing.T) {
	require := require.New(t)

	tr := New("pack")
	tr.AddEntry(true, 0)
	tr.AddEntry(false, 10)
	tr.AddEntry(false, 0)
	tr.AddEntry(true, 99)

	require.Equal(uint64(2), tr.Dirs())
	require.Equal(uint64(2), tr.Files())
	require.Equal(uint64(10), tr.Payload())
	require.Equal(uint64(0), tr.Written())
}

func TestTrackerWriter(t *testing.T) {
	var buf bytes.Buffer
	tr := New("encode")
	w := tr.Writer(&buf)

	_, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	_, err = w.Write([]byte(", world"))
	require.NoError(t, err)

	require.Equal(t, "hello, world", buf.String())
	require.Equal(t, uint64(12), tr.Written())
}

func TestTrackerDone(t *testing.T) {
	prev := logrus.StandardLogger().Out
	defer logrus.SetOutput(prev)
	var out bytes.Buffer
	logrus.SetOutput(&out)

	tr := New("unpack")
	tr.AddEntry(false, 2048)
	tr.Done()

	line := out.String()
	require.Contains(t, line, "unpack completed")
	require.Contains(t, line, "2.0 KiB")
	require.Contains(t, line, "files=1")
}
