package command

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/DedMokus/OTIK/lib"

	humanize "github.com/dustin/go-humanize"
	yaml "gopkg.in/yaml.v2"
)

const (
	ListDescription = "Lists the entries of an archive"
	ListHelp        = ListDescription + "\n\n" +
		"The whole archive is parsed and validated as unpack would,\n" +
		"without writing anything."
)

// List represents the `list` command of the otik cli tool.
type List struct {
	Logging

	YAML bool `long:"yaml" description:"Print a YAML manifest instead of a table"`

	Args struct {
		Input string `positional-arg-name:"input-archive" required:"yes"`
	} `positional-args:"yes"`

	out io.Writer
}

// Execute prints one line per record of the archive.
func (c *List) Execute(args []string) error {
	if err := noExtraArgs(args); err != nil {
		return err
	}
	if err := c.setup(); err != nil {
		return err
	}

	m, err := lib.List(c.Args.Input)
	if err != nil {
		return err
	}

	out := c.out
	if out == nil {
		out = os.Stdout
	}
	if c.YAML {
		return writeYAML(out, m)
	}
	return writeTable(out, m)
}

func writeYAML(w io.Writer, m *lib.Manifest) error {
	buf, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	_, err = w.Write(buf)
	return err
}

func writeTable(w io.Writer, m *lib.Manifest) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range m.Entries {
		kind, size := "file", humanize.IBytes(e.Size)
		if e.Dir {
			kind, size = "dir", "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", kind, size, e.Path)
	}
	return tw.Flush()
}
