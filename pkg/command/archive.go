package command

import (
	"github.com/DedMokus/OTIK/lib"
)

const (
	PackDescription = "Packs a directory tree into one archive"
	PackHelp        = PackDescription + "\n\n" +
		"Every directory and regular file below the source directory is\n" +
		"stored with its path relative to it, parents before children.\n" +
		"Symbolic links and special files are rejected. An existing\n" +
		"output archive is overwritten."

	UnpackDescription = "Extracts an archive into a directory"
	UnpackHelp        = UnpackDescription + "\n\n" +
		"The output directory is created if it does not exist. On failure\n" +
		"the entries extracted so far are left in place and must not be\n" +
		"trusted."
)

// Pack represents the `pack` command of the otik cli tool.
type Pack struct {
	Logging

	Args struct {
		Source string `positional-arg-name:"source-directory" required:"yes"`
		Output string `positional-arg-name:"output-archive" required:"yes"`
	} `positional-args:"yes"`
}

// Execute collects the source directory and writes the archive.
func (c *Pack) Execute(args []string) error {
	if err := noExtraArgs(args); err != nil {
		return err
	}
	if err := c.setup(); err != nil {
		return err
	}
	return lib.Pack(c.Args.Source, c.Args.Output)
}

// Unpack represents the `unpack` command of the otik cli tool.
type Unpack struct {
	Logging

	Args struct {
		Input  string `positional-arg-name:"input-archive" required:"yes"`
		Output string `positional-arg-name:"output-directory" required:"yes"`
	} `positional-args:"yes"`
}

// Execute validates the archive and replays its entries.
func (c *Unpack) Execute(args []string) error {
	if err := noExtraArgs(args); err != nil {
		return err
	}
	if err := c.setup(); err != nil {
		return err
	}
	return lib.Unpack(c.Args.Input, c.Args.Output)
}
