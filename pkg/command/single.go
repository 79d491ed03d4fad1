package command

import (
	"github.com/DedMokus/OTIK/lib"
)

const (
	EncodeDescription = "Wraps a single file into a container"
	EncodeHelp        = EncodeDescription + "\n\n" +
		"Version 0 stores only the size; version 1 also stores the\n" +
		"compression and error-correction codes, both always zero."

	DecodeDescription = "Restores a single file from a container"
	DecodeHelp        = DecodeDescription + "\n\n" +
		"The container must be of exactly the requested format version."
)

// SingleFile holds the arguments shared by encode and decode.
type SingleFile struct {
	Logging

	FormatVersion uint16 `long:"format-version" env:"OTIK_FORMAT_VERSION" choice:"0" choice:"1" default:"1" description:"single-file container version"`

	Args struct {
		Input  string `positional-arg-name:"input-file" required:"yes"`
		Output string `positional-arg-name:"output-file" required:"yes"`
	} `positional-args:"yes"`
}

// Encode represents the `encode` command of the otik cli tool.
type Encode struct {
	SingleFile
}

// Execute writes the input file as a single-file container.
func (c *Encode) Execute(args []string) error {
	if err := noExtraArgs(args); err != nil {
		return err
	}
	if err := c.setup(); err != nil {
		return err
	}
	return lib.Encode(c.Args.Input, c.Args.Output, c.FormatVersion)
}

// Decode represents the `decode` command of the otik cli tool.
type Decode struct {
	SingleFile
}

// Execute restores the original file from a single-file container.
func (c *Decode) Execute(args []string) error {
	if err := noExtraArgs(args); err != nil {
		return err
	}
	if err := c.setup(); err != nil {
		return err
	}
	return lib.Decode(c.Args.Input, c.Args.Output, c.FormatVersion)
}
