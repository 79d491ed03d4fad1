package main

import (
	"os"

	"github.com/DedMokus/OTIK/pkg/command"

	"github.com/jessevdk/go-flags"
)

const (
	name = "otik"
)

var (
	version = "undefined"
	build   = "undefined"
)

func main() {
	parser := newParser()

	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok {
			switch e.Type {
			case flags.ErrHelp:
				os.Exit(0)
			case flags.ErrCommandRequired:
				parser.WriteHelp(os.Stderr)
			}
		}

		os.Exit(1)
	}
}

func newParser() *flags.Parser {
	parser := flags.NewNamedParser(name, flags.Default)

	parser.AddCommand("pack", command.PackDescription, command.PackHelp,
		&command.Pack{})
	parser.AddCommand("unpack", command.UnpackDescription, command.UnpackHelp,
		&command.Unpack{})
	parser.AddCommand("encode", command.EncodeDescription, command.EncodeHelp,
		&command.Encode{})
	parser.AddCommand("decode", command.DecodeDescription, command.DecodeHelp,
		&command.Decode{})
	parser.AddCommand("list", command.ListDescription, command.ListHelp,
		&command.List{})
	parser.AddCommand("version", command.VersionDescription, command.VersionHelp,
		&command.Version{
			Name:    name,
			Version: version,
			Build:   build,
		})

	return parser
}
