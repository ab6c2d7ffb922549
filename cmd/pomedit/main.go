package main

import (
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/pomedit/cmd/pomedit/commands"
	"git.home.luguber.info/inful/pomedit/internal/foundation/errors"
)

func main() {
	g := commands.NewGlobal(os.Stdout, os.Stderr)
	err := commands.Execute(os.Args[1:], g, kong.Writers(os.Stdout, os.Stderr))
	if err != nil {
		errors.NewCLIErrorAdapter(g.Verbose, g.Logger).HandleError(err)
	}
}
