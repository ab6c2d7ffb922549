package commands

import (
	"bytes"
	"fmt"
	"os"

	"git.home.luguber.info/inful/pomedit/internal/foundation/errors"
)

// CheckCmd parses a POM and writes it back in memory, reporting whether the result is
// identical to the file on disk.
type CheckCmd struct {
	POM string `arg:"" help:"POM file to check" type:"path"`
}

func (c *CheckCmd) Run(g *Global) error {
	e := g.newETL()
	if err := e.Extract(c.POM); err != nil {
		return err
	}
	out, err := e.Bytes()
	if err != nil {
		return err
	}
	original, err := os.ReadFile(c.POM)
	if err != nil {
		return errors.FileSystemError("read document").WithCause(err).WithContext("path", c.POM).Build()
	}

	if bytes.Equal(original, out) {
		fmt.Fprintf(g.Stdout, "%s: unchanged on round trip\n", c.POM)
		return nil
	}
	line := firstDifferentLine(original, out)
	fmt.Fprintf(g.Stdout, "%s: round trip differs at line %d\n", c.POM, line)
	return errors.ValidationError("document is not preserved on round trip").
		WithContext("path", c.POM).
		WithContext("line", line).
		Build()
}

// firstDifferentLine returns the 1-based line of the first byte where a and b differ.
func firstDifferentLine(a, b []byte) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return bytes.Count(a[:i], []byte("\n")) + 1
}
