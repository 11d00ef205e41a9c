package trace

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
)

type Debuger interface {
	DbgPrint(format string, args ...any)
}

func NewDebuger(verbose bool) Debuger {
	return &debuger{verbose: verbose}
}

type debuger struct {
	verbose bool
}

// DbgPrint writes a debug line to stderr, colorized when stderr is a
// terminal.
func DbgPrint(format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	color := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	for _, s := range strings.Split(message, "\n") {
		line := "* " + s
		if color {
			line = ansi.Color(line, "yellow")
		}
		fmt.Fprintln(os.Stderr, line)
	}
}

func (d debuger) DbgPrint(format string, args ...any) {
	if !d.verbose {
		return
	}
	DbgPrint(format, args...)
}

var (
	_ Debuger = &debuger{}
)
