// Package terminal answers one question: is a given stream attached to a
// real terminal? The answer decides whether the helper gets a pseudo-TTY
// and whether diagnostics are colored.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Interactive reports whether both stdin and stdout are terminals. Only
// then can a terminal session allocate a pseudo-TTY; otherwise input is
// still wired through so piped sessions keep working.
func Interactive() bool {
	return IsTerminal(os.Stdin) && IsTerminal(os.Stdout)
}
