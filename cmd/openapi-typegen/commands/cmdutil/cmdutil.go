// Package cmdutil provides shared CLI utilities for the openapi-typegen commands.
package cmdutil

import (
	"fmt"
	"io"
	"os"
)

// StdinIndicator is the conventional Unix indicator to read from stdin.
const StdinIndicator = "-"

// IsStdin returns true if the given path indicates stdin should be used.
func IsStdin(path string) bool {
	return path == StdinIndicator
}

// StdinIsPiped returns true when stdin is connected to a pipe (not a terminal),
// meaning data is being piped in from another command or a file redirect.
func StdinIsPiped() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) == 0
}

// Die prints an error to stderr and exits with code 1.
func Die(err error) {
	Fail(os.Stderr, err)
	os.Exit(1)
}

// Fail writes err to w in the format Die uses.
func Fail(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
