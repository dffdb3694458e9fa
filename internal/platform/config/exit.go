package config

import (
	"fmt"
	"os"
)

// Exitf prints a formatted fatal message to stderr and terminates the
// process with exit code 1. Command entry points use it for unrecoverable
// startup failures.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	fmt.Fprintln(os.Stderr)
	os.Exit(1)
}
