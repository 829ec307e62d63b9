// Package cliutil carries the small pieces of ambient plumbing every
// benchaid cmd/ tool wrote by hand: a fatalf-style abort helper and a
// pipeline context that threads a logger through instead of relying on a
// package-level global (§9's note on replacing static mutable state with
// an explicit Ctx).
package cliutil

import (
	"fmt"
	"log"
	"os"
)

// Fatalf prints a single diagnostic line to stderr and exits with the
// given code, matching the non-zero exit codes from §6 (1: argument
// error, 2: other fatal error) and §7's "abort with a single diagnostic
// line" policy for input-fatal/invariant-fatal errors.
func Fatalf(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}

// Ctx carries the one piece of shared state the pipeline needs beyond its
// immutable inputs: a logger for §7's recoverable warnings. No timestamp
// prefix, matching benchaid's silent fmt.Fprintf(os.Stderr, ...) style.
type Ctx struct {
	Log *log.Logger
}

// NewCtx returns a Ctx logging warnings to stderr with no prefix.
func NewCtx() *Ctx {
	return &Ctx{Log: log.New(os.Stderr, "", 0)}
}

// Warn logs a §7 recoverable-warning line.
func (c *Ctx) Warn(format string, args ...interface{}) {
	c.Log.Printf("warning: "+format, args...)
}
