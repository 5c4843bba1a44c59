// Package appshell is the process boundary: signals, argv and exit codes.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is an app entry point: argv without the program name, injected
// stdout/stderr, and an exit code.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs fn with a SIGINT/SIGTERM-aware context and exits with its code.
func Main(fn RunFunc) {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, fn))
}

// Run is Main without the process exit. No arguments means -h, and a run
// that was interrupted but reported success exits 130.
func Run(parent context.Context, argv []string, stdout, stderr io.Writer, fn RunFunc) int {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := fn(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
