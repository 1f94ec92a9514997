// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

// Package interp is the shell's execution engine: it composes
// pipelines of child processes connected by kernel pipes, applies
// redirections, manages process groups so signals reach the right
// cohort, tracks background and stopped jobs, and drives the REPL
// that ties all of this to a terminal.
package interp

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"lsh/history"
)

// Config collects the shell's tunable constants. The defaults mirror
// the reference C implementation (SPEC_FULL.md's AMBIENT STACK).
type Config struct {
	// HistoryCapacity is the number of distinct-adjacent commands
	// retained in the history ring (§3; reference 15).
	HistoryCapacity int
	// JobCapacity is the number of job table slots (§4.6; reference 100).
	JobCapacity int
	// Name is the shell's name, used for its diagnostic log file
	// (.<Name>_debug.log). The history file name does not depend on
	// it: it is always history.FileName.
	Name string
}

// DefaultConfig returns the reference shell's tuning constants.
func DefaultConfig() Config {
	return Config{
		HistoryCapacity: history.DefaultCapacity,
		JobCapacity:     DefaultJobCapacity,
		Name:            "lsh",
	}
}

// Option configures a Shell. Unset options fall back to their
// defaults, the same pattern the teacher's RunnerOption uses.
type Option func(*Shell) error

// WithConfig overrides the shell's tunable constants.
func WithConfig(cfg Config) Option {
	return func(sh *Shell) error {
		sh.cfg = cfg
		return nil
	}
}

// StdIO sets the shell's standard streams. Defaults to the process's
// own stdin/stdout/stderr.
func StdIO(in io.Reader, out, errOut io.Writer) Option {
	return func(sh *Shell) error {
		sh.stdin, sh.stdout, sh.stderr = in, out, errOut
		return nil
	}
}

// Shell holds every piece of process-wide state described in §3: the
// shell home, the previous working directory, the job table, the
// history store, and the foreground marker. A single *Shell is passed
// by reference to every component; the only state reachable outside
// of it is the foreground marker's own mutex-protected fields, which
// the signal core also touches (see signal.go).
type Shell struct {
	cfg Config

	home    string // shell home (§3): working directory at startup, immutable
	prevDir string // previous working directory (§3)

	jobs *jobTable
	hist *history.History
	fg   *foreground
	sig  *signalCore

	user string
	host string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	debug *os.File
}

// New builds a Shell rooted at the process's current working
// directory, applying opts. It installs the signal core and opens the
// history store; neither failure is fatal to startup (§7).
func New(opts ...Option) (*Shell, error) {
	sh := &Shell{
		cfg:    DefaultConfig(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		if err := opt(sh); err != nil {
			return nil, err
		}
	}

	home, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	sh.home = home
	sh.jobs = newJobTable(sh.cfg.JobCapacity)
	sh.hist = history.Open(sh.home, sh.cfg.HistoryCapacity)
	sh.fg = &foreground{}
	sh.sig = newSignalCore(sh.fg, sh.stdout)

	if u, err := user.Current(); err == nil {
		sh.user = u.Username
	}
	if host, err := os.Hostname(); err == nil {
		sh.host = host
	}

	sh.debug, _ = os.OpenFile(
		sh.home+"/."+sh.cfg.Name+"_debug.log",
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644,
	)

	return sh, nil
}

// Close releases the shell's own resources. It does not touch any
// still-running jobs.
func (sh *Shell) Close() {
	sh.sig.stop()
	if sh.debug != nil {
		sh.debug.Close()
	}
}

// logf records one operational diagnostic line that must never reach
// the terminal (§7's "silently degrade" / non-fatal policy applied to
// the shell's own bookkeeping, not to command output).
func (sh *Shell) logf(format string, args ...any) {
	if sh.debug == nil {
		return
	}
	fmt.Fprintf(sh.debug, format+"\n", args...)
}
