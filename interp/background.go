// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package interp

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"

	"lsh/syntax"
	"lsh/token"
)

// runBackground implements §4.5.3: a command run with a trailing "&".
// Built-ins never qualify (none of them make sense detached from the
// shell that owns their state) and are refused silently, with no
// message, since §4.5.3 treats this as a no-op rather than an error
// condition.
func (sh *Shell) runBackground(toks []token.Token) {
	args, _ := syntax.SplitArgs(toks)
	if len(args) == 0 {
		return
	}
	name, rest := args[0], args[1:]
	if isBuiltin(name) {
		return
	}

	plan, err := syntax.PlanRedirections(toks)
	if err != nil {
		fmt.Fprintln(sh.stderr, err)
		return
	}
	defer plan.Close()

	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintln(sh.stderr, errCommandNotFound)
		return
	}

	cmd := exec.Command(path, rest...)
	cmd.Stdout, cmd.Stderr = sh.stdout, sh.stderr
	if plan.Stdout != nil {
		cmd.Stdout = plan.Stdout
	}

	// A background job is always detached from the controlling
	// terminal's input: with no explicit redirection it reads from
	// /dev/null rather than racing the foreground job for stdin.
	null, err := devNull(os.O_RDONLY)
	if err == nil {
		defer null.Close()
		cmd.Stdin = null
	}
	if plan.Stdin != nil {
		cmd.Stdin = plan.Stdin
	}

	cmd.SysProcAttr = &syscall.SysProcAttr{}
	setpgid(cmd.SysProcAttr)

	if err := cmd.Start(); err != nil {
		fmt.Fprintln(sh.stderr, errCommandNotFound)
		return
	}

	pid := cmd.Process.Pid
	_ = unix.Setpgid(pid, pid)

	command := reconstruct(toks)
	if n, ok := sh.jobs.allocate(pid, pid, command, JobRunning); ok {
		fmt.Fprintf(sh.stdout, "[%d] %d\n", n, pid)
	}

	// The Cmd's own Wait is never called: the job table + Reap own
	// this process's lifecycle from here, and Process.Release (not
	// Wait) would leak the exec package's internal I/O copying
	// goroutines if cmd had any piped streams, so instead we simply
	// let the *os.Process go out of scope — there is nothing left
	// for this goroutine to do with it.
	_ = cmd
}
