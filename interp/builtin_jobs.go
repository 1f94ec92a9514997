// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package interp

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/sys/unix"
)

// builtinActivities implements "activities" (§4.8): print the job
// table sorted by command head, one line per job, nothing at all
// when it is empty.
func (sh *Shell) builtinActivities(out io.Writer) {
	for _, j := range sh.jobs.snapshotSortedByHead() {
		fmt.Fprintf(out, "[%d] : %s - %s\n", j.PID, j.Head, j.State)
	}
}

// resolveJobArg looks up the job named by args (empty meaning "most
// recent"), per fg/bg's shared argument handling in §4.8.
func (sh *Shell) resolveJobArg(args []string) (Job, error) {
	if len(args) == 0 {
		j, ok := sh.jobs.mostRecent()
		if !ok {
			return Job{}, errNoSuchJob
		}
		return j, nil
	}
	if len(args) != 1 {
		return Job{}, errNoSuchJob
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return Job{}, errNoSuchJob
	}
	j, ok := sh.jobs.findByNumber(n)
	if !ok {
		return Job{}, errNoSuchJob
	}
	return j, nil
}

// builtinFg implements "fg [n]" (§4.8): resume job n (or the most
// recent one) in the foreground, continuing it if stopped, and block
// until it next terminates or stops again.
func (sh *Shell) builtinFg(args []string, out io.Writer) {
	j, err := sh.resolveJobArg(args)
	if err != nil {
		fmt.Fprintln(sh.stderr, err)
		return
	}

	fmt.Fprintln(out, j.Command)
	if j.State == JobStopped {
		if err := unix.Kill(-j.PGID, unix.SIGCONT); err != nil {
			fmt.Fprintln(sh.stderr, errProcessNotFound)
			return
		}
	}
	sh.jobs.free(j.Number)
	sh.fg.set(j.PID, j.Command)
	sh.waitForeground(j.PID, j.Command)
}

// builtinBg implements "bg [n]" (§4.8): resume a stopped job in the
// background, leaving it in the job table as Running.
func (sh *Shell) builtinBg(args []string, out io.Writer) {
	j, err := sh.resolveJobArg(args)
	if err != nil {
		fmt.Fprintln(sh.stderr, err)
		return
	}
	if j.State != JobStopped {
		fmt.Fprintln(sh.stderr, errJobAlreadyActive)
		return
	}
	if err := unix.Kill(-j.PGID, unix.SIGCONT); err != nil {
		fmt.Fprintln(sh.stderr, errProcessNotFound)
		return
	}
	sh.jobs.setState(j.Number, JobRunning)
	fmt.Fprintf(out, "[%d] %s &\n", j.Number, firstWord(j.Command))
}
