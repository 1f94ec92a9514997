// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package interp

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Running a real builtin inside a forked pipeline stage is not safe
// to do with a bare fork() the way the reference C shell does it —
// the Go runtime's goroutine scheduler and its background threads do
// not survive fork() without a matching exec(). Instead, a pipeline
// stage whose command word is child-safe (§4.5.2) re-executes this
// same binary (os.Executable) with a hidden marker environment
// variable; main() checks that marker before anything else and, if
// set, runs the one named builtin and exits without ever starting a
// Shell or REPL.
//
// That reexeced process is a brand new address space, so it cannot
// see the parent Shell's in-memory job table or working-directory
// state directly. What little of that state a child-safe builtin
// needs ("activities" needs a job list, "reveal" needs the shell
// home and previous directory for "~"/"-") is rendered by the parent
// into environment variables before the child is spawned.
const (
	reexecFlagEnv     = "LSH_BUILTIN_CHILD"
	reexecHomeEnv     = "LSH_HOME"
	reexecPrevDirEnv  = "LSH_PREV_DIR"
	reexecJobsSnapEnv = "LSH_ACTIVITIES_SNAPSHOT"
)

// IsReexecChild reports whether this process was spawned to run a
// single builtin in a pipeline stage, per the mechanism above.
func IsReexecChild() bool {
	return os.Getenv(reexecFlagEnv) == "1"
}

// RunReexecChild runs the builtin named by os.Args[1] against
// os.Args[2:] and terminates the process. It is only ever called from
// main(), before a Shell is constructed.
func RunReexecChild() {
	var name string
	var args []string
	if len(os.Args) > 1 {
		name = os.Args[1]
		args = os.Args[2:]
	}

	switch name {
	case "exit":
		fmt.Fprintln(os.Stdout, "exit")
	case "pwd":
		fmt.Fprintln(os.Stdout, mustGetwd())
	case "reveal":
		runReveal(os.Getenv(reexecHomeEnv), os.Getenv(reexecPrevDirEnv), args, os.Stdout, os.Stderr)
	case "activities":
		fmt.Fprint(os.Stdout, os.Getenv(reexecJobsSnapEnv))
	}
	os.Exit(0)
}

// builtinChildCommand builds the exec.Cmd that reexecs this binary to
// run the child-safe builtin name with arguments rest, as one stage of
// a pipeline.
func (sh *Shell) builtinChildCommand(name string, rest []string) (*exec.Cmd, error) {
	self, err := os.Executable()
	if err != nil {
		return nil, err
	}
	cmd := exec.Command(self, append([]string{name}, rest...)...)
	env := append(os.Environ(),
		reexecFlagEnv+"=1",
		reexecHomeEnv+"="+sh.home,
		reexecPrevDirEnv+"="+sh.prevDir,
	)
	if name == "activities" {
		var b strings.Builder
		for _, j := range sh.jobs.snapshotSortedByHead() {
			fmt.Fprintf(&b, "[%d] : %s - %s\n", j.PID, j.Head, j.State)
		}
		env = append(env, reexecJobsSnapEnv+"="+b.String())
	}
	cmd.Env = env
	return cmd, nil
}
