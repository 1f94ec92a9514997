// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package interp

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
	"golang.org/x/xerrors"

	"lsh/syntax"
	"lsh/token"
)

// orphanStdinCommands are the stage-0 command words the reference
// shell gives /dev/null as stdin rather than the terminal, so that a
// pipeline like "wc -l | sort" typed interactively doesn't hang
// waiting on a read the user never intended for its first stage
// (SPEC_FULL.md's supplemented behaviour). A bare "cat" with no
// arguments is included for the same reason; "cat file" is not, since
// it already has its input.
var orphanStdinCommands = map[string]bool{"wc": true, "grep": true}

func isOrphanStdinStage(name string, rest []string) bool {
	if name == "cat" {
		return len(rest) == 0
	}
	return orphanStdinCommands[name]
}

type pipePair struct{ r, w *os.File }

// runPipeline implements §4.5.2: stages connected by kernel pipes,
// sharing a single process group so job control treats the whole
// pipeline as one foreground job, with only the last stage's exit
// status observable to the user.
func (sh *Shell) runPipeline(stages [][]token.Token) {
	n := len(stages)
	pipes := make([]pipePair, n-1)
	for i := range pipes {
		r, w, err := os.Pipe()
		if err != nil {
			fmt.Fprintln(sh.stderr, errCommandNotFound)
			for j := 0; j < i; j++ {
				pipes[j].r.Close()
				pipes[j].w.Close()
			}
			return
		}
		pipes[i] = pipePair{r, w}
	}

	pids := make([]int, n)
	pgid := 0

	for i, stageToks := range stages {
		args, _ := syntax.SplitArgs(stageToks)
		if len(args) == 0 {
			continue
		}
		plan, err := syntax.PlanRedirections(stageToks)
		if err != nil {
			fmt.Fprintln(sh.stderr, err)
			continue
		}
		name, rest := args[0], args[1:]

		var cmd *exec.Cmd
		if childSafe(name) {
			cmd, err = sh.builtinChildCommand(name, rest)
			if err != nil {
				fmt.Fprintln(sh.stderr, errCommandNotFound)
				plan.Close()
				continue
			}
		} else {
			path, lookErr := exec.LookPath(name)
			if lookErr != nil {
				fmt.Fprintf(sh.stderr, "%s: %v\n", name, errCommandNotFound)
				plan.Close()
				continue
			}
			cmd = exec.Command(path, rest...)
		}

		switch {
		case i > 0:
			cmd.Stdin = pipes[i-1].r
		case isOrphanStdinStage(name, rest):
			if null, nullErr := devNull(os.O_RDONLY); nullErr == nil {
				cmd.Stdin = null
				defer null.Close()
			}
		default:
			cmd.Stdin = sh.stdin
		}
		if i < n-1 {
			cmd.Stdout = pipes[i].w
		} else {
			cmd.Stdout = sh.stdout
		}
		cmd.Stderr = sh.stderr

		// An explicit redirection always wins over the pipe wiring
		// above, for both ends independently (§4.4).
		if plan.Stdin != nil {
			cmd.Stdin = plan.Stdin
		}
		if plan.Stdout != nil {
			cmd.Stdout = plan.Stdout
		}

		attr := &syscall.SysProcAttr{Setpgid: true}
		if pgid != 0 {
			attr.Pgid = pgid
		}
		cmd.SysProcAttr = attr

		startErr := cmd.Start()
		plan.Close()
		if startErr != nil {
			fmt.Fprintln(sh.stderr, errCommandNotFound)
			continue
		}

		pids[i] = cmd.Process.Pid
		if pgid == 0 {
			pgid = pids[i]
		}
		_ = unix.Setpgid(pids[i], pgid)
	}

	for _, p := range pipes {
		p.r.Close()
		p.w.Close()
	}

	if pgid == 0 {
		return
	}

	command := reconstructPipeline(stages)
	sh.fg.set(pgid, command)

	results := make([]waitResult, n)
	var g errgroup.Group
	for i, pid := range pids {
		if pid == 0 {
			continue
		}
		i, pid := i, pid
		g.Go(func() error {
			res, err := waitPID(pid)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		sh.logf("%v", xerrors.Errorf("runPipeline(%q): %w", command, err))
	}

	last := n - 1
	if pids[last] != 0 && results[last].outcome == outcomeStopped {
		if num, ok := sh.jobs.allocate(pgid, pgid, command, JobStopped); ok {
			fmt.Fprintf(sh.stdout, "[%d] Stopped %s\n", num, firstWord(command))
		}
	}
	sh.fg.clear()
}

// reconstructPipeline rebuilds a multi-stage pipeline's surface text
// for history and job-table display, joining stages with " | " the
// way the user originally typed them.
func reconstructPipeline(stages [][]token.Token) string {
	parts := make([]string, len(stages))
	for i, s := range stages {
		parts[i] = reconstruct(s)
	}
	return strings.Join(parts, " | ")
}
