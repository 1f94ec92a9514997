// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package interp

import (
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/xerrors"

	"lsh/syntax"
	"lsh/token"
)

// RunLine lexes, parses, and executes one input line (§2's data
// flow). A blank line is handled before ever reaching the lexer: the
// grammar has no production for it, and §8 requires the prompt to
// simply redraw with no output, not "Invalid Syntax!".
func (sh *Shell) RunLine(line string) {
	sh.Reap()

	if strings.TrimSpace(line) == "" {
		return
	}

	sh.dispatchLine(line, true)
}

// runReplayed executes a previously logged command line ("log execute
// <i>") without recording it again in the history store (§4.8).
func (sh *Shell) runReplayed(line string) {
	sh.dispatchLine(line, false)
}

// dispatchLine lexes, parses, and runs every segment of line, in
// order, recording each foreground/pipeline segment to history when
// record is true.
func (sh *Shell) dispatchLine(line string, record bool) {
	toks := syntax.Lex(line)
	if err := syntax.Parse(toks); err != nil {
		fmt.Fprintln(sh.stderr, "Invalid Syntax!")
		return
	}

	for _, seg := range syntax.Split(toks) {
		segToks := seg.Tokens(toks)
		if seg.Term == syntax.TermAmp {
			sh.runBackground(segToks)
			continue
		}

		stages := syntax.SplitPipeline(segToks)
		if len(stages) > 1 {
			sh.runPipeline(stages)
		} else {
			sh.runForeground(stages[0])
		}
		if record {
			sh.hist.Append(reconstruct(segToks))
		}
	}
}

// reconstruct rebuilds a segment's surface text by joining its token
// literals with single spaces. This is both what the history store
// records and what "log execute <i>" replays; §8's invariant 1
// guarantees re-lexing this text reproduces the same token kinds.
func reconstruct(toks []token.Token) string {
	words := make([]string, len(toks))
	for i, t := range toks {
		words[i] = t.Text
	}
	return strings.Join(words, " ")
}

// runForeground executes a single atomic in the foreground (§4.5.1).
func (sh *Shell) runForeground(toks []token.Token) {
	args, _ := syntax.SplitArgs(toks)
	if len(args) == 0 {
		return
	}
	plan, err := syntax.PlanRedirections(toks)
	if err != nil {
		fmt.Fprintln(sh.stderr, err)
		return
	}
	defer plan.Close()

	name, rest := args[0], args[1:]

	if isBuiltin(name) {
		out := sh.stdout
		if plan.Stdout != nil {
			out = plan.Stdout
		}
		sh.runBuiltin(name, rest, out)
		return
	}

	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintln(sh.stderr, errCommandNotFound)
		return
	}

	cmd := exec.Command(path, rest...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = sh.stdin, sh.stdout, sh.stderr
	if plan.Stdin != nil {
		cmd.Stdin = plan.Stdin
	}
	if plan.Stdout != nil {
		cmd.Stdout = plan.Stdout
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{}
	setpgid(cmd.SysProcAttr)

	if err := cmd.Start(); err != nil {
		fmt.Fprintln(sh.stderr, errCommandNotFound)
		return
	}
	// Race the same grouping in the parent: a signal delivered
	// between fork and the child's own Setpgid must still land on
	// the right group (§5).
	_ = unix.Setpgid(cmd.Process.Pid, cmd.Process.Pid)

	sh.fg.set(cmd.Process.Pid, name)
	sh.waitForeground(cmd.Process.Pid, reconstruct(toks))
}

// waitForeground waits for pid (the foreground process group's
// leader) with stop-reporting enabled and resolves the three outcomes
// of §4.5.1 step 3. It is the single place allowed to transfer a
// stopped foreground child into the job table — see signal.go's
// doc comment for why the signal core itself does not also do this.
func (sh *Shell) waitForeground(pid int, command string) {
	res, err := waitPID(pid)
	if err != nil {
		sh.logf("%v", xerrors.Errorf("waitForeground(%d): %w", pid, err))
		sh.fg.clear()
		return
	}
	switch res.outcome {
	case outcomeStopped:
		if n, ok := sh.jobs.allocate(pid, pid, command, JobStopped); ok {
			fmt.Fprintf(sh.stdout, "[%d] Stopped %s\n", n, firstWord(command))
		}
		sh.fg.clear()
	default:
		sh.fg.clear()
	}
}
