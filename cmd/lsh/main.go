// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

// lsh is an interactive POSIX-flavored command shell built on top of
// [interp].
package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"lsh/interp"
)

func main() {
	os.Exit(main1())
}

// main1 is split out from main so testscript.RunMain (cmd/lsh's own
// tests) can register it as a fake "lsh" command without actually
// exec-ing a built binary for every scripted scenario.
func main1() int {
	// A pipeline stage that needs to run a built-in reexecs this same
	// binary with a hidden marker (see interp.IsReexecChild); that
	// path never touches the Shell or REPL at all.
	if interp.IsReexecChild() {
		interp.RunReexecChild()
		return 0
	}

	sh, err := interp.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer sh.Close()

	runREPL(sh)
	return 0
}

// runREPL drives the read-render-eval loop described in §2 and §6:
// reap finished background jobs, render the prompt, read one line,
// and hand it to the shell. End of input (Ctrl+D) logs the user out,
// sending SIGKILL to every still-active job's process group so nothing
// outlives the shell that spawned it (§4.9).
func runREPL(sh *interp.Shell) {
	in := bufio.NewScanner(os.Stdin)
	in.Buffer(make([]byte, 0, 64*1024), 1<<20)

	// A prompt only makes sense when a human is on the other end of
	// stdin; a piped/batch invocation runs silently, the same
	// distinction the teacher's own cmd/gosh draws with term.IsTerminal
	// before choosing its interactive vs. non-interactive run path.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	for {
		sh.Reap()
		if interactive {
			fmt.Fprint(os.Stdout, sh.Prompt())
		}

		if !in.Scan() {
			break
		}
		sh.RunLine(in.Text())
	}

	if interactive {
		fmt.Fprintln(os.Stdout, "logout")
	}
	sh.Shutdown()
}
