// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package interp

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// builtinHop implements "hop" (§4.8), this shell's cd. "hop" with no
// argument goes to the shell home; otherwise every argument is applied
// as its own hop, left to right (hop.c's arg loop), so "hop .. .."
// walks up two directories and "hop a -" hops into a, then swaps back
// to the directory that preceded it.
func (sh *Shell) builtinHop(args []string, out io.Writer) {
	if len(args) == 0 {
		sh.hopOnce(sh.home, out, false)
		return
	}
	for _, a := range args {
		target, printTarget, ok := sh.resolveHopTarget(a)
		if !ok {
			return
		}
		if !sh.hopOnce(target, out, printTarget) {
			return
		}
	}
}

// resolveHopTarget resolves a single hop argument to a destination
// directory. The bool result is false when the argument cannot be
// resolved (an error has already been printed).
func (sh *Shell) resolveHopTarget(a string) (target string, printTarget, ok bool) {
	switch a {
	case "-":
		if sh.prevDir == "" {
			fmt.Fprintln(sh.stderr, errNoSuchDirectory)
			return "", false, false
		}
		return sh.prevDir, true, true
	case "~":
		return sh.home, false, true
	default:
		if len(a) >= 2 && a[:2] == "~/" {
			return filepath.Join(sh.home, a[2:]), false, true
		}
		return a, false, true
	}
}

// hopOnce chdirs to target, updating sh.prevDir to the directory left
// behind, and reports whether the hop succeeded.
func (sh *Shell) hopOnce(target string, out io.Writer, printTarget bool) bool {
	cur, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(sh.stderr, errNoSuchDirectory)
		return false
	}

	if err := os.Chdir(target); err != nil {
		fmt.Fprintln(sh.stderr, errNoSuchDirectory)
		return false
	}

	sh.prevDir = cur
	if printTarget {
		fmt.Fprintln(out, target)
	}
	return true
}
