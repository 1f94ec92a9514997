// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package interp

import (
	"fmt"
	"io"
	"os"
)

// childSafeBuiltins are the built-ins §4.5.2/§9 call out as safe to
// run inside a forked pipeline stage, because their effects are
// entirely captured by what they write to their output descriptor.
// Every other built-in (hop, log, ping, fg, bg) touches state that
// only means something in the parent shell process, so it is never
// eligible to run as a pipeline stage — per §4.5.2 it instead falls
// through to a normal exec lookup, which fails with "Command not
// found!" the same way any other non-existent binary would.
var childSafeBuiltins = map[string]bool{
	"exit":       true,
	"pwd":        true,
	"reveal":     true,
	"activities": true,
}

// builtinNames are every command word this shell recognizes as
// in-process, whether or not it is child-safe.
var builtinNames = map[string]bool{
	"hop":        true,
	"reveal":     true,
	"log":        true,
	"ping":       true,
	"activities": true,
	"fg":         true,
	"bg":         true,
	"exit":       true,
	"pwd":        true,
}

func isBuiltin(name string) bool { return builtinNames[name] }
func childSafe(name string) bool { return childSafeBuiltins[name] }

// runBuiltin executes a built-in directly in the shell process
// (§4.5.1 case 1). Every built-in, not only the child-safe ones, can
// run this way since running in-process never risks the shell's
// own state the way forking it would.
func (sh *Shell) runBuiltin(name string, args []string, out io.Writer) {
	switch name {
	case "hop":
		sh.builtinHop(args, out)
	case "reveal":
		runReveal(sh.home, sh.prevDir, args, out, sh.stderr)
	case "log":
		sh.builtinLog(args, out)
	case "ping":
		sh.builtinPing(args, out)
	case "activities":
		sh.builtinActivities(out)
	case "fg":
		sh.builtinFg(args, out)
	case "bg":
		sh.builtinBg(args, out)
	case "exit":
		sh.builtinExit(out)
	case "pwd":
		fmt.Fprintln(out, mustGetwd())
	}
}

// mustGetwd reports the current directory or "?" if it cannot be
// determined (e.g. the directory was removed out from under us).
func mustGetwd() string {
	wd, err := os.Getwd()
	if err != nil {
		return "?"
	}
	return wd
}
