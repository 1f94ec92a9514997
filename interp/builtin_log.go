// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package interp

import (
	"fmt"
	"io"
	"strconv"
)

// builtinLog implements "log", "log purge", and "log execute <i>"
// (§4.8), a thin front end over the history package. With no
// arguments it prints every retained entry, oldest first, one per
// line with no numbering — matching what "log execute" expects a
// user to have read before picking an index.
func (sh *Shell) builtinLog(args []string, out io.Writer) {
	switch {
	case len(args) == 0:
		for _, e := range sh.hist.Entries() {
			fmt.Fprintln(out, e)
		}

	case len(args) == 1 && args[0] == "purge":
		sh.hist.Purge()

	case len(args) == 2 && args[0] == "execute":
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintln(sh.stderr, "Invalid Syntax!")
			return
		}
		cmd, ok := sh.hist.At(n)
		if !ok {
			fmt.Fprintln(sh.stderr, errNoSuchJob)
			return
		}
		// The original shell echoes the command line it is about to
		// replay before running it, so the user can see what "log
		// execute <i>" actually picked. Replaying it must not log it
		// again (§4.8): RunLine would append it, so the execution
		// path is inlined here instead of recursing into RunLine.
		fmt.Fprintln(out, cmd)
		sh.runReplayed(cmd)

	default:
		fmt.Fprintln(sh.stderr, "Invalid Syntax!")
	}
}
