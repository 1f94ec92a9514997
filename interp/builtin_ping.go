// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package interp

import (
	"fmt"
	"io"
	"strconv"
	"syscall"

	"golang.org/x/sys/unix"
)

// builtinPing implements "ping <pid> <signum>" (§4.8): deliver signal
// signum mod 32 to pid. Note the lowercase "Invalid syntax!" here is
// deliberate and distinct from the parser's "Invalid Syntax!" — the
// reference implementation spells this one case differently and
// §4.8 preserves that.
func (sh *Shell) builtinPing(args []string, out io.Writer) {
	if len(args) != 2 {
		fmt.Fprintln(sh.stderr, "Invalid syntax!")
		return
	}
	pid, err1 := strconv.Atoi(args[0])
	signalNumber, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		fmt.Fprintln(sh.stderr, "Invalid syntax!")
		return
	}

	if err := unix.Kill(pid, syscall.Signal(signalNumber%32)); err != nil {
		fmt.Fprintln(sh.stderr, errProcessNotFound)
		return
	}
	fmt.Fprintf(out, "Sent signal %d to process with pid %d\n", signalNumber, pid)
}
