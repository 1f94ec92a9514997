// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package interp

import (
	"fmt"
	"io"
	"os"
)

// builtinExit implements "exit" (§4.8): terminate the shell, cleaning
// up any still-active jobs the same way end-of-input does (§4.9) so
// none of them outlive the shell that spawned them.
func (sh *Shell) builtinExit(out io.Writer) {
	fmt.Fprintln(out, "exit")
	sh.Shutdown()
	sh.Close()
	os.Exit(0)
}
