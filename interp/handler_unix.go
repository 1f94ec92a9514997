// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

//go:build unix

package interp

import (
	"os"
	"syscall"
)

// setpgid places a not-yet-started child in its own new process
// group. The executor races this same setting in both parent and
// child (see exec.go's use of Setpgid here plus its own post-fork
// unix.Setpgid call) so there is never a window where a signal aimed
// at the group lands on the wrong one (§5, "Shared resources").
func setpgid(attr *syscall.SysProcAttr) {
	attr.Setpgid = true
	attr.Pgid = 0
}

// killGroup sends SIGKILL to every process in pgid's group, used when
// the shell logs out with background jobs still alive (§4.9).
func killGroup(pgid int) error {
	return syscall.Kill(-pgid, syscall.SIGKILL)
}

// devNull opens /dev/null for the given flag, used to give pipeline
// stages and background jobs a harmless standard input (§4.5.2,
// §4.5.3) without blocking on the terminal.
func devNull(flag int) (*os.File, error) {
	return os.OpenFile(os.DevNull, flag, 0)
}
