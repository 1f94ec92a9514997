// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package interp

import (
	"fmt"
	"strings"
)

// Prompt renders the shell prompt described in §6:
// "<user@host:path> ", with the current directory collapsed to "~"
// when it is the shell home or a descendant of it.
func (sh *Shell) Prompt() string {
	path := mustGetwd()
	switch {
	case path == sh.home:
		path = "~"
	case strings.HasPrefix(path, sh.home+"/"):
		path = "~" + path[len(sh.home):]
	}
	return fmt.Sprintf("<%s@%s:%s> ", sh.user, sh.host, path)
}

// Shutdown performs the end-of-input cleanup from §4.9: every job
// still in the table is sent SIGKILL across its whole process group,
// since none of them should outlive the shell that launched them.
func (sh *Shell) Shutdown() {
	for _, j := range sh.jobs.active() {
		_ = killGroup(j.PGID)
	}
}
