// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package interp

import (
	"fmt"

	"golang.org/x/xerrors"
)

// Reap performs one non-blocking sweep of the job table (§4.5.5),
// reporting terminated background jobs and freeing their slots,
// transferring newly-stopped ones to JobStopped in place. It is
// called at the top of every RunLine, mirroring the reference
// shell's "reap before each prompt" discipline, so a finished
// background job is reported as soon as the user is about to see a
// new prompt rather than at some arbitrary later point.
func (sh *Shell) Reap() {
	for _, j := range sh.jobs.active() {
		res, changed, err := waitPIDNoHang(j.PID)
		if err != nil {
			// The process is already gone and we never observed it
			// (e.g. it was reaped out from under us) — free the slot
			// defensively rather than leak it forever.
			sh.logf("%v", xerrors.Errorf("Reap(%d): %w", j.PID, err))
			sh.jobs.free(j.Number)
			continue
		}
		if !changed {
			continue
		}
		switch res.outcome {
		case outcomeStopped:
			sh.jobs.setState(j.Number, JobStopped)
		default:
			sh.jobs.free(j.Number)
			if res.outcome == outcomeExited && res.exitCode == 0 {
				fmt.Fprintf(sh.stdout, "%s & with pid %d exited normally\n", j.Command, j.PID)
			} else {
				fmt.Fprintf(sh.stdout, "%s & with pid %d exited abnormally\n", j.Command, j.PID)
			}
		}
	}
}
