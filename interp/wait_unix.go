// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

//go:build unix

package interp

import "golang.org/x/sys/unix"

type waitStatus = unix.WaitStatus

// outcome classifies a completed or suspended wait4 call.
type outcome int

const (
	outcomeExited outcome = iota
	outcomeSignaled
	outcomeStopped
)

// waitResult is the decoded result of waiting on one pid.
type waitResult struct {
	outcome  outcome
	exitCode int // valid when outcomeExited: the process's exit status
	signal   unix.Signal
}

// waitPID waits on pid, accepting both termination and stop events
// (WUNTRACED), per §4.5.1's "wait for the child with stop-reporting
// enabled". It retries transparently on EINTR, since this shell's own
// signal core runs as a goroutine rather than a true interrupting
// handler, but the underlying blocking syscall can still be
// interrupted by delivery of a signal to this OS thread.
func waitPID(pid int) (waitResult, error) {
	var ws waitStatus
	for {
		_, err := unix.Wait4(pid, &ws, unix.WUNTRACED, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return waitResult{}, err
		}
		break
	}
	switch {
	case ws.Stopped():
		return waitResult{outcome: outcomeStopped, signal: ws.StopSignal()}, nil
	case ws.Signaled():
		return waitResult{outcome: outcomeSignaled, signal: ws.Signal()}, nil
	default:
		return waitResult{outcome: outcomeExited, exitCode: ws.ExitStatus()}, nil
	}
}

// waitPIDNoHang performs a non-blocking reap of pid, accepting both
// termination and stop events, for the reaper (§4.5.5). ok is false
// if the child has not changed state since the last check.
func waitPIDNoHang(pid int) (res waitResult, ok bool, err error) {
	var ws waitStatus
	got, err := unix.Wait4(pid, &ws, unix.WUNTRACED|unix.WNOHANG, nil)
	if err != nil {
		return waitResult{}, false, err
	}
	if got == 0 {
		return waitResult{}, false, nil
	}
	switch {
	case ws.Stopped():
		return waitResult{outcome: outcomeStopped, signal: ws.StopSignal()}, true, nil
	case ws.Signaled():
		return waitResult{outcome: outcomeSignaled, signal: ws.Signal()}, true, nil
	default:
		return waitResult{outcome: outcomeExited, exitCode: ws.ExitStatus()}, true, nil
	}
}
