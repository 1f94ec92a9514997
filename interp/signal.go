// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package interp

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// foreground is the process-wide marker described in §3: the process
// group currently occupying the terminal. It is mutated only by the
// executor when it launches a foreground child, and cleared either by
// the executor itself (once the child returns, in whatever state) or
// found empty by the signal core.
type foreground struct {
	mu      sync.Mutex
	pgid    int
	command string
}

func (f *foreground) set(pgid int, command string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pgid, f.command = pgid, command
}

func (f *foreground) clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pgid, f.command = 0, ""
}

func (f *foreground) get() (pgid int, command string, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pgid, f.command, f.pgid != 0
}

// signalCore installs the shell's INT and TSTP handling (§4.9). Unlike
// the reference C shell, it does not run inside a true async-signal
// handler: [signal.Notify] delivers both signals onto an ordinary
// channel, read by a dedicated goroutine running on a normal stack
// with the full runtime available. That sidesteps §5/§9's concern
// about allocating or printing from signal-handler context — there is
// no handler context here, only a goroutine — so the core can forward
// the signal and nothing more; it deliberately does NOT also perform
// the job-table transfer §4.9 assigns to "the stop handler". That
// transfer happens exactly once, in the foreground waiter that is
// already blocked in wait4 for this child (see exec.go) and is the
// only other place allowed to touch the job table for this pgid —
// moving it there removes the double-transfer race a literal port of
// the C handler would otherwise have.
type signalCore struct {
	fg    *foreground
	sigCh chan os.Signal
	out   io.Writer
}

func newSignalCore(fg *foreground, out io.Writer) *signalCore {
	sc := &signalCore{
		fg:    fg,
		sigCh: make(chan os.Signal, 8),
		out:   out,
	}
	signal.Notify(sc.sigCh, unix.SIGINT, unix.SIGTSTP)
	go sc.loop()
	return sc
}

func (sc *signalCore) loop() {
	for sig := range sc.sigCh {
		pgid, _, ok := sc.fg.get()
		if !ok {
			fmt.Fprintln(sc.out)
			continue
		}
		// Negative pid convention: deliver to the whole process
		// group, never to the shell's own group, since every
		// foreground child was placed in its own group at launch.
		unix.Kill(-pgid, sig.(syscall.Signal))
	}
}

func (sc *signalCore) stop() {
	signal.Stop(sc.sigCh)
	close(sc.sigCh)
}
