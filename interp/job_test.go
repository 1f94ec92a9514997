// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package interp

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestJobTableAllocateAndFree(t *testing.T) {
	c := qt.New(t)
	jt := newJobTable(2)

	n1, ok := jt.allocate(100, 100, "sleep 10", JobRunning)
	c.Assert(ok, qt.IsTrue)
	c.Assert(n1, qt.Equals, 1)

	n2, ok := jt.allocate(200, 200, "yes", JobRunning)
	c.Assert(ok, qt.IsTrue)
	c.Assert(n2, qt.Equals, 2)

	_, ok = jt.allocate(300, 300, "over capacity", JobRunning)
	c.Assert(ok, qt.IsFalse)

	jt.free(n1)
	n3, ok := jt.allocate(300, 300, "now fits", JobRunning)
	c.Assert(ok, qt.IsTrue)
	// Job numbers are monotonic and never reused, even though slot 1
	// was freed (§4.6's invariant).
	c.Assert(n3, qt.Equals, 3)
}

func TestJobTableFindAndMostRecent(t *testing.T) {
	c := qt.New(t)
	jt := newJobTable(5)

	n1, _ := jt.allocate(1, 1, "a", JobRunning)
	n2, _ := jt.allocate(2, 2, "b", JobRunning)

	j, ok := jt.findByNumber(n1)
	c.Assert(ok, qt.IsTrue)
	c.Assert(j.Command, qt.Equals, "a")

	j, ok = jt.findByPGID(2)
	c.Assert(ok, qt.IsTrue)
	c.Assert(j.Number, qt.Equals, n2)

	recent, ok := jt.mostRecent()
	c.Assert(ok, qt.IsTrue)
	c.Assert(recent.Number, qt.Equals, n2)

	_, ok = jt.findByNumber(999)
	c.Assert(ok, qt.IsFalse)
}

func TestJobTableSetStateAndActive(t *testing.T) {
	c := qt.New(t)
	jt := newJobTable(5)

	n, _ := jt.allocate(10, 10, "cat", JobRunning)
	c.Assert(jt.setState(n, JobStopped), qt.IsTrue)

	j, _ := jt.findByNumber(n)
	c.Assert(j.State, qt.Equals, JobStopped)

	c.Assert(jt.setState(999, JobStopped), qt.IsFalse)
	c.Assert(len(jt.active()), qt.Equals, 1)
}

func TestJobTableSnapshotSortedByHead(t *testing.T) {
	c := qt.New(t)
	jt := newJobTable(5)

	jt.allocate(1, 1, "zeta --flag", JobRunning)
	jt.allocate(2, 2, "alpha one two", JobRunning)
	jt.allocate(3, 3, "Beta", JobRunning)

	snap := jt.snapshotSortedByHead()
	c.Assert(len(snap), qt.Equals, 3)
	heads := []string{snap[0].Head, snap[1].Head, snap[2].Head}
	// Case-sensitive byte order (strcmp), not case-folded: uppercase
	// "Beta" sorts before lowercase letters.
	c.Assert(heads, qt.DeepEquals, []string{"Beta", "alpha", "zeta"})
}

func TestJobStateString(t *testing.T) {
	c := qt.New(t)
	c.Assert(JobRunning.String(), qt.Equals, "Running")
	c.Assert(JobStopped.String(), qt.Equals, "Stopped")
}
