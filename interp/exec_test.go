// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package interp

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

// newTestShell builds a Shell rooted at a fresh temp directory so its
// history file and "hop ~" target never touch the real home
// directory, with stdout/stderr captured for assertions.
func newTestShell(t *testing.T) (*Shell, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	c := qt.New(t)
	dir := t.TempDir()

	wd, err := os.Getwd()
	c.Assert(err, qt.IsNil)
	c.Assert(os.Chdir(dir), qt.IsNil)
	t.Cleanup(func() { os.Chdir(wd) })

	var out, errOut bytes.Buffer
	sh, err := New(StdIO(strings.NewReader(""), &out, &errOut))
	c.Assert(err, qt.IsNil)
	t.Cleanup(sh.Close)
	return sh, &out, &errOut
}

func TestRunLineSimpleCommand(t *testing.T) {
	c := qt.New(t)
	sh, out, _ := newTestShell(t)

	sh.RunLine("echo hello")
	c.Assert(out.String(), qt.Equals, "hello\n")
}

func TestRunLineInvalidSyntax(t *testing.T) {
	c := qt.New(t)
	sh, _, errOut := newTestShell(t)

	sh.RunLine("| echo hi")
	c.Assert(errOut.String(), qt.Equals, "Invalid Syntax!\n")
}

func TestRunLineBlankLineIsSilent(t *testing.T) {
	c := qt.New(t)
	sh, out, errOut := newTestShell(t)

	sh.RunLine("   ")
	c.Assert(out.String(), qt.Equals, "")
	c.Assert(errOut.String(), qt.Equals, "")
}

func TestRunLineRedirection(t *testing.T) {
	c := qt.New(t)
	sh, _, _ := newTestShell(t)

	sh.RunLine("echo redirected > out.txt")
	got, err := os.ReadFile(filepath.Join(mustGetwd(), "out.txt"))
	c.Assert(err, qt.IsNil)
	c.Assert(string(got), qt.Equals, "redirected\n")
}

func TestRunLinePipeline(t *testing.T) {
	c := qt.New(t)
	sh, out, _ := newTestShell(t)

	sh.RunLine("echo piped | cat")
	c.Assert(out.String(), qt.Equals, "piped\n")
}

func TestRunLineCommandNotFound(t *testing.T) {
	c := qt.New(t)
	sh, _, errOut := newTestShell(t)

	sh.RunLine("this-binary-does-not-exist-anywhere")
	c.Assert(errOut.String(), qt.Equals, "Command not found!\n")
}

func TestRunLineHop(t *testing.T) {
	c := qt.New(t)
	sh, _, _ := newTestShell(t)

	sub := filepath.Join(sh.home, "sub")
	c.Assert(os.Mkdir(sub, 0o755), qt.IsNil)

	sh.RunLine("hop sub")
	c.Assert(mustGetwd(), qt.Equals, sub)

	sh.RunLine("hop -")
	c.Assert(mustGetwd(), qt.Equals, sh.home)
}

func TestRunLineHopMultiArgWalksEachInTurn(t *testing.T) {
	c := qt.New(t)
	sh, _, _ := newTestShell(t)

	nested := filepath.Join(sh.home, "sub", "inner")
	c.Assert(os.MkdirAll(nested, 0o755), qt.IsNil)

	sh.RunLine("hop sub inner")
	c.Assert(mustGetwd(), qt.Equals, nested)

	sh.RunLine("hop .. ..")
	c.Assert(mustGetwd(), qt.Equals, sh.home)
}

func TestRunLinePwdBuiltin(t *testing.T) {
	c := qt.New(t)
	sh, out, _ := newTestShell(t)

	sh.RunLine("pwd")
	c.Assert(strings.TrimSpace(out.String()), qt.Equals, sh.home)
}

func TestRunLineHistoryRecordsDistinctAdjacent(t *testing.T) {
	c := qt.New(t)
	sh, _, _ := newTestShell(t)

	sh.RunLine("echo one")
	sh.RunLine("echo one")
	sh.RunLine("echo two")

	c.Assert(sh.hist.Entries(), qt.DeepEquals, []string{"echo one", "echo two"})
}

func TestRunLineHistorySkipsLogCommands(t *testing.T) {
	c := qt.New(t)
	sh, _, _ := newTestShell(t)

	sh.RunLine("echo recorded")
	sh.RunLine("log")

	c.Assert(sh.hist.Entries(), qt.DeepEquals, []string{"echo recorded"})
}

func TestRunLineBackgroundAllocatesJobAndReports(t *testing.T) {
	c := qt.New(t)
	sh, out, _ := newTestShell(t)

	sh.RunLine("sleep 0.2 &")
	c.Assert(strings.HasPrefix(out.String(), "[1] "), qt.IsTrue)
	c.Assert(len(sh.jobs.active()), qt.Equals, 1)

	time.Sleep(500 * time.Millisecond)
	sh.Reap()
	c.Assert(len(sh.jobs.active()), qt.Equals, 0)
	c.Assert(strings.Contains(out.String(), "exited normally"), qt.IsTrue)
}

func TestRunLineActivitiesEmptyPrintsNothing(t *testing.T) {
	c := qt.New(t)
	sh, out, _ := newTestShell(t)

	sh.RunLine("activities")
	c.Assert(out.String(), qt.Equals, "")
}

func TestRunLineBgReportsHeadWithAmpersand(t *testing.T) {
	c := qt.New(t)
	sh, out, _ := newTestShell(t)

	sh.RunLine("sleep 5 &")
	jobs := sh.jobs.active()
	c.Assert(len(jobs), qt.Equals, 1)
	pid := jobs[0].PID
	defer func() { sh.RunLine("ping " + itoa(pid) + " 9") }()

	sh.RunLine("ping " + itoa(pid) + " 20") // SIGTSTP
	c.Assert(waitForJobState(sh, 1, JobStopped), qt.IsTrue)

	out.Reset()
	sh.RunLine("bg 1")
	c.Assert(out.String(), qt.Equals, "[1] sleep &\n")
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// waitForJobState polls Reap until the numbered job reaches want or a
// deadline passes, since a stop signal takes the kernel a moment to
// actually suspend the process.
func waitForJobState(sh *Shell, number int, want JobState) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		sh.Reap()
		if j, ok := sh.jobs.findByNumber(number); ok && j.State == want {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

func TestRunLinePingNoSuchProcess(t *testing.T) {
	c := qt.New(t)
	sh, _, errOut := newTestShell(t)

	// PID 999999999 is astronomically unlikely to exist.
	sh.RunLine("ping 999999999 9")
	c.Assert(errOut.String(), qt.Equals, "No such process found\n")
}
