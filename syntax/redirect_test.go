// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package syntax

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSplitArgsExcludesRedirTargets(t *testing.T) {
	c := qt.New(t)
	toks := Lex("grep foo < in.txt > out.txt")
	args, redirs := SplitArgs(toks[:len(toks)-1]) // drop END
	c.Check(args, qt.DeepEquals, []string{"grep", "foo"})
	c.Assert(redirs, qt.HasLen, 2)
	c.Check(redirs[0].Path, qt.Equals, "in.txt")
	c.Check(redirs[1].Path, qt.Equals, "out.txt")
}

func TestPlanRedirectionsLastWins(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()
	f1 := filepath.Join(dir, "f1")
	f2 := filepath.Join(dir, "f2")
	c.Assert(os.WriteFile(f1, []byte("stale"), 0o644), qt.IsNil)

	toks := Lex("cmd > " + f1 + " > " + f2)
	plan, err := PlanRedirections(toks[:len(toks)-1])
	c.Assert(err, qt.IsNil)
	defer plan.Close()

	c.Check(plan.Stdout.Name(), qt.Equals, f2)

	// f1 must still have been opened (and truncated) for its
	// side effect, even though f2 is the one that survives.
	got, err := os.ReadFile(f1)
	c.Assert(err, qt.IsNil)
	c.Check(string(got), qt.Equals, "")
}

func TestPlanRedirectionsAppend(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()
	f := filepath.Join(dir, "log")
	c.Assert(os.WriteFile(f, []byte("one\n"), 0o644), qt.IsNil)

	toks := Lex("cmd >> " + f)
	plan, err := PlanRedirections(toks[:len(toks)-1])
	c.Assert(err, qt.IsNil)
	defer plan.Close()
	c.Check(plan.Mode, qt.Equals, Append)

	_, err = plan.Stdout.WriteString("two\n")
	c.Assert(err, qt.IsNil)

	got, err := os.ReadFile(f)
	c.Assert(err, qt.IsNil)
	c.Check(string(got), qt.Equals, "one\ntwo\n")
}

func TestPlanRedirectionsNoSuchFile(t *testing.T) {
	c := qt.New(t)
	toks := Lex("cat < /no/such/path/lsh-test")
	_, err := PlanRedirections(toks[:len(toks)-1])
	c.Assert(err, qt.Not(qt.IsNil))
	c.Check(err.Error(), qt.Equals, "No such file or directory")
}

func TestSplitArgsKeepsInterleavedOrder(t *testing.T) {
	c := qt.New(t)
	toks := Lex("cmd <f1 <f2")
	_, redirs := SplitArgs(toks[:len(toks)-1])
	c.Assert(redirs, qt.HasLen, 2)
	c.Check(redirs[0].Path, qt.Equals, "f1")
	c.Check(redirs[1].Path, qt.Equals, "f2")
}
