// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"lsh": main1,
	}))
}

// TestScripts runs every golden scenario under testdata/scripts
// against the fake "lsh" command registered above, the same pattern
// the teacher's own cmd/shfmt test uses for its CLI.
func TestScripts(t *testing.T) {
	t.Parallel()
	testscript.Run(t, testscript.Params{
		Dir: filepath.Join("testdata", "scripts"),
	})
}
