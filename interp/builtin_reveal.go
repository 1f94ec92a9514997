// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package interp

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// runReveal implements "reveal" (§4.8): list the entries of a
// directory, defaulting to the current one. It takes home and
// prevDir as plain strings rather than a *Shell so the exact same
// function can run inside a reexeced pipeline child, which has no
// shared memory with the parent shell (see builtin_child.go).
func runReveal(home, prevDir string, args []string, out, errOut io.Writer) {
	var showAll, long bool
	var path string
	var gotPath bool

	for _, a := range args {
		switch {
		case a == "-a":
			showAll = true
		case a == "-l":
			long = true
		case a == "-al" || a == "-la":
			showAll, long = true, true
		case strings.HasPrefix(a, "-"):
			fmt.Fprintln(errOut, "Invalid Syntax!")
			return
		default:
			if gotPath {
				fmt.Fprintln(errOut, "Invalid Syntax!")
				return
			}
			path, gotPath = a, true
		}
	}

	dir := resolveRevealPath(home, prevDir, path)

	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintln(errOut, errNoSuchDirectory)
		return
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !showAll && strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	if !long {
		fmt.Fprintln(out, strings.Join(names, " "))
		return
	}
	for _, n := range names {
		fmt.Fprintln(out, n)
	}
}

// resolveRevealPath resolves reveal's optional path argument: "~" is
// the shell home, "-" is the previous working directory, and
// everything else (".", "..", relative, absolute) is handled by
// filepath directly. An empty argument means the current directory.
func resolveRevealPath(home, prevDir, path string) string {
	switch path {
	case "":
		return "."
	case "~":
		return home
	case "-":
		if prevDir == "" {
			return "."
		}
		return prevDir
	default:
		if strings.HasPrefix(path, "~/") {
			return filepath.Join(home, path[2:])
		}
		return path
	}
}
