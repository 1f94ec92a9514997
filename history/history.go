// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

// Package history implements the shell's persistent command history:
// a bounded, distinct-adjacent ring of the user's most recent
// commands, mirrored to a file under the shell's home directory.
package history

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
)

// FileName is the stable, user-visible history file name from §6.
const FileName = ".lsh_log"

// DefaultCapacity is the reference shell's history ring size (§3).
const DefaultCapacity = 15

// History is a bounded, distinct-adjacent ring of command lines,
// persisted to disk on every mutation. The zero value is not usable;
// build one with Open.
type History struct {
	path     string
	capacity int
	entries  []string
}

// Open loads the history ring from <home>/.lsh_log, oldest to newest.
// A missing or unreadable file degrades to an empty, session-only
// ring rather than failing shell startup — persistence problems are
// never fatal (§7).
func Open(home string, capacity int) *History {
	h := &History{
		path:     filepath.Join(home, FileName),
		capacity: capacity,
	}
	f, err := os.Open(h.path)
	if err != nil {
		return h
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		h.entries = append(h.entries, sc.Text())
	}
	if len(h.entries) > capacity {
		h.entries = h.entries[len(h.entries)-capacity:]
	}
	return h
}

// Len reports the number of stored entries.
func (h *History) Len() int { return len(h.entries) }

// Entries returns the ring oldest-first. The returned slice must not
// be mutated by the caller.
func (h *History) Entries() []string { return h.entries }

// ShouldRecord reports whether cmd qualifies for the history ring
// (§4.7): non-empty, its first word is not "log" (so "log execute"
// output is never itself recorded, breaking the self-reinforcing
// loop §9 warns about), and it differs from the most recently stored
// command.
func (h *History) ShouldRecord(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}
	if firstWord(cmd) == "log" {
		return false
	}
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == cmd {
		return false
	}
	return true
}

// Append records cmd if ShouldRecord(cmd), evicting the oldest entry
// if the ring is full, then rewrites the file. Append is a no-op
// (beyond the eligibility check) when cmd does not qualify.
func (h *History) Append(cmd string) {
	if !h.ShouldRecord(cmd) {
		return
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.capacity {
		h.entries = h.entries[len(h.entries)-h.capacity:]
	}
	h.persist()
}

// Purge empties the ring and removes the history file, per §4.7 and
// the original implementation's logPurge (SPEC_FULL.md's supplemented
// behaviour: delete rather than truncate-to-empty).
func (h *History) Purge() {
	h.entries = nil
	os.Remove(h.path)
}

// At returns the entry at 1-indexed, newest-first position i (as
// used by "log execute <i>"), and whether it exists.
func (h *History) At(i int) (string, bool) {
	if i < 1 || i > len(h.entries) {
		return "", false
	}
	return h.entries[len(h.entries)-i], true
}

// persist rewrites the history file from scratch, oldest first, one
// entry per line plus a trailing newline. It uses renameio so a crash
// or concurrent reader never observes a half-written file: the new
// content lands in a temp file in the same directory and is renamed
// into place atomically, the same contract the teacher's go.mod
// brings in for exactly this purpose.
//
// Failure degrades silently (§7: "I/O to history file ... Silently
// degrade") — the in-memory ring stays authoritative for the rest of
// the session either way.
func (h *History) persist() {
	var b strings.Builder
	for _, e := range h.entries {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	_ = renameio.WriteFile(h.path, []byte(b.String()), 0o644)
}

func firstWord(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i]
	}
	return s
}
