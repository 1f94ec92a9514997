// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package syntax

import "lsh/token"

// Terminator identifies how a Segment ended.
type Terminator int

const (
	// TermEnd means the segment ran to the END sentinel.
	TermEnd Terminator = iota
	// TermSemi means the segment was closed by ';'.
	TermSemi
	// TermAmp means the segment was closed by '&' and must run in
	// the background.
	TermAmp
)

// Segment is a half-open range [Start, End) over a token buffer, plus
// the terminator that closed it. A Segment's tokens form one
// cmd_group: one or more atomics joined by '|'.
type Segment struct {
	Start, End int
	Term       Terminator
}

// Tokens returns the sub-slice of toks belonging to seg, excluding its
// terminator.
func (seg Segment) Tokens(toks []token.Token) []token.Token {
	return toks[seg.Start:seg.End]
}

// Split performs the sequential pass (§4.3.1): it slices toks on ';'
// and '&' into segments. Empty segments — produced by adjacent
// separators such as "cmd;;cmd" — are skipped silently, as required
// by §3's Segment invariant.
func Split(toks []token.Token) []Segment {
	var segs []Segment
	start := 0
	for i, t := range toks {
		var term Terminator
		switch t.Kind {
		case token.SEMI:
			term = TermSemi
		case token.AMP:
			term = TermAmp
		case token.END:
			term = TermEnd
		default:
			continue
		}
		if i > start {
			segs = append(segs, Segment{Start: start, End: i, Term: term})
		}
		start = i + 1
	}
	return segs
}

// SplitPipeline performs the pipeline pass (§4.3.2): it slices a
// segment's tokens on '|' into its atomics. Because the grammar never
// allows '|' to cross a ';' or '&', this pass is independent of
// Split and is applied per segment.
func SplitPipeline(toks []token.Token) [][]token.Token {
	var stages [][]token.Token
	start := 0
	for i, t := range toks {
		if t.Kind == token.PIPE {
			stages = append(stages, toks[start:i])
			start = i + 1
		}
	}
	stages = append(stages, toks[start:])
	return stages
}
