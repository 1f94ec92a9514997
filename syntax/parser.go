// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package syntax

import "lsh/token"

// The accepted grammar:
//
//	shell_cmd  := cmd_group ((';' | '&') cmd_group)* ('&')?
//	cmd_group  := atomic ('|' atomic)*
//	atomic     := NAME (NAME | '<' NAME | '>' NAME | '>>' NAME)*
//
// The parser is a single-pass recursive descent validator: it never
// materializes a tree. Downstream components (Segmenter, Redirection
// planner, Executor) re-walk the same token slice by index range.

type parser struct {
	toks []token.Token
	pos  int
}

func (p *parser) cur() token.Token {
	return p.toks[p.pos]
}

// Parse reports whether toks (as produced by Lex) is a well-formed
// shell_cmd. It performs no allocation beyond the parser value itself
// and never returns a partial result: reject means the whole line is
// discarded by the caller.
func Parse(toks []token.Token) error {
	p := &parser{toks: toks}
	if err := p.shellCmd(); err != nil {
		return err
	}
	if p.cur().Kind != token.END {
		return errSyntax
	}
	return nil
}

func (p *parser) shellCmd() error {
	if err := p.cmdGroup(); err != nil {
		return err
	}
	for p.cur().Kind == token.SEMI || p.cur().Kind == token.AMP {
		term := p.cur().Kind
		p.pos++

		if p.cur().Kind == token.END {
			// A single trailing '&' backgrounds the preceding
			// group and is explicitly allowed by the grammar's
			// trailing ('&')? — a trailing ';' is not.
			if term == token.AMP {
				return nil
			}
			return errSyntax
		}
		if p.cur().Kind == token.SEMI || p.cur().Kind == token.AMP {
			// Two terminators in a row with no command between
			// them is rejected per §3, regardless of which
			// terminators: "cmd;;cmd" and "cmd&&cmd" are both
			// malformed.
			return errSyntax
		}
		if err := p.cmdGroup(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) cmdGroup() error {
	if err := p.atomic(); err != nil {
		return err
	}
	for p.cur().Kind == token.PIPE {
		p.pos++
		if err := p.atomic(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) atomic() error {
	if p.cur().Kind != token.NAME {
		return errSyntax
	}
	p.pos++
	for {
		switch p.cur().Kind {
		case token.NAME:
			p.pos++
		case token.IN, token.OUT, token.APPEND:
			p.pos++
			if p.cur().Kind != token.NAME {
				return errSyntax
			}
			p.pos++
		default:
			return nil
		}
	}
}
