// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package syntax

import "errors"

// errSyntax is returned by Parse for any grammar violation. The
// package intentionally does not distinguish reasons (missing NAME
// after a redirection operator, missing right operand for '|', ...):
// every caller reports the same stable "Invalid Syntax!" message
// regardless of which production failed.
var errSyntax = errors.New("invalid syntax")

// IsSyntaxError reports whether err was produced by Parse.
func IsSyntaxError(err error) bool {
	return errors.Is(err, errSyntax)
}

// errNoSuchFile and errCreateFile carry the two stable, user-visible
// redirection failure messages from §6. Callers print err.Error()
// directly; these are not wrapped further on the way to the user.
var (
	errNoSuchFile = errors.New("No such file or directory")
	errCreateFile = errors.New("Unable to create file for writing")
)

