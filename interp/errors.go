// Copyright (c) 2026 lsh authors
// See LICENSE for licensing information

package interp

import "errors"

// Stable, user-visible error strings from §6, owned by this package
// (the redirection-specific ones live in the syntax package instead).
var (
	errNoSuchDirectory  = errors.New("No such directory!")
	errProcessNotFound  = errors.New("No such process found")
	errCommandNotFound  = errors.New("Command not found!")
	errNoSuchJob        = errors.New("No such job")
	errJobAlreadyActive = errors.New("Job already running")
)
