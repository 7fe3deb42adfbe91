// SPDX-License-Identifier: MIT

package engine

import "errors"

// Sentinel errors for engine construction and execution.
var (
	// ErrNilExpander is returned when New receives a nil expander.
	ErrNilExpander = errors.New("engine: expander is nil")

	// ErrNoSeeds is returned when New receives no seeds.
	ErrNoSeeds = errors.New("engine: no seeds")

	// ErrDuplicateSeed is returned when a seed id is listed twice.
	ErrDuplicateSeed = errors.New("engine: duplicate seed")

	// ErrSeedNotFound is returned when a seed is empty or absent from the graph.
	ErrSeedNotFound = errors.New("engine: seed not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("engine: invalid option supplied")

	// ErrAlreadyRun is returned by a second call to Run.
	ErrAlreadyRun = errors.New("engine: run already started")
)
