// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates construction could not proceed (nil constructor,
// reader failure).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrMalformedLine indicates an edge-list line that is not "u v".
var ErrMalformedLine = errors.New("builder: malformed edge-list line")
