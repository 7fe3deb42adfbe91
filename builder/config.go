// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: builderConfig, deterministic defaults and functional options.
//
// Defaults:
//   - idFn  = DefaultIDFn ("0","1",...)
//   - hubID = "Center"
//   - rng   = nil (pure unless seeded)

package builder

import (
	"math/rand"
)

// centerVertexID is the default hub label used by Star.
const centerVertexID = "Center"

// builderConfig aggregates all knobs used by constructors. It is passed by
// value so constructors cannot leak changes to each other.
type builderConfig struct {
	idFn  IDFn
	hubID string
	rng   *rand.Rand
}

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts over the defaults; last option wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:  DefaultIDFn,
		hubID: centerVertexID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hubID == "" {
		cfg.hubID = centerVertexID
	}

	return cfg
}

// WithIDScheme sets the vertex ID generator idx -> string. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithHubID sets the hub label used by Star. Empty restores the default.
func WithHubID(id string) BuilderOption {
	return func(c *builderConfig) { c.hubID = id }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG; use it in tests to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
