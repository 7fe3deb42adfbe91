// SPDX-License-Identifier: MIT

// Package config loads run descriptions from YAML and turns them into engine
// options.
//
// A run file names the seeds, the expansion policy and the overlap and
// termination strategies, plus optional budgets, expander wrappers
// (LRU cache, rate limit), logging, and a list of variants for comparison:
//
//	seeds: [N0, N6]
//	policy: path-potential
//	overlap:
//	  strategy: threshold
//	  threshold: 0.4
//	termination: transitive
//	max_iterations: 10000
//	time_budget: 2s
//	variants:
//	  - name: bfs
//	    policy: fifo
//
// Empty names fall back to the engine defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure returned by Parse and Load.
var ErrInvalid = errors.New("config: invalid run")

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Run is one run description.
type Run struct {
	Graph              string        `yaml:"graph"`
	Seeds              []string      `yaml:"seeds" validate:"required,min=1,unique,dive,required"`
	Policy             string        `yaml:"policy" validate:"omitempty,policy"`
	RandomSeed         int64         `yaml:"random_seed"`
	Overlap            Overlap       `yaml:"overlap"`
	Termination        string        `yaml:"termination" validate:"omitempty,oneof=common pairwise transitive"`
	MaxIterations      int           `yaml:"max_iterations" validate:"gte=0"`
	TimeBudget         time.Duration `yaml:"time_budget" validate:"gte=0"`
	TargetPathsPerPair int           `yaml:"target_paths_per_pair" validate:"gte=0"`
	Expander           Expander      `yaml:"expander"`
	Logging            Logging       `yaml:"logging"`
	Variants           []Variant     `yaml:"variants" validate:"dive"`
}

// Overlap selects the overlap strategy and its parameters.
type Overlap struct {
	Strategy    string  `yaml:"strategy" validate:"omitempty,oneof=physical threshold sphere"`
	Threshold   float64 `yaml:"threshold" validate:"gte=0,lte=1"`
	MaxDistance int     `yaml:"max_distance" validate:"gte=0"`
}

// Expander configures wrappers placed in front of the graph source.
type Expander struct {
	CacheSize int     `yaml:"cache_size" validate:"gte=0"`
	RateLimit float64 `yaml:"rate_limit" validate:"gte=0"`
	Burst     int     `yaml:"burst" validate:"gte=0"`
}

// Logging configures the logrus logger built by NewLogger.
type Logging struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=panic fatal error warn warning info debug trace"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// Variant overrides strategy names of the base run for one comparison entry.
type Variant struct {
	Name        string   `yaml:"name" validate:"required"`
	Policy      string   `yaml:"policy" validate:"omitempty,policy"`
	RandomSeed  *int64   `yaml:"random_seed"`
	Overlap     *Overlap `yaml:"overlap"`
	Termination string   `yaml:"termination" validate:"omitempty,oneof=common pairwise transitive"`
}

// Load reads and validates the run file at path.
func Load(path string) (*Run, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	r, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return r, nil
}

// Parse decodes a run from YAML. Unknown keys are rejected.
func Parse(rd io.Reader) (*Run, error) {
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)

	var r Run
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return &r, nil
}

// Validate checks struct tags and cross-field rules.
func (r *Run) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	seen := make(map[string]bool, len(r.Variants))
	for _, v := range r.Variants {
		if seen[v.Name] {
			return fmt.Errorf("%w: duplicate variant %q", ErrInvalid, v.Name)
		}
		seen[v.Name] = true
	}
	if r.Expander.RateLimit > 0 && r.Expander.Burst == 0 {
		return fmt.Errorf("%w: expander.burst must be >= 1 with a rate limit", ErrInvalid)
	}

	return nil
}
