// SPDX-License-Identifier: MIT

package expander

import "context"

// Op names the lookup passed to a FailFunc.
type Op string

// Lookup operations.
const (
	OpNeighbors Op = "neighbors"
	OpDegree    Op = "degree"
)

// FailFunc decides whether a lookup should fail; a non-nil error is returned
// to the caller instead of consulting the source.
type FailFunc func(op Op, id string) error

// Faulty injects lookup failures in front of a source, simulating partially
// loaded datasets.
type Faulty struct {
	src  Expander
	fail FailFunc
}

// NewFaulty wraps src. A nil fail never fails.
func NewFaulty(src Expander, fail FailFunc) *Faulty {
	if fail == nil {
		fail = func(Op, string) error { return nil }
	}
	return &Faulty{src: src, fail: fail}
}

// Neighbors implements Expander.
func (f *Faulty) Neighbors(ctx context.Context, id string) ([]string, error) {
	if err := f.fail(OpNeighbors, id); err != nil {
		return nil, err
	}
	return f.src.Neighbors(ctx, id)
}

// Degree implements Expander.
func (f *Faulty) Degree(ctx context.Context, id string) (int, error) {
	if err := f.fail(OpDegree, id); err != nil {
		return 0, err
	}
	return f.src.Degree(ctx, id)
}

// NodeCount forwards to the wrapped source; -1 when it is not a Sizer.
func (f *Faulty) NodeCount() int { return forwardSize(f.src) }
