// SPDX-License-Identifier: MIT
//
// File: id_fn.go
// Role: vertex ID schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to a vertex ID.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index: 0→"0", 1→"1".
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// SymbolNumberIDFn returns prefix + decimal index, e.g. "N0", "N1".
// The returned IDFn panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}
