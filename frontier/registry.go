// SPDX-License-Identifier: MIT

package frontier

// Registry records, per node ordinal, the first frontier that claimed it and
// every frontier that has visited it, in visit order. Ownership is never
// reassigned.
type Registry struct {
	visitors map[uint32][]int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{visitors: make(map[uint32][]int)}
}

// Claim records that frontier visited node. It returns the owner (the first
// claimant) and whether this call made frontier the owner.
// Complexity: O(1) amortized.
func (r *Registry) Claim(node uint32, frontier int) (int, bool) {
	vs, ok := r.visitors[node]
	r.visitors[node] = append(vs, frontier)
	if !ok {
		return frontier, true
	}

	return vs[0], false
}

// Owner returns the first frontier that claimed node.
func (r *Registry) Owner(node uint32) (int, bool) {
	vs, ok := r.visitors[node]
	if !ok {
		return 0, false
	}
	return vs[0], true
}

// Visitors returns every frontier that visited node, owner first. Callers
// must not modify the slice.
func (r *Registry) Visitors(node uint32) []int { return r.visitors[node] }

// Len returns the number of claimed nodes.
func (r *Registry) Len() int { return len(r.visitors) }
