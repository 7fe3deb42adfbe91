// SPDX-License-Identifier: MIT

package frontier

// Interner maps node ids to dense ordinals 0,1,2,... in first-seen order.
type Interner struct {
	ords map[string]uint32
	ids  []string
}

// NewInterner returns an empty Interner.
func NewInterner() *Interner {
	return &Interner{ords: make(map[string]uint32)}
}

// Intern returns the ordinal of id, assigning the next one if id is new.
// Complexity: O(1) amortized.
func (in *Interner) Intern(id string) uint32 {
	if ord, ok := in.ords[id]; ok {
		return ord
	}
	ord := uint32(len(in.ids))
	in.ords[id] = ord
	in.ids = append(in.ids, id)

	return ord
}

// Lookup returns the ordinal of a previously interned id.
func (in *Interner) Lookup(id string) (uint32, bool) {
	ord, ok := in.ords[id]
	return ord, ok
}

// ID returns the node id for ord. It panics on an ordinal never issued.
func (in *Interner) ID(ord uint32) string { return in.ids[ord] }

// IDs maps ords to node ids, preserving order.
func (in *Interner) IDs(ords []uint32) []string {
	out := make([]string, len(ords))
	for i, o := range ords {
		out[i] = in.ids[o]
	}
	return out
}

// Len returns the number of interned ids.
func (in *Interner) Len() int { return len(in.ids) }
