// SPDX-License-Identifier: MIT

package overlap

import "github.com/RoaringBitmap/roaring/v2"

// Jaccard returns |a∩b| / |a∪b|, and 0 when both sets are empty.
// Complexity: O(containers) via roaring cardinality kernels, no allocation.
func Jaccard(a, b *roaring.Bitmap) float64 {
	union := a.OrCardinality(b)
	if union == 0 {
		return 0
	}
	return float64(a.AndCardinality(b)) / float64(union)
}
