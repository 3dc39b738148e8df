// Copyright (c) 2026 latticeforge contributors
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gridgen

import (
	"sort"

	"github.com/latticeforge/gridgen/lattice"
)

// sortedPositions returns the keys of m in the total order
// lattice.Position.Less imposes, which is the order the builders use to
// guarantee deterministic emission.
func sortedPositions[V any](m map[lattice.Position]V) []lattice.Position {
	keys := make([]lattice.Position, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Less(keys[j])
	})
	return keys
}
