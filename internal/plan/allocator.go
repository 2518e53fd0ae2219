package plan

import (
	"fmt"
	"math/big"

	"github.com/imamik/vnetplan/internal/cidr"
)

var bigOne = big.NewInt(1)

// Allocate carves one child block per bit delta out of the parent, in
// input order. Every child has prefix length parent+delta, lies entirely
// within the parent and overlaps no other child. Identical inputs always
// yield identical outputs.
//
// The algorithm is sequential greedy bisection: a cursor starts at the
// parent's base address; for each entry the cursor is rounded up to the
// child's own block-size boundary, the child is assigned there and the
// cursor advances past it. The per-child alignment step is what makes
// mixed prefix lengths safe: a block must start on a multiple of its
// own size no matter what was placed before it.
//
// On overflow the run fails as a whole with an AllocationExhaustedError;
// no partial output is returned.
func Allocate(parent cidr.Block, deltas []int) ([]cidr.Block, error) {
	blocks := make([]cidr.Block, 0, len(deltas))
	cursor := parent.First()
	limit := new(big.Int).Add(parent.Last(), bigOne) // first address past the parent

	for i, delta := range deltas {
		if delta < 0 {
			return nil, fmt.Errorf("entry %d: negative bit delta %d", i, delta)
		}
		childPrefix := parent.Prefix() + delta
		if childPrefix > parent.Bits() {
			return nil, fmt.Errorf("entry %d: prefix /%d exceeds the %d-bit address space", i, childPrefix, parent.Bits())
		}
		size := new(big.Int).Lsh(bigOne, uint(parent.Bits()-childPrefix))

		if rem := new(big.Int).Mod(cursor, size); rem.Sign() != 0 {
			cursor.Add(cursor, new(big.Int).Sub(size, rem))
		}

		end := new(big.Int).Add(cursor, size)
		if end.Cmp(limit) > 0 {
			return nil, &AllocationExhaustedError{
				Index:       i,
				Allocated:   i,
				Parent:      parent,
				ChildPrefix: childPrefix,
			}
		}

		block, err := cidr.FromInt(cursor, childPrefix, parent.Bits())
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		blocks = append(blocks, block)
		cursor = end
	}

	return blocks, nil
}
