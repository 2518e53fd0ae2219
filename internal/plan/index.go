package plan

import "github.com/imamik/vnetplan/internal/cidr"

// Index holds the lookup structures consumed by provisioning. Group
// order is the order of first appearance in the allocation sequence;
// member order within a group is allocation order. The index is built
// only after the ordered allocation pass has completed; it never
// participates in ordering decisions.
type Index struct {
	// Blocks maps composite names to their allocated block.
	Blocks map[string]cidr.Block
	// Groups maps a group label to its member allocations.
	Groups map[string][]Allocation
	// GroupBlocks maps a group label to its member blocks.
	GroupBlocks map[string][]cidr.Block
	// GroupOrder lists group labels by first appearance.
	GroupOrder []string
}

// BuildIndex aggregates ordered allocations into lookup maps. Pure
// aggregation; re-running it on the same input produces identical maps.
func BuildIndex(allocations []Allocation) *Index {
	idx := &Index{
		Blocks:      make(map[string]cidr.Block, len(allocations)),
		Groups:      make(map[string][]Allocation),
		GroupBlocks: make(map[string][]cidr.Block),
	}

	for _, a := range allocations {
		idx.Blocks[a.Name] = a.Block
		if _, seen := idx.Groups[a.Group]; !seen {
			idx.GroupOrder = append(idx.GroupOrder, a.Group)
		}
		idx.Groups[a.Group] = append(idx.Groups[a.Group], a)
		idx.GroupBlocks[a.Group] = append(idx.GroupBlocks[a.Group], a.Block)
	}

	return idx
}
