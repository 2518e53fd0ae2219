package plan

import "github.com/imamik/vnetplan/internal/cidr"

// Zone identifies an availability zone. Zones are totally ordered by
// their position in the input list; the planner never reorders them.
type Zone string

// NetworkSpec is one logical network requirement, independent of zone.
type NetworkSpec struct {
	// Name of the logical network, e.g. "app". Required.
	Name string
	// PrefixLength is the target prefix length of each subnet derived
	// from this network. Must be at least as specific as the parent's.
	PrefixLength int
	// Group labels the network for access-control association. Required.
	Group string
}

// Entry is one (network, zone) pair awaiting allocation. An entry's
// position in the slice is load-bearing: the allocator assigns blocks
// strictly in slice order.
type Entry struct {
	// Name is the composite "<network>-<zone>" name.
	Name  string
	Zone  Zone
	Group string
	// BitDelta is the number of additional prefix bits needed to narrow
	// the parent block down to this entry's target prefix length.
	BitDelta int
}

// Allocation is one allocated subnet, carrying its plan entry metadata.
type Allocation struct {
	Name  string
	Zone  Zone
	Group string
	Block cidr.Block
}
