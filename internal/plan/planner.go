package plan

import (
	"context"
	"errors"

	"github.com/imamik/vnetplan/internal/cidr"
)

// Input describes one planning run.
type Input struct {
	Parent   ParentSource
	Networks []NetworkSpec
	// Zones is the full ordered zone list from discovery or config.
	Zones []Zone
	// MaxZones optionally trims Zones to its first N entries.
	MaxZones *int
	// Pool is consulted only when Parent.FromPool is set.
	Pool PoolAllocator
}

// Result is the complete output of a planning run: the resolved parent,
// the selected zones, the ordered allocations and their lookup index.
type Result struct {
	Parent      cidr.Block
	Zones       []Zone
	Allocations []Allocation
	Index       *Index
}

// Plan runs the full pipeline: select zones, resolve the parent block,
// build the ordered entries, allocate and index. Either the whole run
// succeeds or no output is valid; there is no partial commit.
//
// The computation is deterministic and owns all of its intermediates;
// concurrent runs with independent inputs are safe.
func Plan(ctx context.Context, in Input) (*Result, error) {
	zones, err := SelectZones(in.Zones, in.MaxZones)
	if err != nil {
		return nil, err
	}

	parent, err := ResolveParent(ctx, in.Parent, in.Pool)
	if err != nil {
		return nil, err
	}

	entries, err := BuildEntries(in.Networks, zones, parent.Prefix())
	if err != nil {
		return nil, err
	}

	deltas := make([]int, len(entries))
	for i, e := range entries {
		deltas[i] = e.BitDelta
	}

	blocks, err := Allocate(parent, deltas)
	if err != nil {
		// The allocator works positionally; attach the entry name here
		// where positions map back to composite names.
		var exhausted *AllocationExhaustedError
		if errors.As(err, &exhausted) && exhausted.Index < len(entries) {
			exhausted.Entry = entries[exhausted.Index].Name
		}
		return nil, err
	}

	allocations := make([]Allocation, len(entries))
	for i, e := range entries {
		allocations[i] = Allocation{Name: e.Name, Zone: e.Zone, Group: e.Group, Block: blocks[i]}
	}

	return &Result{
		Parent:      parent,
		Zones:       zones,
		Allocations: allocations,
		Index:       BuildIndex(allocations),
	}, nil
}
