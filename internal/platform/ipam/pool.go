// Package ipam backs the planner's pool-allocation preview with
// metal-stack go-ipam over in-memory storage. Pools are seeded from
// configuration at startup; nothing is persisted across runs.
package ipam

import (
	"context"
	"fmt"

	goipam "github.com/metal-stack/go-ipam"

	"github.com/imamik/vnetplan/internal/cidr"
)

// Pools previews parent blocks from named address pools. It satisfies
// plan.PoolAllocator.
type Pools struct {
	ipamer goipam.Ipamer
	cidrs  map[string]string // pool id → pool range
}

// NewMemoryPools seeds an in-memory IPAM with the given pools, mapping
// pool identifiers to their CIDR ranges.
func NewMemoryPools(ctx context.Context, pools map[string]string) (*Pools, error) {
	p := &Pools{
		ipamer: goipam.New(ctx),
		cidrs:  make(map[string]string, len(pools)),
	}
	for id, r := range pools {
		prefix, err := p.ipamer.NewPrefix(ctx, r)
		if err != nil {
			return nil, fmt.Errorf("failed to register pool %q (%s): %w", id, r, err)
		}
		p.cidrs[id] = prefix.Cidr
	}
	return p, nil
}

// PreviewBlock acquires a child prefix from the pool and immediately
// releases it again, so the returned block is a non-committing preview:
// repeated previews against an otherwise idle pool yield the same block.
func (p *Pools) PreviewBlock(ctx context.Context, poolID string, prefixLength int) (cidr.Block, bool, error) {
	parentCidr, ok := p.cidrs[poolID]
	if !ok {
		return cidr.Block{}, false, fmt.Errorf("unknown pool %q", poolID)
	}
	if prefixLength <= 0 || prefixLength > 128 {
		return cidr.Block{}, false, fmt.Errorf("invalid prefix length %d", prefixLength)
	}

	// #nosec G115
	child, err := p.ipamer.AcquireChildPrefix(ctx, parentCidr, uint8(prefixLength))
	if err != nil {
		// go-ipam reports exhaustion as an error; the planner treats it
		// as "no block available".
		return cidr.Block{}, false, nil
	}
	defer func() {
		_ = p.ipamer.ReleaseChildPrefix(ctx, child)
	}()

	block, err := cidr.Parse(child.Cidr)
	if err != nil {
		return cidr.Block{}, false, fmt.Errorf("pool %q returned malformed block %q: %w", poolID, child.Cidr, err)
	}
	return block, true, nil
}
