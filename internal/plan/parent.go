package plan

import (
	"context"
	"fmt"

	"github.com/imamik/vnetplan/internal/cidr"
)

// PoolAllocator previews address blocks from a managed pool. The preview
// must not commit anything: the returned block is treated as immutable
// input for the current planning run only.
type PoolAllocator interface {
	// PreviewBlock returns one free block of the requested prefix length
	// from the pool, or ok=false when the pool cannot satisfy the request.
	PreviewBlock(ctx context.Context, poolID string, prefixLength int) (block cidr.Block, ok bool, err error)
}

// PoolRequest asks a pool for a parent block of a given prefix length.
type PoolRequest struct {
	PoolID       string
	PrefixLength int
}

// ParentSource selects where the parent block comes from. Exactly one
// variant should be set; Explicit wins when both are.
type ParentSource struct {
	Explicit *cidr.Block
	FromPool *PoolRequest
}

// ResolveParent determines the single parent block to subdivide. It is
// called once at the start of a planning run; the result is immutable
// for the rest of the run.
func ResolveParent(ctx context.Context, src ParentSource, pool PoolAllocator) (cidr.Block, error) {
	if src.Explicit != nil {
		return *src.Explicit, nil
	}
	if src.FromPool == nil || pool == nil {
		return cidr.Block{}, &UnresolvedParentBlockError{}
	}

	block, ok, err := pool.PreviewBlock(ctx, src.FromPool.PoolID, src.FromPool.PrefixLength)
	if err != nil {
		return cidr.Block{}, fmt.Errorf("pool preview for %q: %w", src.FromPool.PoolID, err)
	}
	if !ok {
		return cidr.Block{}, &UnresolvedParentBlockError{PoolID: src.FromPool.PoolID}
	}
	return block, nil
}
