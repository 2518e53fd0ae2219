package plan

import (
	"fmt"

	"github.com/imamik/vnetplan/internal/cidr"
)

// ConfigurationError reports invalid planning input, such as a
// non-positive zone limit or a network definition without a name.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

// UnresolvedParentBlockError reports that no parent block could be
// determined: neither an explicit block nor a usable pool source.
type UnresolvedParentBlockError struct {
	// PoolID is set when a pool was consulted but returned no block.
	PoolID string
}

func (e *UnresolvedParentBlockError) Error() string {
	if e.PoolID != "" {
		return fmt.Sprintf("no parent block: pool %q has no free block of the requested size", e.PoolID)
	}
	return "no parent block: configure either an explicit CIDR or a pool source"
}

// InvalidSubnetWidthError reports a network whose target prefix is
// shorter (less specific) than the parent's, which would require a
// subnet larger than the block it is carved from.
type InvalidSubnetWidthError struct {
	Network      string
	TargetPrefix int
	ParentPrefix int
}

func (e *InvalidSubnetWidthError) Error() string {
	return fmt.Sprintf("network %q requests /%d, which is wider than the parent /%d; the target prefix must be at least as long as the parent's",
		e.Network, e.TargetPrefix, e.ParentPrefix)
}

// AllocationExhaustedError reports that the ordered allocation sequence
// does not fit within the parent block. Index is the 0-based position of
// the first entry that overflowed; Allocated is the number of entries
// successfully placed before it.
type AllocationExhaustedError struct {
	// Entry is the composite name of the failing entry, when known.
	Entry       string
	Index       int
	Allocated   int
	Parent      cidr.Block
	ChildPrefix int
}

func (e *AllocationExhaustedError) Error() string {
	entry := fmt.Sprintf("entry %d", e.Index)
	if e.Entry != "" {
		entry = fmt.Sprintf("entry %d (%s)", e.Index, e.Entry)
	}
	return fmt.Sprintf("parent block %s exhausted at %s: a /%d no longer fits after %d allocated subnets; reduce the network or zone count, or widen the parent prefix",
		e.Parent, entry, e.ChildPrefix, e.Allocated)
}
