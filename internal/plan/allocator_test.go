package plan

import (
	"testing"

	"github.com/imamik/vnetplan/internal/cidr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateUniformWidths(t *testing.T) {
	t.Parallel()
	parent := cidr.MustParse("10.0.0.0/24")

	blocks, err := Allocate(parent, []int{2, 2, 2, 2})
	require.NoError(t, err)

	want := []string{"10.0.0.0/26", "10.0.0.64/26", "10.0.0.128/26", "10.0.0.192/26"}
	require.Len(t, blocks, len(want))
	for i, w := range want {
		assert.Equal(t, w, blocks[i].String())
	}
}

func TestAllocateExactCapacityThenExhaustion(t *testing.T) {
	t.Parallel()
	parent := cidr.MustParse("10.0.0.0/24")

	// Four /26 subnets fill the /24 exactly.
	_, err := Allocate(parent, []int{2, 2, 2, 2})
	require.NoError(t, err)

	// A fifth of the same width no longer fits.
	_, err = Allocate(parent, []int{2, 2, 2, 2, 2})
	require.Error(t, err)

	var exhausted *AllocationExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 4, exhausted.Index)
	assert.Equal(t, 4, exhausted.Allocated)
	assert.Equal(t, 26, exhausted.ChildPrefix)
	assert.Equal(t, parent, exhausted.Parent)
}

func TestAllocateZeroDeltaIsIdentity(t *testing.T) {
	t.Parallel()
	parent := cidr.MustParse("192.168.4.0/22")

	blocks, err := Allocate(parent, []int{0})
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, parent, blocks[0])
}

func TestAllocateAlignsMixedWidths(t *testing.T) {
	t.Parallel()
	parent := cidr.MustParse("10.0.0.0/24")

	// A /26 followed by a /25: the /25 cannot start at .64, it must be
	// rounded up to its own 128-address boundary, leaving a gap.
	blocks, err := Allocate(parent, []int{2, 1})
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "10.0.0.0/26", blocks[0].String())
	assert.Equal(t, "10.0.0.128/25", blocks[1].String())

	// The alignment gap is not reclaimed: nothing else fits afterwards.
	_, err = Allocate(parent, []int{2, 1, 2})
	var exhausted *AllocationExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 2, exhausted.Index)
	assert.Equal(t, 2, exhausted.Allocated)
}

func TestAllocateProperties(t *testing.T) {
	t.Parallel()
	parent := cidr.MustParse("172.16.0.0/20")
	deltas := []int{4, 2, 6, 4, 3, 6, 6}

	blocks, err := Allocate(parent, deltas)
	require.NoError(t, err)
	require.Len(t, blocks, len(deltas))

	for i, b := range blocks {
		assert.Equal(t, parent.Prefix()+deltas[i], b.Prefix(), "entry %d prefix", i)
		assert.True(t, parent.Contains(b), "entry %d within parent", i)
		for j := i + 1; j < len(blocks); j++ {
			assert.False(t, b.Overlaps(blocks[j]), "entries %d and %d overlap", i, j)
		}
	}

	// Appending a /22 forces the cursor to align up to 4096 and past the
	// parent's last address, so the extended sequence must not fit.
	_, err = Allocate(parent, append(deltas, 2))
	var exhausted *AllocationExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, len(deltas), exhausted.Index)
	assert.Equal(t, len(deltas), exhausted.Allocated)
}

func TestAllocateDeterminism(t *testing.T) {
	t.Parallel()
	parent := cidr.MustParse("10.42.0.0/16")
	deltas := []int{8, 4, 8, 6, 8}

	first, err := Allocate(parent, deltas)
	require.NoError(t, err)
	second, err := Allocate(parent, deltas)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAllocateIPv6(t *testing.T) {
	t.Parallel()
	parent := cidr.MustParse("2001:db8::/32")

	blocks, err := Allocate(parent, []int{16, 16})
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "2001:db8::/48", blocks[0].String())
	assert.Equal(t, "2001:db8:1::/48", blocks[1].String())
}

func TestAllocateRejectsBadDeltas(t *testing.T) {
	t.Parallel()
	parent := cidr.MustParse("10.0.0.0/24")

	_, err := Allocate(parent, []int{-1})
	assert.Error(t, err)

	// /24 + 9 bits would pass the 32-bit address width.
	_, err = Allocate(parent, []int{9})
	assert.Error(t, err)
}

func TestAllocateEmptySequence(t *testing.T) {
	t.Parallel()
	blocks, err := Allocate(cidr.MustParse("10.0.0.0/24"), nil)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}
