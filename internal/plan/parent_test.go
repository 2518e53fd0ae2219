package plan

import (
	"context"
	"errors"
	"testing"

	"github.com/imamik/vnetplan/internal/cidr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPool implements PoolAllocator for tests.
type stubPool struct {
	block cidr.Block
	ok    bool
	err   error

	gotPool   string
	gotPrefix int
}

func (s *stubPool) PreviewBlock(_ context.Context, poolID string, prefixLength int) (cidr.Block, bool, error) {
	s.gotPool = poolID
	s.gotPrefix = prefixLength
	return s.block, s.ok, s.err
}

func TestResolveParentExplicit(t *testing.T) {
	t.Parallel()
	block := cidr.MustParse("10.0.0.0/16")

	got, err := ResolveParent(context.Background(), ParentSource{Explicit: &block}, nil)
	require.NoError(t, err)
	assert.Equal(t, block, got)
}

func TestResolveParentFromPool(t *testing.T) {
	t.Parallel()
	pool := &stubPool{block: cidr.MustParse("10.128.0.0/20"), ok: true}
	src := ParentSource{FromPool: &PoolRequest{PoolID: "prod", PrefixLength: 20}}

	got, err := ResolveParent(context.Background(), src, pool)
	require.NoError(t, err)
	assert.Equal(t, "10.128.0.0/20", got.String())
	assert.Equal(t, "prod", pool.gotPool)
	assert.Equal(t, 20, pool.gotPrefix)
}

func TestResolveParentExplicitWinsOverPool(t *testing.T) {
	t.Parallel()
	block := cidr.MustParse("10.0.0.0/16")
	pool := &stubPool{block: cidr.MustParse("10.128.0.0/20"), ok: true}
	src := ParentSource{Explicit: &block, FromPool: &PoolRequest{PoolID: "prod", PrefixLength: 20}}

	got, err := ResolveParent(context.Background(), src, pool)
	require.NoError(t, err)
	assert.Equal(t, block, got)
	assert.Empty(t, pool.gotPool, "pool must not be consulted")
}

func TestResolveParentUnresolved(t *testing.T) {
	t.Parallel()

	t.Run("neither variant set", func(t *testing.T) {
		t.Parallel()
		_, err := ResolveParent(context.Background(), ParentSource{}, &stubPool{})
		var unresolved *UnresolvedParentBlockError
		require.ErrorAs(t, err, &unresolved)
		assert.Empty(t, unresolved.PoolID)
	})

	t.Run("pool has no free block", func(t *testing.T) {
		t.Parallel()
		src := ParentSource{FromPool: &PoolRequest{PoolID: "prod", PrefixLength: 20}}
		_, err := ResolveParent(context.Background(), src, &stubPool{ok: false})
		var unresolved *UnresolvedParentBlockError
		require.ErrorAs(t, err, &unresolved)
		assert.Equal(t, "prod", unresolved.PoolID)
	})

	t.Run("no allocator wired", func(t *testing.T) {
		t.Parallel()
		src := ParentSource{FromPool: &PoolRequest{PoolID: "prod", PrefixLength: 20}}
		_, err := ResolveParent(context.Background(), src, nil)
		var unresolved *UnresolvedParentBlockError
		assert.ErrorAs(t, err, &unresolved)
	})
}

func TestResolveParentPoolErrorPropagates(t *testing.T) {
	t.Parallel()
	poolErr := errors.New("pool backend down")
	src := ParentSource{FromPool: &PoolRequest{PoolID: "prod", PrefixLength: 20}}

	_, err := ResolveParent(context.Background(), src, &stubPool{err: poolErr})
	require.Error(t, err)
	assert.ErrorIs(t, err, poolErr)
}
