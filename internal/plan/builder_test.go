package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEntriesOrdering(t *testing.T) {
	t.Parallel()
	specs := []NetworkSpec{
		{Name: "app", PrefixLength: 26, Group: "app"},
		{Name: "db", PrefixLength: 26, Group: "data"},
	}
	zones := []Zone{"az1", "az2"}

	entries, err := BuildEntries(specs, zones, 24)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	// Specs outer, zones inner; this order is positional input to the
	// allocator and must never change.
	wantNames := []string{"app-az1", "app-az2", "db-az1", "db-az2"}
	for i, name := range wantNames {
		assert.Equal(t, name, entries[i].Name)
		assert.Equal(t, 2, entries[i].BitDelta)
	}
	assert.Equal(t, Zone("az1"), entries[0].Zone)
	assert.Equal(t, "app", entries[1].Group)
	assert.Equal(t, "data", entries[2].Group)
}

func TestBuildEntriesInvalidWidth(t *testing.T) {
	t.Parallel()
	specs := []NetworkSpec{
		{Name: "app", PrefixLength: 26, Group: "app"},
		{Name: "too-wide", PrefixLength: 23, Group: "app"},
	}

	_, err := BuildEntries(specs, []Zone{"az1"}, 24)
	require.Error(t, err)

	var widthErr *InvalidSubnetWidthError
	require.ErrorAs(t, err, &widthErr)
	assert.Equal(t, "too-wide", widthErr.Network)
	assert.Equal(t, 23, widthErr.TargetPrefix)
	assert.Equal(t, 24, widthErr.ParentPrefix)
}

func TestBuildEntriesRejectsMalformedSpecs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		specs []NetworkSpec
	}{
		{
			name:  "missing name",
			specs: []NetworkSpec{{PrefixLength: 26, Group: "app"}},
		},
		{
			name:  "missing group",
			specs: []NetworkSpec{{Name: "app", PrefixLength: 26}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := BuildEntries(tt.specs, []Zone{"az1"}, 24)
			var cfgErr *ConfigurationError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestBuildEntriesNoZones(t *testing.T) {
	t.Parallel()
	specs := []NetworkSpec{{Name: "app", PrefixLength: 26, Group: "app"}}

	entries, err := BuildEntries(specs, nil, 24)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
