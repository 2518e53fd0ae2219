package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultToConfig(t *testing.T) {
	t.Parallel()
	result := &Result{
		Name:        "prod-vnet",
		NetworkZone: "eu-central",
		ParentCIDR:  "10.0.0.0/16",
		Prefix:      "24",
		MaxZones:    "2",
		Networks:    []string{"app", "db"},
	}

	cfg := result.ToConfig()

	assert.Equal(t, "prod-vnet", cfg.Name)
	assert.Equal(t, "10.0.0.0/16", cfg.Parent.CIDR)
	require.Len(t, cfg.Networks, 2)
	assert.Equal(t, "app", cfg.Networks[0].Name)
	assert.Equal(t, "app", cfg.Networks[0].Group)
	assert.Equal(t, 24, cfg.Networks[0].PrefixLength)
	assert.Equal(t, "data", cfg.Networks[1].Group)
	require.NotNil(t, cfg.MaxZones)
	assert.Equal(t, 2, *cfg.MaxZones)
}

func TestResultToConfigNoZoneLimit(t *testing.T) {
	t.Parallel()
	result := &Result{
		Name:       "vnet",
		ParentCIDR: "10.0.0.0/16",
		Prefix:     "24",
		Networks:   []string{"edge"},
	}

	cfg := result.ToConfig()
	assert.Nil(t, cfg.MaxZones)
	assert.Equal(t, "restricted", cfg.Networks[0].Group)
}

func TestValidators(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateName("vnet"))
	assert.Error(t, validateName("  "))

	assert.NoError(t, validateCIDR("10.0.0.0/16"))
	assert.Error(t, validateCIDR("10.0.0.1/16"), "host bits set")
	assert.Error(t, validateCIDR("nope"))

	assert.NoError(t, validatePrefix("24"))
	assert.Error(t, validatePrefix("0"))
	assert.Error(t, validatePrefix("129"))
	assert.Error(t, validatePrefix("abc"))

	assert.NoError(t, validateMaxZones(""))
	assert.NoError(t, validateMaxZones("3"))
	assert.Error(t, validateMaxZones("0"))
	assert.Error(t, validateMaxZones("-2"))
}
