package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/vnetplan/internal/config"
	hcloud_internal "github.com/imamik/vnetplan/internal/platform/hcloud"
)

func TestApply_Success(t *testing.T) {
	saveAndRestoreFactories(t)

	loadConfigFile = func(_ string) (*config.Config, error) {
		return testConfig(), nil
	}

	mock := hcloud_internal.NewMockClient()
	newInfraClient = func(_ string) hcloud_internal.Client {
		return mock
	}

	var err error
	output := captureOutput(func() {
		err = Apply(context.Background(), "")
	})
	require.NoError(t, err)

	network, err := mock.GetNetwork(context.Background(), "test-plan")
	require.NoError(t, err)
	require.NotNil(t, network)
	assert.Equal(t, "10.0.0.0/16", network.IPRange.String())
	assert.Len(t, network.Subnets, 4)

	assert.NotNil(t, mock.Firewall("test-plan-apps"))
	assert.NotNil(t, mock.Firewall("test-plan-data"))

	assert.Contains(t, output, "Apply complete!")
	assert.Contains(t, output, "Subnets: 4 across 2 zones")
	assert.Contains(t, output, "Firewalls: 2")
}

func TestApply_ConfigError(t *testing.T) {
	saveAndRestoreFactories(t)

	loadConfigFile = func(_ string) (*config.Config, error) {
		return nil, errors.New("malformed yaml")
	}

	err := Apply(context.Background(), "broken.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestApply_ProvisioningFailure(t *testing.T) {
	saveAndRestoreFactories(t)

	loadConfigFile = func(_ string) (*config.Config, error) {
		return testConfig(), nil
	}

	mock := hcloud_internal.NewMockClient()
	mock.FailWith = errors.New("api down")
	newInfraClient = func(_ string) hcloud_internal.Client {
		return mock
	}

	var err error
	captureOutput(func() {
		err = Apply(context.Background(), "")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "infrastructure phase failed")
}

func TestApply_PlanFailurePreemptsProvisioning(t *testing.T) {
	saveAndRestoreFactories(t)

	// Two /17 networks over two zones need four /17 blocks; a /16 parent
	// only holds two, so planning fails before any cloud call.
	cfg := testConfig()
	cfg.Networks = []config.NetworkConfig{
		{Name: "app", PrefixLength: 17, Group: "apps"},
		{Name: "db", PrefixLength: 17, Group: "data"},
	}
	loadConfigFile = func(_ string) (*config.Config, error) {
		return cfg, nil
	}

	mock := hcloud_internal.NewMockClient()
	newInfraClient = func(_ string) hcloud_internal.Client {
		return mock
	}

	err := Apply(context.Background(), "")
	require.Error(t, err)

	network, getErr := mock.GetNetwork(context.Background(), "test-plan")
	require.NoError(t, getErr)
	assert.Nil(t, network)
}
