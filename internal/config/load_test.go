package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
name: prod-vnet
network_zone: eu-central
parent:
  cidr: 10.0.0.0/16
networks:
  - name: app
    prefix_length: 24
    group: app
  - name: db
    prefix_length: 24
    group: data
zones:
  - fsn1
  - nbg1
max_zones: 2
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vnet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile(writeTempConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "prod-vnet", cfg.Name)
	assert.Equal(t, "eu-central", cfg.NetworkZone)
	assert.Equal(t, "10.0.0.0/16", cfg.Parent.CIDR)
	require.Len(t, cfg.Networks, 2)
	assert.Equal(t, "app", cfg.Networks[0].Name)
	assert.Equal(t, 24, cfg.Networks[0].PrefixLength)
	assert.Equal(t, "data", cfg.Networks[1].Group)
	assert.Equal(t, []string{"fsn1", "nbg1"}, cfg.Zones)
	require.NotNil(t, cfg.MaxZones)
	assert.Equal(t, 2, *cfg.MaxZones)
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFileInvalidYAML(t *testing.T) {
	_, err := LoadFile(writeTempConfig(t, "  {{not yaml"))
	assert.Error(t, err)
}

func TestLoadFileEnvOverride(t *testing.T) {
	t.Setenv("VNETPLAN_HCLOUD_TOKEN", "env-token")

	cfg, err := LoadFile(writeTempConfig(t, validYAML))
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.HCloudToken)
}

func TestLoadFileDefaultsNetworkZone(t *testing.T) {
	yaml := `
name: vnet
parent:
  cidr: 10.0.0.0/16
networks:
  - name: app
    prefix_length: 24
    group: app
zones: [fsn1]
`
	cfg, err := LoadFile(writeTempConfig(t, yaml))
	require.NoError(t, err)
	assert.Equal(t, "eu-central", cfg.NetworkZone)
}

func TestLoadFilePoolParent(t *testing.T) {
	yaml := `
name: vnet
parent:
  pool: rfc1918
  prefix_length: 20
pools:
  rfc1918: 10.0.0.0/8
networks:
  - name: app
    prefix_length: 24
    group: app
zones: [fsn1]
`
	cfg, err := LoadFile(writeTempConfig(t, yaml))
	require.NoError(t, err)
	assert.Equal(t, "rfc1918", cfg.Parent.Pool)
	assert.Equal(t, 20, cfg.Parent.PrefixLength)
	assert.Equal(t, "10.0.0.0/8", cfg.Pools["rfc1918"])
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	t.Parallel()
	cfg := &Config{
		Name:        "vnet",
		NetworkZone: "eu-central",
		Parent:      ParentConfig{CIDR: "10.0.0.0/16"},
		Networks: []NetworkConfig{
			{Name: "app", PrefixLength: 24, Group: "app"},
		},
		Zones: []string{"fsn1"},
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteYAML(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	reloaded, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.Name, reloaded.Name)
	assert.Equal(t, cfg.Networks, reloaded.Networks)
}
