package handlers

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/imamik/vnetplan/internal/config"
)

// captureOutput captures everything written to stdout during fn.
func captureOutput(fn func()) string {
	orig := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// saveAndRestoreFactories restores the package factory variables after a test.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()

	origLoadConfigFile := loadConfigFile
	origNewInfraClient := newInfraClient
	origNewPoolAllocator := newPoolAllocator
	origNewExporter := newExporter
	origFileExists := fileExists
	origStdinIsTerminal := stdinIsTerminal
	origRunWizard := runWizard
	origWriteConfig := writeConfig

	t.Cleanup(func() {
		loadConfigFile = origLoadConfigFile
		newInfraClient = origNewInfraClient
		newPoolAllocator = origNewPoolAllocator
		newExporter = origNewExporter
		fileExists = origFileExists
		stdinIsTerminal = origStdinIsTerminal
		runWizard = origRunWizard
		writeConfig = origWriteConfig
	})
}

// testConfig returns a minimal valid configuration with explicit zones.
func testConfig() *config.Config {
	return &config.Config{
		Name:        "test-plan",
		NetworkZone: "eu-central",
		Parent:      config.ParentConfig{CIDR: "10.0.0.0/16"},
		Networks: []config.NetworkConfig{
			{Name: "app", PrefixLength: 20, Group: "apps"},
			{Name: "db", PrefixLength: 24, Group: "data"},
		},
		Zones: []string{"fsn1", "nbg1"},
	}
}
