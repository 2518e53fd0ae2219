// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/imamik/vnetplan/internal/config"
	hcloud_internal "github.com/imamik/vnetplan/internal/platform/hcloud"
	"github.com/imamik/vnetplan/internal/platform/ipam"
	"github.com/imamik/vnetplan/internal/platform/s3"
	"github.com/imamik/vnetplan/internal/plan"
)

const defaultConfigPath = "vnetplan.yaml"

// planExporter uploads a rendered plan document. Matches s3.Exporter.
type planExporter interface {
	Export(ctx context.Context, planName string, document []byte) (string, error)
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfigFile loads config from file.
	loadConfigFile = config.LoadFile

	// newInfraClient creates a new infrastructure client.
	newInfraClient = func(token string) hcloud_internal.Client {
		return hcloud_internal.NewRealClient(token)
	}

	// newPoolAllocator seeds the in-memory pool previewer.
	newPoolAllocator = func(ctx context.Context, pools map[string]string) (plan.PoolAllocator, error) {
		return ipam.NewMemoryPools(ctx, pools)
	}

	// newExporter creates a plan exporter for the configured bucket.
	newExporter = func(export config.ExportConfig) (planExporter, error) {
		client, err := s3.NewClient(export.Endpoint, export.Region, export.AccessKey, export.SecretKey)
		if err != nil {
			return nil, err
		}
		return s3.NewExporter(client, export.Bucket, export.Prefix), nil
	}
)

// Plan computes the address plan and prints it without touching cloud
// resources. With export enabled, the rendered YAML document is also
// uploaded to the configured object storage bucket.
func Plan(ctx context.Context, configPath, format string, export bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	// Zone discovery is the only cloud interaction a plan run may need.
	var discoverer hcloud_internal.ZoneDiscoverer
	if len(cfg.Zones) == 0 {
		discoverer = newInfraClient(cfg.HCloudToken)
	}

	result, err := computePlan(ctx, cfg, discoverer)
	if err != nil {
		return err
	}

	switch format {
	case "yaml":
		doc, err := renderPlanYAML(cfg.Name, result)
		if err != nil {
			return err
		}
		fmt.Print(string(doc))
	default:
		fmt.Print(renderPlanTable(cfg.Name, result))
	}

	if export {
		if err := exportPlan(ctx, cfg, result); err != nil {
			return err
		}
	}

	return nil
}

// loadConfig loads and validates the configuration. If configPath is
// empty, it looks for vnetplan.yaml in the current directory.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := loadConfigFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no config file found at %s: %w\nRun 'vnetplan init' to create one", configPath, err)
		}
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// computePlan runs the planning pipeline for the configuration. Zones
// come from the config when listed explicitly, otherwise from cloud
// discovery via the given discoverer.
func computePlan(ctx context.Context, cfg *config.Config, discoverer hcloud_internal.ZoneDiscoverer) (*plan.Result, error) {
	parent, err := cfg.ParentSource()
	if err != nil {
		return nil, err
	}

	var pool plan.PoolAllocator
	if len(cfg.Pools) > 0 {
		pool, err = newPoolAllocator(ctx, cfg.Pools)
		if err != nil {
			return nil, fmt.Errorf("failed to seed pools: %w", err)
		}
	}

	zones := cfg.ZoneList()
	if len(zones) == 0 {
		if discoverer == nil {
			return nil, fmt.Errorf("no zones configured and no discoverer available")
		}
		discovered, err := discoverer.DiscoverZones(ctx, cfg.NetworkZone)
		if err != nil {
			return nil, fmt.Errorf("failed to discover zones: %w", err)
		}
		zones = make([]plan.Zone, len(discovered))
		for i, z := range discovered {
			zones[i] = plan.Zone(z)
		}
		log.Printf("Discovered %d zones in %s: %v", len(zones), cfg.NetworkZone, discovered)
	}

	return plan.Plan(ctx, plan.Input{
		Parent:   parent,
		Networks: cfg.NetworkSpecs(),
		Zones:    zones,
		MaxZones: cfg.MaxZones,
		Pool:     pool,
	})
}

// exportPlan uploads the YAML plan document to the configured bucket.
func exportPlan(ctx context.Context, cfg *config.Config, result *plan.Result) error {
	if cfg.Export.Bucket == "" {
		return fmt.Errorf("export requested but no export.bucket configured")
	}

	doc, err := renderPlanYAML(cfg.Name, result)
	if err != nil {
		return err
	}

	exporter, err := newExporter(cfg.Export)
	if err != nil {
		return fmt.Errorf("failed to create exporter: %w", err)
	}

	key, err := exporter.Export(ctx, cfg.Name, doc)
	if err != nil {
		return fmt.Errorf("failed to export plan: %w", err)
	}

	log.Printf("Plan exported to s3://%s/%s", cfg.Export.Bucket, key)
	return nil
}
