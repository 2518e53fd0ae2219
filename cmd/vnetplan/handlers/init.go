package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/imamik/vnetplan/internal/config"
	"github.com/imamik/vnetplan/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// stdinIsTerminal reports whether stdin is an interactive terminal.
	stdinIsTerminal = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}

	// runWizard runs the interactive configuration wizard.
	runWizard = wizard.Run

	// writeConfig writes the config to a file.
	writeConfig = config.WriteYAML
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if !stdinIsTerminal() {
		return fmt.Errorf("init requires an interactive terminal; write %s by hand instead", outputPath)
	}

	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := result.ToConfig()

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("vnetplan - Network Address Planning on Hetzner Cloud")
	fmt.Println("====================================================")
	fmt.Println()
	fmt.Println("This wizard creates a plan configuration with sensible defaults.")
	fmt.Println("Just answer a few questions about your address layout.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	// Summary
	fmt.Println("Plan Summary")
	fmt.Println("------------")
	fmt.Printf("  Name:         %s\n", cfg.Name)
	fmt.Printf("  Network Zone: %s\n", cfg.NetworkZone)
	fmt.Printf("  Parent:       %s\n", cfg.Parent.CIDR)
	fmt.Printf("  Networks:     %d\n", len(cfg.Networks))
	for _, n := range cfg.Networks {
		fmt.Printf("    - %s (/%d, group %s)\n", n.Name, n.PrefixLength, n.Group)
	}
	if cfg.MaxZones != nil {
		fmt.Printf("  Zone Limit:   %d\n", *cfg.MaxZones)
	}
	fmt.Println()

	// Next steps
	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Set your Hetzner Cloud API token:")
	fmt.Println("     export VNETPLAN_HCLOUD_TOKEN=<your-token>")
	fmt.Println()
	fmt.Println("  2. Preview the subnet layout:")
	fmt.Println("     vnetplan plan")
	fmt.Println()
	fmt.Println("  3. Create the network resources:")
	fmt.Println("     vnetplan apply")
	fmt.Println()
}
