package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/vnetplan/cmd/vnetplan/handlers"
)

// Init returns the command for interactively creating a configuration.
//
// This command guides users through creating a vnetplan configuration
// YAML file using an interactive wizard with text inputs and
// multi-select prompts.
//
// Flags:
//
//	--output, -o: Path to output file (default "vnetplan.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a configuration file",
		Long: `Interactively create a vnetplan configuration file.

This command guides you through configuring your address plan step by
step. It will ask about:

  - Plan identity (name and network zone)
  - The parent address block and subnet width
  - Which networks to plan (app, db, edge, mgmt)
  - An optional zone limit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "vnetplan.yaml", "Output file path")

	return cmd
}
