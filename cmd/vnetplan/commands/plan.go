package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/vnetplan/cmd/vnetplan/handlers"
)

// Plan returns the command for computing and displaying the address plan.
//
// The command loads the configuration, resolves the parent block, carves
// it into per-zone subnets and prints the result without touching any
// cloud resources.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: vnetplan.yaml)
//	--output, -o: Output format, table or yaml (default: table)
//	--export:     Upload the rendered plan to the configured object storage bucket
//
// Environment variables:
//
//	VNETPLAN_HCLOUD_TOKEN: Hetzner Cloud API token (required for zone discovery)
func Plan() *cobra.Command {
	var (
		configPath string
		format     string
		export     bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute the subnet layout without changing anything",
		Long: `Compute the subnet layout for the configured networks and zones.

This command is a pure dry run: it resolves the parent block, splits it
into one subnet per network and zone, and prints the resulting layout.
No cloud resources are created or modified.

Examples:
  # Show the plan as a table
  vnetplan plan

  # Show the plan as YAML, e.g. for piping into other tools
  vnetplan plan -o yaml

  # Upload the plan document to the configured bucket
  vnetplan plan --export`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Plan(cmd.Context(), configPath, format, export)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: vnetplan.yaml)")
	cmd.Flags().StringVarP(&format, "output", "o", "table", "Output format: table or yaml")
	cmd.Flags().BoolVar(&export, "export", false, "Upload the plan document to object storage")

	return cmd
}
