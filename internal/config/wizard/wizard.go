package wizard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/imamik/vnetplan/internal/cidr"
	"github.com/imamik/vnetplan/internal/config"
)

// Result carries the raw wizard answers before conversion to a Config.
type Result struct {
	Name        string
	NetworkZone string
	ParentCIDR  string
	Prefix      string
	MaxZones    string
	Networks    []string
}

// Run executes the interactive wizard.
func Run(ctx context.Context) (*Result, error) {
	result := &Result{
		NetworkZone: "eu-central",
		Prefix:      "24",
	}

	if err := runIdentityGroup(ctx, result); err != nil {
		return nil, err
	}
	if err := runLayoutGroup(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func runIdentityGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Network Name").
				Description("Name of the virtual network, used for cloud resource naming").
				Placeholder("prod-vnet").
				Value(&result.Name).
				Validate(validateName),
			huh.NewSelect[string]().
				Title("Network Zone").
				Description("Hetzner Cloud network zone").
				Options(NetworkZoneOptions...).
				Value(&result.NetworkZone),
		).Title("Network Identity"),
	).RunWithContext(ctx)
}

func runLayoutGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Parent Block").
				Description("The CIDR block all subnets are carved from").
				Placeholder("10.0.0.0/16").
				Value(&result.ParentCIDR).
				Validate(validateCIDR),
			huh.NewInput().
				Title("Subnet Prefix Length").
				Description("Target prefix length for each (network, zone) subnet").
				Value(&result.Prefix).
				Validate(validatePrefix),
			huh.NewMultiSelect[string]().
				Title("Logical Networks").
				Description("Each selected network gets one subnet per zone").
				Options(NetworkOptions...).
				Value(&result.Networks),
			huh.NewInput().
				Title("Zone Limit (Optional)").
				Description("Maximum number of zones to use; leave empty for all").
				Value(&result.MaxZones).
				Validate(validateMaxZones),
		).Title("Address Layout"),
	).RunWithContext(ctx)
}

// ToConfig converts wizard answers into a Config.
func (r *Result) ToConfig() *config.Config {
	prefix, _ := strconv.Atoi(strings.TrimSpace(r.Prefix))

	cfg := &config.Config{
		Name:        r.Name,
		NetworkZone: r.NetworkZone,
		Parent:      config.ParentConfig{CIDR: r.ParentCIDR},
	}

	for _, name := range r.Networks {
		cfg.Networks = append(cfg.Networks, config.NetworkConfig{
			Name:         name,
			PrefixLength: prefix,
			Group:        groupFor(name),
		})
	}

	if limit := strings.TrimSpace(r.MaxZones); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			cfg.MaxZones = &n
		}
	}

	return cfg
}

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

func validateCIDR(s string) error {
	if _, err := cidr.Parse(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("enter an aligned CIDR block, e.g. 10.0.0.0/16")
	}
	return nil
}

func validatePrefix(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 || n > 128 {
		return fmt.Errorf("enter a prefix length between 1 and 128")
	}
	return nil
}

func validateMaxZones(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number or leave empty")
	}
	return nil
}
