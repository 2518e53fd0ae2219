package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/imamik/vnetplan/internal/plan"
)

// Colors matching the wizard palette.
var (
	planColorBlue  = lipgloss.Color("#3b82f6")
	planColorDim   = lipgloss.Color("#6b7280")
	planColorWhite = lipgloss.Color("#f9fafb")
)

var (
	planTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(planColorWhite)

	planHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(planColorBlue)

	planDimStyle = lipgloss.NewStyle().
			Foreground(planColorDim)
)

// planDocument is the serialized form of a computed plan, used for the
// YAML output format and for object storage exports.
type planDocument struct {
	Name    string           `yaml:"name"`
	Parent  string           `yaml:"parent"`
	Zones   []string         `yaml:"zones"`
	Subnets []subnetDocument `yaml:"subnets"`
	Groups  []groupDocument  `yaml:"groups"`
}

type subnetDocument struct {
	Name  string `yaml:"name"`
	Zone  string `yaml:"zone"`
	Group string `yaml:"group"`
	CIDR  string `yaml:"cidr"`
}

type groupDocument struct {
	Name    string   `yaml:"name"`
	Subnets []string `yaml:"subnets"`
}

// buildPlanDocument converts a plan result into its serialized form.
func buildPlanDocument(name string, result *plan.Result) *planDocument {
	doc := &planDocument{
		Name:   name,
		Parent: result.Parent.String(),
	}

	for _, z := range result.Zones {
		doc.Zones = append(doc.Zones, string(z))
	}

	for _, alloc := range result.Allocations {
		doc.Subnets = append(doc.Subnets, subnetDocument{
			Name:  alloc.Name,
			Zone:  string(alloc.Zone),
			Group: alloc.Group,
			CIDR:  alloc.Block.String(),
		})
	}

	for _, group := range result.Index.GroupOrder {
		gd := groupDocument{Name: group}
		for _, block := range result.Index.GroupBlocks[group] {
			gd.Subnets = append(gd.Subnets, block.String())
		}
		doc.Groups = append(doc.Groups, gd)
	}

	return doc
}

// renderPlanYAML renders the plan as a YAML document.
func renderPlanYAML(name string, result *plan.Result) ([]byte, error) {
	data, err := yaml.Marshal(buildPlanDocument(name, result))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan: %w", err)
	}
	return data, nil
}

// renderPlanTable produces a lipgloss-styled table of the plan.
func renderPlanTable(name string, result *plan.Result) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(planTitleStyle.Render(fmt.Sprintf("  vnetplan: %s", name)))
	b.WriteString("\n")
	b.WriteString(planDimStyle.Render(fmt.Sprintf("  parent %s, %d zones", result.Parent, len(result.Zones))))
	b.WriteString("\n\n")

	// Column widths from the data.
	nameWidth, cidrWidth := len("SUBNET"), len("CIDR")
	for _, alloc := range result.Allocations {
		if n := len(alloc.Name); n > nameWidth {
			nameWidth = n
		}
		if n := len(alloc.Block.String()); n > cidrWidth {
			cidrWidth = n
		}
	}

	header := fmt.Sprintf("  %-*s  %-*s  %-8s  %s", nameWidth, "SUBNET", cidrWidth, "CIDR", "ZONE", "GROUP")
	b.WriteString(planHeaderStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(planDimStyle.Render("  " + strings.Repeat("─", len(header)-2)))
	b.WriteString("\n")

	for _, alloc := range result.Allocations {
		b.WriteString(fmt.Sprintf("  %-*s  %-*s  %-8s  %s\n",
			nameWidth, alloc.Name,
			cidrWidth, alloc.Block.String(),
			alloc.Zone, alloc.Group))
	}

	b.WriteString("\n")
	return b.String()
}
