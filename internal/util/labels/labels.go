// Package labels provides consistent labeling utilities for Hetzner Cloud resources.
//
// This package enforces uniform labeling patterns across all resources created
// for an address plan, enabling easy identification, grouping, and cleanup of
// resources belonging to the same plan.
//
// Standard label keys use the vnetplan.io domain prefix for namespacing.
package labels

// Standard label keys for Hetzner Cloud resources.
const (
	// KeyPlan identifies which address plan a resource belongs to
	KeyPlan = "vnetplan.io/plan"

	// KeyGroup identifies the grouping label of a subnet or firewall
	KeyGroup = "vnetplan.io/group"

	// KeyZone identifies the availability zone a resource is scoped to
	KeyZone = "vnetplan.io/zone"

	// KeyManagedBy identifies the management system
	KeyManagedBy = "vnetplan.io/managed-by"
)

// ManagedBy values
const (
	ManagedByVnetplan = "vnetplan"
)

// LabelBuilder provides a fluent interface for building Hetzner Cloud resource labels.
// Labels are used to identify and group resources belonging to the same plan.
type LabelBuilder struct {
	labels map[string]string
}

// NewLabelBuilder creates a new label builder with the plan name pre-set.
func NewLabelBuilder(planName string) *LabelBuilder {
	return &LabelBuilder{
		labels: map[string]string{
			KeyPlan:      planName,
			KeyManagedBy: ManagedByVnetplan,
		},
	}
}

// WithGroup adds a group label (e.g., "data", "restricted").
func (lb *LabelBuilder) WithGroup(group string) *LabelBuilder {
	lb.labels[KeyGroup] = group
	return lb
}

// WithZone adds an availability zone label.
func (lb *LabelBuilder) WithZone(zone string) *LabelBuilder {
	lb.labels[KeyZone] = zone
	return lb
}

// WithManagedBy sets who manages this resource.
func (lb *LabelBuilder) WithManagedBy(manager string) *LabelBuilder {
	lb.labels[KeyManagedBy] = manager
	return lb
}

// Merge adds all labels from the provided map.
func (lb *LabelBuilder) Merge(extra map[string]string) *LabelBuilder {
	for k, v := range extra {
		lb.labels[k] = v
	}
	return lb
}

// Build returns a copy of the labels map.
// Returns a copy to prevent external mutations.
func (lb *LabelBuilder) Build() map[string]string {
	result := make(map[string]string, len(lb.labels))
	for k, v := range lb.labels {
		result[k] = v
	}
	return result
}

// SelectorForPlan returns a label selector string for all resources in a plan.
func SelectorForPlan(planName string) string {
	return KeyPlan + "=" + planName
}
