package plan

import "fmt"

// BuildEntries computes the ordered cross product of network specs and
// selected zones: specs outer, zones inner, both in input order. The
// resulting order is a hard contract: the allocator assigns blocks
// positionally, so reordering entries reorders the address space.
//
// Width violations are checked here, before any allocation happens: a
// network whose target prefix is shorter than the parent's fails the
// whole build.
func BuildEntries(specs []NetworkSpec, zones []Zone, parentPrefix int) ([]Entry, error) {
	entries := make([]Entry, 0, len(specs)*len(zones))

	for _, spec := range specs {
		if spec.Name == "" {
			return nil, &ConfigurationError{Reason: "network definition without a name"}
		}
		if spec.Group == "" {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("network %q has no group", spec.Name)}
		}

		delta := spec.PrefixLength - parentPrefix
		if delta < 0 {
			return nil, &InvalidSubnetWidthError{
				Network:      spec.Name,
				TargetPrefix: spec.PrefixLength,
				ParentPrefix: parentPrefix,
			}
		}

		for _, zone := range zones {
			entries = append(entries, Entry{
				Name:     spec.Name + "-" + string(zone),
				Zone:     zone,
				Group:    spec.Group,
				BitDelta: delta,
			})
		}
	}

	return entries, nil
}
