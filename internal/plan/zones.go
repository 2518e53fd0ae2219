package plan

// SelectZones trims the ordered zone list to at most maxZones entries.
// A nil limit keeps every zone. An explicitly configured non-positive
// limit is a configuration error rather than an empty selection.
func SelectZones(zones []Zone, maxZones *int) ([]Zone, error) {
	if maxZones != nil && *maxZones <= 0 {
		return nil, &ConfigurationError{Reason: "max_zones must be positive when set"}
	}

	n := len(zones)
	if maxZones != nil && *maxZones < n {
		n = *maxZones
	}

	selected := make([]Zone, n)
	copy(selected, zones[:n])
	return selected, nil
}
