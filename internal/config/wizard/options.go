package wizard

import "github.com/charmbracelet/huh"

// NetworkZoneOptions lists the selectable Hetzner Cloud network zones.
var NetworkZoneOptions = []huh.Option[string]{
	huh.NewOption("eu-central (Europe)", "eu-central"),
	huh.NewOption("us-east (US East)", "us-east"),
	huh.NewOption("us-west (US West)", "us-west"),
	huh.NewOption("ap-southeast (Asia Pacific)", "ap-southeast"),
}

// NetworkOptions lists common logical network tiers.
var NetworkOptions = []huh.Option[string]{
	huh.NewOption("app (application tier)", "app").Selected(true),
	huh.NewOption("db (database tier)", "db").Selected(true),
	huh.NewOption("edge (ingress / load balancers)", "edge"),
	huh.NewOption("mgmt (management / bastion)", "mgmt"),
}

// groupFor returns the access-control group for a well-known network
// tier. Unknown tiers become their own group.
func groupFor(network string) string {
	switch network {
	case "db":
		return "data"
	case "edge", "mgmt":
		return "restricted"
	default:
		return network
	}
}
