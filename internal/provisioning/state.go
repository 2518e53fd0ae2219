package provisioning

import "github.com/hetznercloud/hcloud-go/v2/hcloud"

// State holds the shared results of provisioning phases.
// It is progressively populated as each phase completes and is passed
// to subsequent phases that need earlier results.
type State struct {
	// Network is the parent network holding all planned subnets.
	Network *hcloud.Network

	// Firewalls maps group name to the firewall guarding that group's subnets.
	Firewalls map[string]*hcloud.Firewall
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{
		Firewalls: make(map[string]*hcloud.Firewall),
	}
}
