package provisioning

import (
	"context"

	"github.com/imamik/vnetplan/internal/config"
	hcloud_internal "github.com/imamik/vnetplan/internal/platform/hcloud"
	"github.com/imamik/vnetplan/internal/plan"
)

// Phase defines the interface for a provisioning phase.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Provision executes the provisioning logic for this phase.
	Provision(ctx *Context) error
}

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	Config   *config.Config
	Plan     *plan.Result
	State    *State
	Infra    hcloud_internal.Client
	Observer Observer
	Timeouts *config.Timeouts
}

// NewContext creates a new provisioning context.
func NewContext(
	ctx context.Context,
	cfg *config.Config,
	result *plan.Result,
	infra hcloud_internal.Client,
) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Plan:     result,
		State:    NewState(),
		Infra:    infra,
		Observer: NewConsoleObserver(),
		Timeouts: config.LoadTimeouts(),
	}
}
