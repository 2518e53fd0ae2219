package hcloud

import (
	"context"
	"fmt"
	"reflect"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/imamik/vnetplan/internal/util/retry"
)

// CreateResult wraps the result of a resource creation operation.
// It handles both single and multiple actions that may need to be awaited.
type CreateResult[T any] struct {
	Resource T
	Action   *hcloud.Action
	Actions  []*hcloud.Action
}

// DeleteOperation encapsulates deletion logic for any hcloud resource,
// giving networks and firewalls the same retry, timeout and error
// handling.
type DeleteOperation[T any] struct {
	Name         string
	ResourceType string

	// Get retrieves the resource by name
	Get func(ctx context.Context, name string) (T, *hcloud.Response, error)

	// Delete removes the resource
	Delete func(ctx context.Context, resource T) (*hcloud.Response, error)
}

// Execute performs the delete operation with retry logic and timeout
// handling. The operation is idempotent - it succeeds if the resource
// doesn't exist. Locked resources are retried with exponential backoff.
func (op *DeleteOperation[T]) Execute(ctx context.Context, client *RealClient) error {
	ctx, cancel := context.WithTimeout(ctx, client.timeouts.Delete)
	defer cancel()

	return retry.WithExponentialBackoff(ctx, func() error {
		resource, _, err := op.Get(ctx, op.Name)
		if err != nil {
			return retry.Fatal(fmt.Errorf("failed to get %s: %w", op.ResourceType, err))
		}

		// Already deleted
		if reflect.ValueOf(resource).IsNil() {
			return nil
		}

		_, err = op.Delete(ctx, resource)
		if err != nil {
			if isResourceLocked(err) {
				return err // Retryable
			}
			return retry.Fatal(err)
		}
		return nil
	},
		retry.WithMaxRetries(client.timeouts.RetryMaxAttempts),
		retry.WithInitialDelay(client.timeouts.RetryInitialDelay))
}

// EnsureOperation encapsulates get-or-create logic for any hcloud
// resource, with optional update and validation of existing resources.
type EnsureOperation[T any, CreateOpts any, UpdateOpts any] struct {
	Name         string
	ResourceType string

	// Get retrieves the resource by name
	Get func(ctx context.Context, name string) (T, *hcloud.Response, error)

	// Create creates the resource with the given options
	Create func(ctx context.Context, opts CreateOpts) (*CreateResult[T], *hcloud.Response, error)

	// Update updates the resource if it exists (optional)
	Update func(ctx context.Context, resource T, opts UpdateOpts) ([]*hcloud.Action, *hcloud.Response, error)

	// Validate checks if existing resource matches desired state (optional)
	Validate func(resource T) error

	// CreateOptsMapper maps input parameters to create options
	CreateOptsMapper func() CreateOpts

	// UpdateOptsMapper maps input parameters to update options (required if Update is provided)
	UpdateOptsMapper func(resource T) UpdateOpts
}

// Execute performs the ensure operation: get the existing resource,
// update/validate it if present, or create it.
func (op *EnsureOperation[T, CreateOpts, UpdateOpts]) Execute(
	ctx context.Context,
	client *RealClient,
) (T, error) {
	var zero T

	ctx, cancel := context.WithTimeout(ctx, client.timeouts.Ensure)
	defer cancel()

	resource, _, err := op.Get(ctx, op.Name)
	if err != nil {
		return zero, fmt.Errorf("failed to get %s: %w", op.ResourceType, err)
	}

	if !reflect.ValueOf(resource).IsNil() {
		if op.Validate != nil {
			if err := op.Validate(resource); err != nil {
				return zero, err
			}
		}

		if op.Update != nil && op.UpdateOptsMapper != nil {
			updateOpts := op.UpdateOptsMapper(resource)
			actions, _, err := op.Update(ctx, resource, updateOpts)
			if err != nil {
				return zero, fmt.Errorf("failed to update %s: %w", op.ResourceType, err)
			}
			if err := waitForActions(ctx, client.client, actions...); err != nil {
				return zero, fmt.Errorf("failed to wait for %s update: %w", op.ResourceType, err)
			}
		}

		return resource, nil
	}

	createOpts := op.CreateOptsMapper()
	result, _, err := op.Create(ctx, createOpts)
	if err != nil {
		return zero, fmt.Errorf("failed to create %s: %w", op.ResourceType, err)
	}

	if err := waitForActionResult(ctx, client.client, result); err != nil {
		return zero, fmt.Errorf("failed to wait for %s creation: %w", op.ResourceType, err)
	}

	return result.Resource, nil
}

// waitForActions waits for one or more actions to complete.
func waitForActions(ctx context.Context, client *hcloud.Client, actions ...*hcloud.Action) error {
	if len(actions) == 0 {
		return nil
	}
	return client.Action.WaitFor(ctx, actions...)
}

// waitForActionResult waits for actions from a CreateResult, handling
// both the singular Action and plural Actions fields.
func waitForActionResult[T any](ctx context.Context, client *hcloud.Client, result *CreateResult[T]) error {
	if result.Action != nil {
		return client.Action.WaitFor(ctx, result.Action)
	}
	if len(result.Actions) > 0 {
		return client.Action.WaitFor(ctx, result.Actions...)
	}
	return nil
}

// simpleCreate wraps create functions that return the resource directly.
func simpleCreate[T any, Opts any](
	createFn func(context.Context, Opts) (T, *hcloud.Response, error),
) func(context.Context, Opts) (*CreateResult[T], *hcloud.Response, error) {
	return func(ctx context.Context, opts Opts) (*CreateResult[T], *hcloud.Response, error) {
		resource, resp, err := createFn(ctx, opts)
		if err != nil {
			return nil, resp, err
		}
		return &CreateResult[T]{Resource: resource}, resp, nil
	}
}
