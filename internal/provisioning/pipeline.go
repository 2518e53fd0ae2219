package provisioning

import (
	"fmt"
	"time"
)

// RunPhases runs the phases in order, stopping at the first failure.
// Each phase boundary is reported both as a log line and as a
// structured phase event.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Observer.Printf("Starting provisioning with %d phases...", len(phases))

	for i, phase := range phases {
		phaseStart := time.Now()
		label := fmt.Sprintf("%s (%d/%d)", phase.Name(), i+1, len(phases))

		ctx.Observer.Printf("[%s] starting", label)
		ctx.Observer.Event(Event{
			Type:  EventPhaseStarted,
			Phase: phase.Name(),
		})

		if err := phase.Provision(ctx); err != nil {
			ctx.Observer.Printf("[%s] failed: %v", label, err)
			ctx.Observer.Event(Event{
				Type:    EventPhaseFailed,
				Phase:   phase.Name(),
				Message: err.Error(),
			})
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		elapsed := time.Since(phaseStart).Round(time.Millisecond)
		ctx.Observer.Printf("[%s] completed in %v", label, elapsed)
		ctx.Observer.Event(Event{
			Type:    EventPhaseCompleted,
			Phase:   phase.Name(),
			Message: fmt.Sprintf("completed in %v", elapsed),
		})
	}

	ctx.Observer.Printf("Provisioning completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
