package observable

import (
	"context"

	"github.com/helixbio/validate-worker/events"
)

// Observer receives notifications of batch-processing events.
type Observer interface {
	Notify(ctx context.Context, event events.Event) error
}

// Observable is implemented by anything which publishes events to
// registered observers.
type Observable interface {
	AddObserver(Observer) error
}
