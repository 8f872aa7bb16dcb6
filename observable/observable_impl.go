package observable

import (
	"context"
	"errors"
	"sync"

	"github.com/helixbio/validate-worker/events"
)

// ObservableImpl provides a base implementation of the Observable
// interface. It should be embedded in anything which publishes events -
// the batch runner and the worker plugin implementation.
type ObservableImpl struct {
	observerLock sync.RWMutex
	// Observers is a list of all Observers that are currently connected
	Observers []Observer
}

func (p *ObservableImpl) AddObserver(o Observer) error {
	// add to list of Observers
	p.observerLock.Lock()
	p.Observers = append(p.Observers, o)
	p.observerLock.Unlock()

	return nil
}

func (p *ObservableImpl) NotifyObservers(ctx context.Context, e events.Event) error {
	p.observerLock.RLock()
	defer p.observerLock.RUnlock()
	var notifyErrors []error
	for _, observer := range p.Observers {
		err := observer.Notify(ctx, e)
		if err != nil {
			notifyErrors = append(notifyErrors, err)
		}
	}

	return errors.Join(notifyErrors...)
}
