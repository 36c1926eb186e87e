package reactive

import (
	"github.com/iotaledger/hive.go/ds"
	"github.com/iotaledger/hive.go/runtime/syncutils"

	"github.com/modulexcite/DynamicData/changeset"
)

// region stream ///////////////////////////////////////////////////////////////////////////////////////////////////////

// stream is the default implementation of the ChangeStream interface.
type stream[T comparable] struct {
	// subscribers are the registered consumers that are notified when a new ChangeSet is published.
	subscribers ds.List[*subscriber[T]]

	// uniqueUpdateID is the unique ID that is used to identify an update.
	uniqueUpdateID updateID

	// mutex is used to synchronize access to the subscriber registry.
	mutex syncutils.RWMutex
}

// newStream creates a new stream.
func newStream[T comparable]() *stream[T] {
	return &stream[T]{
		subscribers: ds.NewList[*subscriber[T]](),
	}
}

// OnUpdate registers the given callback to be triggered when a new ChangeSet is published.
func (s *stream[T]) OnUpdate(updateCallback func(changes changeset.ChangeSet[T])) (unsubscribe func()) {
	s.mutex.Lock()
	createdSubscriber := newSubscriber(updateCallback)
	subscriberElement := s.subscribers.PushBack(createdSubscriber)
	s.mutex.Unlock()

	return func() {
		s.subscribers.Remove(subscriberElement)

		createdSubscriber.markUnsubscribed()
	}
}

// trigger publishes the given ChangeSet to all registered subscribers.
func (s *stream[T]) trigger(changes changeset.ChangeSet[T]) {
	s.mutex.Lock()
	id := s.uniqueUpdateID.next()
	registeredSubscribers := s.subscribers.Values()
	s.mutex.Unlock()

	for _, registeredSubscriber := range registeredSubscribers {
		if registeredSubscriber.beginDelivery(id) {
			registeredSubscriber.notify(changes)
			registeredSubscriber.endDelivery()
		}
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region derivedList //////////////////////////////////////////////////////////////////////////////////////////////////

// mirrorReader is the read surface of an operator's private mirror list.
type mirrorReader[T comparable] interface {
	// Items returns a copy of the current mirror contents.
	Items() []T

	// Len returns the number of items in the mirror.
	Len() int
}

// derivedList is the default implementation of the DerivedList interface, combining an operator's mirror with an
// outgoing stream.
type derivedList[T comparable] struct {
	// stream imports the subscription methods.
	*stream[T]

	// mirror is the operator-owned derived view.
	mirror mirrorReader[T]
}

// newDerivedList creates a new derivedList around the given mirror.
func newDerivedList[T comparable](mirror mirrorReader[T]) *derivedList[T] {
	return &derivedList[T]{
		stream: newStream[T](),
		mirror: mirror,
	}
}

// OnUpdate registers the given callback to be triggered when a new ChangeSet is published, replaying the current
// derived view (if any) as the first delivery.
func (d *derivedList[T]) OnUpdate(updateCallback func(changes changeset.ChangeSet[T])) (unsubscribe func()) {
	d.stream.mutex.Lock()
	initialChanges := changeset.EmptyChangeSet[T]()
	if items := d.mirror.Items(); len(items) > 0 {
		initialChanges = changeset.NewChangeSet(changeset.NewAddRangeChange(items, 0))
	}

	createdSubscriber := newSubscriber(updateCallback)
	subscriberElement := d.subscribers.PushBack(createdSubscriber)
	currentUpdateID := d.uniqueUpdateID

	createdSubscriber.beginDelivery(currentUpdateID)
	defer createdSubscriber.endDelivery()
	d.stream.mutex.Unlock()

	if !initialChanges.IsEmpty() {
		createdSubscriber.notify(initialChanges)
	}

	return func() {
		d.subscribers.Remove(subscriberElement)

		createdSubscriber.markUnsubscribed()
	}
}

// Items returns a copy of the current derived view.
func (d *derivedList[T]) Items() []T {
	return d.mirror.Items()
}

// Len returns the number of items in the derived view.
func (d *derivedList[T]) Len() int {
	return d.mirror.Len()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
