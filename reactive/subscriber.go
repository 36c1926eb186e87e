package reactive

import (
	"sync"
	"sync/atomic"

	"github.com/modulexcite/DynamicData/changeset"
)

// region subscriber ///////////////////////////////////////////////////////////////////////////////////////////////////

// subscriber tracks the delivery state of a single registered change-set consumer.
type subscriber[T comparable] struct {
	// notify is the consumer's callback.
	notify func(changes changeset.ChangeSet[T])

	// unsubscribed is true if the subscriber was unsubscribed.
	unsubscribed bool

	// lastUpdate is the ID of the last update that was delivered to the subscriber.
	lastUpdate updateID

	// deliveryMutex serializes deliveries to the subscriber.
	deliveryMutex sync.Mutex
}

// newSubscriber creates a new subscriber for the given consumer callback.
func newSubscriber[T comparable](notify func(changes changeset.ChangeSet[T])) *subscriber[T] {
	return &subscriber[T]{
		notify: notify,
	}
}

// beginDelivery begins the delivery of the update with the given ID and returns true if the subscriber is still due
// to receive it. The zero ID is reserved for the initial-state handshake and is never deduplicated.
func (s *subscriber[T]) beginDelivery(id updateID) bool {
	s.deliveryMutex.Lock()

	if s.unsubscribed || (id != 0 && id == s.lastUpdate) {
		s.deliveryMutex.Unlock()

		return false
	}

	s.lastUpdate = id

	return true
}

// endDelivery ends the delivery that was started with beginDelivery.
func (s *subscriber[T]) endDelivery() {
	s.deliveryMutex.Unlock()
}

// markUnsubscribed marks the subscriber as unsubscribed (and blocks until the current delivery has finished).
func (s *subscriber[T]) markUnsubscribed() {
	s.deliveryMutex.Lock()
	defer s.deliveryMutex.Unlock()

	s.unsubscribed = true
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region updateID /////////////////////////////////////////////////////////////////////////////////////////////////////

// updateID is a unique identifier for an update.
type updateID uint64

// next atomically increments the updateID and returns the new value.
func (u *updateID) next() updateID {
	return updateID(atomic.AddUint64((*uint64)(u), 1))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
