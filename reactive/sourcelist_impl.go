package reactive

import (
	"github.com/iotaledger/hive.go/runtime/syncutils"

	"github.com/modulexcite/DynamicData/changeset"
)

// region sourceList ///////////////////////////////////////////////////////////////////////////////////////////////////

// sourceList is the default implementation of the SourceList interface.
type sourceList[T comparable] struct {
	// stream imports the subscription methods.
	*stream[T]

	// list is the source-of-truth contents together with its pending change log.
	list *changeset.ChangeAwareList[T]

	// editMutex serializes edits (and the deliveries they cause) so that downstream consumers never observe
	// concurrent or re-entrant notifications.
	editMutex syncutils.Mutex
}

// newSourceList creates a new sourceList.
func newSourceList[T comparable]() *sourceList[T] {
	return &sourceList[T]{
		stream: newStream[T](),
		list:   changeset.NewChangeAwareList[T](),
	}
}

// Edit applies the given batch of mutations atomically and publishes them as one ChangeSet.
func (s *sourceList[T]) Edit(edit func(list *changeset.ChangeAwareList[T])) {
	s.editMutex.Lock()
	defer s.editMutex.Unlock()

	edit(s.list)

	if changes := s.list.CaptureChanges(); !changes.IsEmpty() {
		s.trigger(changes)
	}
}

// OnUpdate registers the given callback and immediately delivers the current contents as an initial ChangeSet.
func (s *sourceList[T]) OnUpdate(updateCallback func(changes changeset.ChangeSet[T])) (unsubscribe func()) {
	s.editMutex.Lock()

	initialChanges := changeset.EmptyChangeSet[T]()
	if items := s.list.Items(); len(items) > 0 {
		initialChanges = changeset.NewChangeSet(changeset.NewAddRangeChange(items, 0))
	}

	s.stream.mutex.Lock()
	createdSubscriber := newSubscriber(updateCallback)
	subscriberElement := s.subscribers.PushBack(createdSubscriber)
	currentUpdateID := s.uniqueUpdateID
	s.stream.mutex.Unlock()

	// claim the delivery slot to make sure that the subscriber is not triggered before it has seen the initial state.
	createdSubscriber.beginDelivery(currentUpdateID)
	defer createdSubscriber.endDelivery()

	s.editMutex.Unlock()

	if !initialChanges.IsEmpty() {
		createdSubscriber.notify(initialChanges)
	}

	return func() {
		s.subscribers.Remove(subscriberElement)

		createdSubscriber.markUnsubscribed()
	}
}

// Add appends the given item.
func (s *sourceList[T]) Add(item T) {
	s.Edit(func(list *changeset.ChangeAwareList[T]) {
		list.Add(item)
	})
}

// AddRange appends the given batch of items.
func (s *sourceList[T]) AddRange(items []T) {
	s.Edit(func(list *changeset.ChangeAwareList[T]) {
		list.AddRange(items)
	})
}

// Insert inserts the given item at the given index.
func (s *sourceList[T]) Insert(index int, item T) {
	s.Edit(func(list *changeset.ChangeAwareList[T]) {
		list.Insert(index, item)
	})
}

// Set replaces the item at the given index.
func (s *sourceList[T]) Set(index int, item T) {
	s.Edit(func(list *changeset.ChangeAwareList[T]) {
		list.Set(index, item)
	})
}

// Replace replaces the first occurrence of the given item and returns true if the item was present.
func (s *sourceList[T]) Replace(original T, replacement T) (replaced bool) {
	s.Edit(func(list *changeset.ChangeAwareList[T]) {
		var index int
		if index, replaced = list.IndexOf(original); replaced {
			list.Set(index, replacement)
		}
	})

	return replaced
}

// RemoveAt removes the item at the given index.
func (s *sourceList[T]) RemoveAt(index int) {
	s.Edit(func(list *changeset.ChangeAwareList[T]) {
		list.RemoveAt(index)
	})
}

// Remove removes the first occurrence of the given item and returns true if the item was present.
func (s *sourceList[T]) Remove(item T) (removed bool) {
	s.Edit(func(list *changeset.ChangeAwareList[T]) {
		removed = list.Remove(item)
	})

	return removed
}

// Move relocates the item at the given origin index to the given destination index.
func (s *sourceList[T]) Move(from int, to int) {
	s.Edit(func(list *changeset.ChangeAwareList[T]) {
		list.Move(from, to)
	})
}

// Clear removes all items.
func (s *sourceList[T]) Clear() {
	s.Edit(func(list *changeset.ChangeAwareList[T]) {
		list.Clear()
	})
}

// Items returns a copy of the current contents.
func (s *sourceList[T]) Items() []T {
	s.editMutex.Lock()
	defer s.editMutex.Unlock()

	return s.list.Items()
}

// Len returns the number of items.
func (s *sourceList[T]) Len() int {
	s.editMutex.Lock()
	defer s.editMutex.Unlock()

	return s.list.Len()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
