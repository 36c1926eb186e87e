package changeset

import (
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/stringify"
)

// region ChangeSet ////////////////////////////////////////////////////////////////////////////////////////////////////

// ChangeSet is an ordered batch of Change records that describes how to transform a previous list state into the
// current one. It is created by capturing the pending changes of a ChangeAwareList and must be treated as immutable
// once captured (ownership transfers to the downstream consumer).
type ChangeSet[T any] struct {
	changes []Change[T]
}

// NewChangeSet creates a new ChangeSet from the given Change records.
func NewChangeSet[T any](changes ...Change[T]) ChangeSet[T] {
	return ChangeSet[T]{
		changes: changes,
	}
}

// EmptyChangeSet returns a ChangeSet without any Change records.
func EmptyChangeSet[T any]() ChangeSet[T] {
	return ChangeSet[T]{}
}

// Changes returns the ordered Change records of the ChangeSet.
func (c ChangeSet[T]) Changes() []Change[T] {
	return c.changes
}

// Count returns the number of Change records in the ChangeSet.
func (c ChangeSet[T]) Count() int {
	return len(c.changes)
}

// TotalItems returns the number of items that are affected by the ChangeSet (range records count per item).
func (c ChangeSet[T]) TotalItems() (total int) {
	for _, change := range c.changes {
		total += change.ItemCount()
	}

	return total
}

// IsEmpty returns true if the ChangeSet does not contain any Change records.
func (c ChangeSet[T]) IsEmpty() bool {
	return len(c.changes) == 0
}

// Adds returns the number of added items (AddRange records count per item).
func (c ChangeSet[T]) Adds() (adds int) {
	for _, change := range c.changes {
		switch change.Reason {
		case ReasonAdd:
			adds++
		case ReasonAddRange:
			adds += len(change.Items)
		}
	}

	return adds
}

// Removes returns the number of removed items (RemoveRange and Clear records count per item).
func (c ChangeSet[T]) Removes() (removes int) {
	for _, change := range c.changes {
		switch change.Reason {
		case ReasonRemove:
			removes++
		case ReasonRemoveRange, ReasonClear:
			removes += len(change.Items)
		}
	}

	return removes
}

// Updates returns the number of in-place replacements.
func (c ChangeSet[T]) Updates() int {
	return len(lo.Filter(c.changes, func(change Change[T]) bool { return change.Reason == ReasonUpdate }))
}

// Moves returns the number of position moves.
func (c ChangeSet[T]) Moves() int {
	return len(lo.Filter(c.changes, func(change Change[T]) bool { return change.Reason == ReasonMoved }))
}

// Refreshes returns the number of refresh records.
func (c ChangeSet[T]) Refreshes() int {
	return len(lo.Filter(c.changes, func(change Change[T]) bool { return change.Reason == ReasonRefresh }))
}

// ForEach iterates through the Change records in replay order (returning an error will stop the iteration).
func (c ChangeSet[T]) ForEach(callback func(change Change[T]) error) error {
	for _, change := range c.changes {
		if err := callback(change); err != nil {
			return err
		}
	}

	return nil
}

// Range iterates through the Change records in replay order.
func (c ChangeSet[T]) Range(callback func(change Change[T])) {
	for _, change := range c.changes {
		callback(change)
	}
}

// String returns a human-readable version of the ChangeSet.
func (c ChangeSet[T]) String() string {
	return stringify.Struct("ChangeSet",
		stringify.NewStructField("Count", c.Count()),
		stringify.NewStructField("Changes", c.changes),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
