package changeset

import (
	"github.com/iotaledger/hive.go/stringify"

	"github.com/modulexcite/DynamicData/optional"
)

// region Change ///////////////////////////////////////////////////////////////////////////////////////////////////////

// NoIndex is the index value that is used whenever a position is not meaningful for a Change.
const NoIndex = -1

// Change is a single mutation record. A sequence of Changes carries enough information to replay the described
// mutations against a copy of the previous list state and arrive at the current one.
type Change[T any] struct {
	// Reason is the kind of mutation that this Change represents.
	Reason ChangeReason

	// Current is the affected item after the mutation (for range mutations the Items field is used instead).
	Current T

	// Previous is the value that was replaced by the mutation (present only for Update).
	Previous optional.Optional[T]

	// CurrentIndex is the position of the affected item (or the start of the affected range) after the mutation.
	CurrentIndex int

	// PreviousIndex is the position of the affected item before the mutation (present only for Moved).
	PreviousIndex int

	// Items is the ordered batch of affected items for range mutations (AddRange, RemoveRange and Clear).
	Items []T
}

// NewAddChange creates a Change that describes a single item being added at the given index.
func NewAddChange[T any](item T, index int) Change[T] {
	return Change[T]{
		Reason:        ReasonAdd,
		Current:       item,
		CurrentIndex:  index,
		PreviousIndex: NoIndex,
	}
}

// NewRemoveChange creates a Change that describes a single item being removed from the given index.
func NewRemoveChange[T any](item T, index int) Change[T] {
	return Change[T]{
		Reason:        ReasonRemove,
		Current:       item,
		CurrentIndex:  index,
		PreviousIndex: NoIndex,
	}
}

// NewUpdateChange creates a Change that describes an item being replaced in place at the given index.
func NewUpdateChange[T any](current T, previous T, index int) Change[T] {
	return Change[T]{
		Reason:        ReasonUpdate,
		Current:       current,
		Previous:      optional.Some(previous),
		CurrentIndex:  index,
		PreviousIndex: NoIndex,
	}
}

// NewMoveChange creates a Change that describes an item being moved between the given positions.
func NewMoveChange[T any](item T, currentIndex int, previousIndex int) Change[T] {
	return Change[T]{
		Reason:        ReasonMoved,
		Current:       item,
		CurrentIndex:  currentIndex,
		PreviousIndex: previousIndex,
	}
}

// NewAddRangeChange creates a Change that describes a batch of items being added starting at the given index.
func NewAddRangeChange[T any](items []T, index int) Change[T] {
	return Change[T]{
		Reason:        ReasonAddRange,
		CurrentIndex:  index,
		PreviousIndex: NoIndex,
		Items:         items,
	}
}

// NewRemoveRangeChange creates a Change that describes a batch of items being removed starting at the given index.
func NewRemoveRangeChange[T any](items []T, index int) Change[T] {
	return Change[T]{
		Reason:        ReasonRemoveRange,
		CurrentIndex:  index,
		PreviousIndex: NoIndex,
		Items:         items,
	}
}

// NewClearChange creates a Change that describes the list being emptied, carrying the prior full contents.
func NewClearChange[T any](priorItems []T) Change[T] {
	return Change[T]{
		Reason:        ReasonClear,
		CurrentIndex:  0,
		PreviousIndex: NoIndex,
		Items:         priorItems,
	}
}

// NewRefreshChange creates a Change that describes an item being re-evaluated at the given index.
func NewRefreshChange[T any](item T, index int) Change[T] {
	return Change[T]{
		Reason:        ReasonRefresh,
		Current:       item,
		CurrentIndex:  index,
		PreviousIndex: NoIndex,
	}
}

// ItemCount returns the number of items that are affected by this Change (the batch size for range mutations).
func (c Change[T]) ItemCount() int {
	if c.Reason.IsRange() {
		return len(c.Items)
	}

	return 1
}

// String returns a human-readable version of the Change.
func (c Change[T]) String() string {
	if c.Reason.IsRange() {
		return stringify.Struct("Change",
			stringify.NewStructField("Reason", c.Reason),
			stringify.NewStructField("Items", c.Items),
			stringify.NewStructField("CurrentIndex", c.CurrentIndex),
		)
	}

	return stringify.Struct("Change",
		stringify.NewStructField("Reason", c.Reason),
		stringify.NewStructField("Current", c.Current),
		stringify.NewStructField("Previous", c.Previous.OrZero()),
		stringify.NewStructField("CurrentIndex", c.CurrentIndex),
		stringify.NewStructField("PreviousIndex", c.PreviousIndex),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
