package changeset

import (
	"github.com/iotaledger/hive.go/ierrors"
)

// region ChangeAwareList //////////////////////////////////////////////////////////////////////////////////////////////

// ChangeAwareList is an index-addressed mutable sequence that records every mutation as a Change record. The pending
// records are drained through CaptureChanges, which is the only way they can be observed or cleared.
type ChangeAwareList[T comparable] struct {
	items   []T
	changes []Change[T]
}

// NewChangeAwareList creates a new empty ChangeAwareList.
func NewChangeAwareList[T comparable]() *ChangeAwareList[T] {
	return &ChangeAwareList[T]{}
}

// Len returns the number of items in the list.
func (l *ChangeAwareList[T]) Len() int {
	return len(l.items)
}

// IsEmpty returns true if the list does not contain any items.
func (l *ChangeAwareList[T]) IsEmpty() bool {
	return len(l.items) == 0
}

// Get returns the item at the given index.
func (l *ChangeAwareList[T]) Get(index int) T {
	l.guardElementIndex(index)

	return l.items[index]
}

// Items returns a copy of the current item sequence.
func (l *ChangeAwareList[T]) Items() []T {
	items := make([]T, len(l.items))
	copy(items, l.items)

	return items
}

// Add appends the given item to the end of the list.
func (l *ChangeAwareList[T]) Add(item T) {
	l.items = append(l.items, item)

	l.record(NewAddChange(item, len(l.items)-1))
}

// AddRange appends the given batch of items to the end of the list, recording a single range record for the whole
// batch (never one record per item).
func (l *ChangeAwareList[T]) AddRange(items []T) {
	l.InsertRange(items, len(l.items))
}

// InsertRange inserts the given batch of items at the given index, recording a single range record for the whole
// batch.
func (l *ChangeAwareList[T]) InsertRange(items []T, index int) {
	l.guardInsertIndex(index)

	if len(items) == 0 {
		return
	}

	inserted := make([]T, len(items))
	copy(inserted, items)

	l.items = append(l.items[:index], append(inserted, l.items[index:]...)...)

	l.record(NewAddRangeChange(inserted, index))
}

// Insert inserts the given item at the given index.
func (l *ChangeAwareList[T]) Insert(index int, item T) {
	l.guardInsertIndex(index)

	var zero T
	l.items = append(l.items, zero)
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = item

	l.record(NewAddChange(item, index))
}

// Set replaces the item at the given index, recording an Update with the previous value.
func (l *ChangeAwareList[T]) Set(index int, item T) {
	l.guardElementIndex(index)

	previous := l.items[index]
	l.items[index] = item

	l.record(NewUpdateChange(item, previous, index))
}

// Move relocates the item at the given origin index to the given destination index.
func (l *ChangeAwareList[T]) Move(from int, to int) {
	l.guardElementIndex(from)
	l.guardElementIndex(to)

	if from == to {
		return
	}

	item := l.items[from]
	l.items = append(l.items[:from], l.items[from+1:]...)

	var zero T
	l.items = append(l.items, zero)
	copy(l.items[to+1:], l.items[to:])
	l.items[to] = item

	l.record(NewMoveChange(item, to, from))
}

// RemoveAt removes and returns the item at the given index.
func (l *ChangeAwareList[T]) RemoveAt(index int) (removed T) {
	l.guardElementIndex(index)

	removed = l.items[index]
	l.items = append(l.items[:index], l.items[index+1:]...)

	l.record(NewRemoveChange(removed, index))

	return removed
}

// RemoveRange removes the given number of items starting at the given index, recording a single range record.
func (l *ChangeAwareList[T]) RemoveRange(index int, count int) {
	l.guardElementIndex(index)
	if count < 0 || index+count > len(l.items) {
		panic(ierrors.Errorf("cannot remove %d items starting at index %d (length %d)", count, index, len(l.items)))
	}

	if count == 0 {
		return
	}

	removed := make([]T, count)
	copy(removed, l.items[index:index+count])

	l.items = append(l.items[:index], l.items[index+count:]...)

	l.record(NewRemoveRangeChange(removed, index))
}

// Remove removes the first occurrence of the given item and returns true if the item was present.
func (l *ChangeAwareList[T]) Remove(item T) bool {
	index, found := l.IndexOf(item)
	if !found {
		return false
	}

	l.RemoveAt(index)

	return true
}

// Clear empties the list, recording a single record that carries the prior full contents.
func (l *ChangeAwareList[T]) Clear() {
	if len(l.items) == 0 {
		return
	}

	priorItems := l.items
	l.items = nil

	l.record(NewClearChange(priorItems))
}

// RefreshAt records that the item at the given index shall be re-evaluated by downstream consumers (the item sequence
// is not modified).
func (l *ChangeAwareList[T]) RefreshAt(index int) {
	l.guardElementIndex(index)

	l.record(NewRefreshChange(l.items[index], index))
}

// IndexOf returns the position of the first occurrence of the given item.
func (l *ChangeAwareList[T]) IndexOf(item T) (index int, found bool) {
	for i, existingItem := range l.items {
		if existingItem == item {
			return i, true
		}
	}

	return 0, false
}

// BinarySearch searches for the given item using the given comparer, assuming the list is sorted by that comparer.
// If the item is found, its position is returned; otherwise the returned index is the position at which the item
// would have to be inserted to keep the list sorted.
func (l *ChangeAwareList[T]) BinarySearch(item T, comparer func(a T, b T) int) (index int, found bool) {
	low, high := 0, len(l.items)
	for low < high {
		mid := int(uint(low+high) >> 1)

		switch result := comparer(l.items[mid], item); {
		case result < 0:
			low = mid + 1
		case result > 0:
			high = mid
		default:
			return mid, true
		}
	}

	return low, false
}

// CaptureChanges returns the accumulated Change records as a ChangeSet and resets the pending record log (the item
// sequence is left untouched).
func (l *ChangeAwareList[T]) CaptureChanges() ChangeSet[T] {
	if len(l.changes) == 0 {
		return EmptyChangeSet[T]()
	}

	capturedChanges := l.changes
	l.changes = nil

	return NewChangeSet(capturedChanges...)
}

// record appends the given Change to the pending record log.
func (l *ChangeAwareList[T]) record(change Change[T]) {
	l.changes = append(l.changes, change)
}

// guardElementIndex panics if the given index does not address an existing item.
func (l *ChangeAwareList[T]) guardElementIndex(index int) {
	if index < 0 || index >= len(l.items) {
		panic(ierrors.Errorf("index %d out of range (length %d)", index, len(l.items)))
	}
}

// guardInsertIndex panics if the given index is not a valid insertion position.
func (l *ChangeAwareList[T]) guardInsertIndex(index int) {
	if index < 0 || index > len(l.items) {
		panic(ierrors.Errorf("insert index %d out of range (length %d)", index, len(l.items)))
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
