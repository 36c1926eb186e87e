package reactive

import (
	"github.com/modulexcite/DynamicData/changeset"
)

// region SourceList ///////////////////////////////////////////////////////////////////////////////////////////////////

// SourceList is the source-of-truth store of an operator chain. Every edit is applied atomically, captured as a
// single ChangeSet and published to all subscribers; an edit that causes no change publishes nothing. Late
// subscribers receive the current contents as their first delivery.
type SourceList[T comparable] interface {
	// ChangeStream imports the subscription methods.
	ChangeStream[T]

	// Edit applies the given batch of mutations atomically and publishes them as one ChangeSet.
	Edit(edit func(list *changeset.ChangeAwareList[T]))

	// Add appends the given item.
	Add(item T)

	// AddRange appends the given batch of items.
	AddRange(items []T)

	// Insert inserts the given item at the given index.
	Insert(index int, item T)

	// Set replaces the item at the given index.
	Set(index int, item T)

	// Replace replaces the first occurrence of the given item and returns true if the item was present.
	Replace(original T, replacement T) bool

	// RemoveAt removes the item at the given index.
	RemoveAt(index int)

	// Remove removes the first occurrence of the given item and returns true if the item was present.
	Remove(item T) bool

	// Move relocates the item at the given origin index to the given destination index.
	Move(from int, to int)

	// Clear removes all items.
	Clear()

	// Items returns a copy of the current contents.
	Items() []T

	// Len returns the number of items.
	Len() int
}

// NewSourceList creates a new empty SourceList.
func NewSourceList[T comparable]() SourceList[T] {
	return newSourceList[T]()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
