package reactive

import (
	"github.com/modulexcite/DynamicData/changeset"
)

// region ChangeStream /////////////////////////////////////////////////////////////////////////////////////////////////

// ChangeStream is a serialized sequence of ChangeSets that consumers can subscribe to. Deliveries are pushed one at a
// time and never concurrently or re-entrantly, which allows every consumer to treat its own state as single-writer.
type ChangeStream[T comparable] interface {
	// OnUpdate registers the given callback that is triggered whenever a new ChangeSet is published. The first
	// delivery replays the current state of the stream's owner (if any) so that late subscribers start consistent.
	OnUpdate(callback func(changes changeset.ChangeSet[T])) (unsubscribe func())
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region DerivedList //////////////////////////////////////////////////////////////////////////////////////////////////

// DerivedList is a ChangeStream that additionally exposes the derived view that it maintains. The view is a
// deterministic function of all ChangeSets consumed from the upstream since creation.
type DerivedList[T comparable] interface {
	// ChangeStream imports the subscription methods.
	ChangeStream[T]

	// Items returns a copy of the current derived view.
	Items() []T

	// Len returns the number of items in the derived view.
	Len() int
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
