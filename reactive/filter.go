package reactive

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"

	"github.com/modulexcite/DynamicData/changeset"
)

// region Filter ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Filter returns a DerivedList that contains exactly the items of the given source that currently satisfy the given
// predicate. Empty downstream ChangeSets are swallowed so that consumers are never woken by no-op notifications.
func Filter[T comparable](source ChangeStream[T], predicate func(item T) bool) DerivedList[T] {
	if source == nil {
		panic(ierrors.New("source must not be nil"))
	}

	operator := NewFilterOperator[T](predicate)
	filtered := newDerivedList[T](operator)

	source.OnUpdate(func(upstreamChanges changeset.ChangeSet[T]) {
		if downstreamChanges := operator.Apply(upstreamChanges); !downstreamChanges.IsEmpty() {
			filtered.trigger(downstreamChanges)
		}
	})

	return filtered
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region FilterOperator ///////////////////////////////////////////////////////////////////////////////////////////////

// FilterOperator is the transformation behind Filter: it consumes one upstream ChangeSet at a time, keeps its private
// mirror equal to the predicate-satisfying subsequence of the upstream contents and returns the minimal ChangeSet
// that transforms the previous mirror into the new one. It is not tied to any delivery mechanism and must be fed a
// serialized sequence of ChangeSets.
type FilterOperator[T comparable] struct {
	// predicate decides whether an item belongs to the filtered view.
	predicate func(item T) bool

	// filtered is the private mirror of the filtered view.
	filtered *changeset.ChangeAwareList[T]
}

// NewFilterOperator creates a new FilterOperator for the given predicate.
func NewFilterOperator[T comparable](predicate func(item T) bool) *FilterOperator[T] {
	if predicate == nil {
		panic(ierrors.New("predicate must not be nil"))
	}

	return &FilterOperator[T]{
		predicate: predicate,
		filtered:  changeset.NewChangeAwareList[T](),
	}
}

// Apply consumes one upstream ChangeSet and returns the resulting ChangeSet of the filtered mirror (which may be
// empty if the upstream changes had no net effect on the filtered view).
func (f *FilterOperator[T]) Apply(changes changeset.ChangeSet[T]) changeset.ChangeSet[T] {
	changes.Range(f.applyChange)

	return f.filtered.CaptureChanges()
}

// Items returns a copy of the current filtered view.
func (f *FilterOperator[T]) Items() []T {
	return f.filtered.Items()
}

// Len returns the number of items in the filtered view.
func (f *FilterOperator[T]) Len() int {
	return f.filtered.Len()
}

// applyChange translates a single upstream Change into mutations of the filtered mirror.
func (f *FilterOperator[T]) applyChange(change changeset.Change[T]) {
	switch change.Reason {
	case changeset.ReasonAdd:
		if f.predicate(change.Current) {
			f.filtered.Add(change.Current)
		}

	case changeset.ReasonAddRange:
		// a batch landing in an empty mirror stays one record, otherwise the surviving items are appended
		// individually to keep their relative positions among the existing content
		if matches := lo.Filter(change.Items, f.predicate); f.filtered.IsEmpty() {
			f.filtered.AddRange(matches)
		} else {
			for _, item := range matches {
				f.filtered.Add(item)
			}
		}

	case changeset.ReasonUpdate:
		f.applyUpdate(change)

	case changeset.ReasonRemove:
		f.filtered.Remove(change.Current)

	case changeset.ReasonRemoveRange:
		for _, item := range change.Items {
			f.filtered.Remove(item)
		}

	case changeset.ReasonClear:
		f.filtered.Clear()

	case changeset.ReasonRefresh:
		f.applyRefresh(change)

	case changeset.ReasonMoved:
		// the filtered mirror is ordered by inclusion, not mapped to upstream positions
	}
}

// applyUpdate re-evaluates the predicate for the new and the previous value of an upstream Update.
func (f *FilterOperator[T]) applyUpdate(change changeset.Change[T]) {
	previousIndex, hadPrevious := 0, false
	if previous, hasPrevious := change.Previous.Get(); hasPrevious {
		previousIndex, hadPrevious = f.filtered.IndexOf(previous)
	}

	switch currentMatches := f.predicate(change.Current); {
	case currentMatches && hadPrevious:
		f.filtered.Set(previousIndex, change.Current)
	case currentMatches:
		f.filtered.Add(change.Current)
	case hadPrevious:
		f.filtered.RemoveAt(previousIndex)
	}
}

// applyRefresh re-evaluates the predicate for an item whose value has not been replaced.
func (f *FilterOperator[T]) applyRefresh(change changeset.Change[T]) {
	index, present := f.filtered.IndexOf(change.Current)

	switch matches := f.predicate(change.Current); {
	case matches && !present:
		f.filtered.Add(change.Current)
	case !matches && present:
		f.filtered.RemoveAt(index)
	case matches:
		f.filtered.RefreshAt(index)
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
