package reactive

import (
	"fmt"
	"sort"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/runtime/options"

	"github.com/modulexcite/DynamicData/changeset"
)

// region Sort /////////////////////////////////////////////////////////////////////////////////////////////////////////

// Sort returns a DerivedList that contains all items of the given source in the order defined by the given comparer,
// re-deriving positions incrementally instead of re-sorting on every notification. Unlike Filter, Sort does not
// suppress empty emissions - every incoming notification produces an outgoing one.
func Sort[T comparable](source ChangeStream[T], comparer func(a T, b T) int, opts ...options.Option[SortOperator[T]]) DerivedList[T] {
	if source == nil {
		panic(ierrors.New("source must not be nil"))
	}

	operator := NewSortOperator[T](comparer, opts...)
	sorted := newDerivedList[T](operator)

	source.OnUpdate(func(upstreamChanges changeset.ChangeSet[T]) {
		sorted.trigger(operator.Apply(upstreamChanges))
	})

	return sorted
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region SortOperator /////////////////////////////////////////////////////////////////////////////////////////////////

// ErrSortConsistency is returned (via panic) when the sorted mirror is detected to have diverged from its upstream.
// This indicates a bug or a misconfiguration (e.g. duplicate sort keys in binary search mode), never a recoverable
// data condition.
var ErrSortConsistency = ierrors.New("sorted mirror has diverged from its upstream")

// SortOperator is the transformation behind Sort: it consumes one upstream ChangeSet at a time, keeps its private
// mirror equal to the upstream contents ordered by the comparer and returns the ChangeSet that transforms the
// previous mirror into the new one. It must be fed a serialized sequence of ChangeSets.
type SortOperator[T comparable] struct {
	// comparer defines the total order of the sorted view.
	comparer func(a T, b T) int

	// searchMode selects the insertion-position search strategy.
	searchMode SearchMode

	// sorted is the private mirror of the sorted view.
	sorted *changeset.ChangeAwareList[T]
}

// NewSortOperator creates a new SortOperator for the given comparer.
func NewSortOperator[T comparable](comparer func(a T, b T) int, opts ...options.Option[SortOperator[T]]) *SortOperator[T] {
	if comparer == nil {
		panic(ierrors.New("comparer must not be nil"))
	}

	return options.Apply(&SortOperator[T]{
		comparer: comparer,
		sorted:   changeset.NewChangeAwareList[T](),
	}, opts)
}

// WithSearchMode configures the insertion-position search strategy of a SortOperator.
func WithSearchMode[T comparable](searchMode SearchMode) options.Option[SortOperator[T]] {
	return func(s *SortOperator[T]) {
		s.searchMode = searchMode
	}
}

// Apply consumes one upstream ChangeSet and returns the resulting ChangeSet of the sorted mirror.
func (s *SortOperator[T]) Apply(changes changeset.ChangeSet[T]) changeset.ChangeSet[T] {
	changes.Range(s.applyChange)

	return s.sorted.CaptureChanges()
}

// Items returns a copy of the current sorted view.
func (s *SortOperator[T]) Items() []T {
	return s.sorted.Items()
}

// Len returns the number of items in the sorted view.
func (s *SortOperator[T]) Len() int {
	return s.sorted.Len()
}

// applyChange translates a single upstream Change into mutations of the sorted mirror.
func (s *SortOperator[T]) applyChange(change changeset.Change[T]) {
	switch change.Reason {
	case changeset.ReasonAdd:
		s.insertSorted(change.Current)

	case changeset.ReasonAddRange:
		s.applyAddRange(change.Items)

	case changeset.ReasonUpdate:
		// always remove + reinsert, even if the sort key did not change (keeps the emitted record granularity
		// identical for key-changing and key-preserving updates)
		previous, _ := change.Previous.Get()
		s.sorted.RemoveAt(s.currentPosition(previous))
		s.insertSorted(change.Current)

	case changeset.ReasonRemove:
		s.sorted.RemoveAt(s.currentPosition(change.Current))

	case changeset.ReasonRemoveRange:
		for _, item := range change.Items {
			s.sorted.RemoveAt(s.currentPosition(item))
		}

	case changeset.ReasonClear:
		s.sorted.Clear()

	case changeset.ReasonRefresh:
		s.sorted.RemoveAt(s.currentPosition(change.Current))
		s.insertSorted(change.Current)

	case changeset.ReasonMoved:
		// upstream positions do not affect the sorted order
	}
}

// applyAddRange sorts the incoming batch once and inserts it into the mirror.
func (s *SortOperator[T]) applyAddRange(items []T) {
	batch := make([]T, len(items))
	copy(batch, items)

	sort.SliceStable(batch, func(i int, j int) bool {
		return s.comparer(batch[i], batch[j]) < 0
	})

	if s.sorted.IsEmpty() {
		s.sorted.AddRange(batch)

		return
	}

	for _, item := range batch {
		s.insertSorted(item)
	}
}

// insertSorted inserts the given item at its position under the configured total order.
func (s *SortOperator[T]) insertSorted(item T) {
	s.sorted.Insert(s.insertPosition(item), item)
}

// insertPosition computes the index at which the given item must be placed to preserve the sort order.
func (s *SortOperator[T]) insertPosition(item T) int {
	if s.searchMode == UseBinarySearch {
		index, found := s.sorted.BinarySearch(item, s.comparer)
		if found {
			panic(ierrors.Wrapf(ErrSortConsistency, "binary search requires unique sort keys but found an existing match for %v", item))
		}

		return index
	}

	for index := 0; index < s.sorted.Len(); index++ {
		if s.comparer(s.sorted.Get(index), item) > 0 {
			return index
		}
	}

	return s.sorted.Len()
}

// currentPosition locates the given item in the sorted mirror; failing to find it means the mirror has desynchronized
// from the upstream.
func (s *SortOperator[T]) currentPosition(item T) int {
	if s.searchMode == UseBinarySearch {
		index, found := s.sorted.BinarySearch(item, s.comparer)
		if !found {
			panic(ierrors.Wrapf(ErrSortConsistency, "item %v not found in the sorted mirror", item))
		}

		return index
	}

	index, found := s.sorted.IndexOf(item)
	if !found {
		panic(ierrors.Wrapf(ErrSortConsistency, "item %v not found in the sorted mirror", item))
	}

	return index
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region SearchMode ///////////////////////////////////////////////////////////////////////////////////////////////////

// SearchMode selects how a SortOperator computes insertion positions and current positions.
type SearchMode uint8

const (
	// UseLinearSearch scans from the front of the mirror (O(n) per lookup, tolerant of duplicate sort keys).
	UseLinearSearch SearchMode = iota

	// UseBinarySearch performs a binary search (O(log n) per lookup) and requires the comparer to establish a
	// strict total order without ties among distinct items.
	UseBinarySearch
)

// SearchModeNames contains a dictionary of the names of SearchModes.
var SearchModeNames = [...]string{
	"UseLinearSearch",
	"UseBinarySearch",
}

// String returns a human-readable version of the SearchMode.
func (s SearchMode) String() string {
	if int(s) >= len(SearchModeNames) {
		return fmt.Sprintf("SearchMode(%X)", uint8(s))
	}

	return SearchModeNames[s]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
