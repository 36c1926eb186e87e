package reactive

import (
	"testing"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/stretchr/testify/require"

	"github.com/modulexcite/DynamicData/changeset"
)

func byAge(a person, b person) int {
	return lo.Comparator(a.age, b.age)
}

func TestSort_MaintainsOrderIncrementally(t *testing.T) {
	source := NewSourceList[int]()
	sorted := Sort[int](source, lo.Comparator[int])

	source.Add(20)
	source.Add(10)
	source.Add(30)
	require.Equal(t, []int{10, 20, 30}, sorted.Items())

	source.Remove(20)
	require.Equal(t, []int{10, 30}, sorted.Items())

	source.Add(15)
	require.Equal(t, []int{10, 15, 30}, sorted.Items())

	source.Clear()
	require.Empty(t, sorted.Items())
}

func TestSort_RangeInsertIntoNonEmptyList(t *testing.T) {
	source := NewSourceList[int]()
	sorted := Sort[int](source, lo.Comparator[int])

	source.AddRange([]int{10, 20, 30})
	require.Equal(t, []int{10, 20, 30}, sorted.Items())

	source.AddRange([]int{25, 5})
	require.Equal(t, []int{5, 10, 20, 25, 30}, sorted.Items())
}

func TestSort_BulkAppendIntoEmptyList(t *testing.T) {
	operator := NewSortOperator[int](lo.Comparator[int])

	changes := operator.Apply(changeset.NewChangeSet(changeset.NewAddRangeChange([]int{3, 1, 2}, 0)))
	require.Equal(t, 1, changes.Count())
	require.Equal(t, changeset.ReasonAddRange, changes.Changes()[0].Reason)
	require.Equal(t, []int{1, 2, 3}, changes.Changes()[0].Items)
}

func TestSort_UpdateRelocatesItem(t *testing.T) {
	source := NewSourceList[person]()
	sorted := Sort[person](source, byAge)

	source.AddRange([]person{{"A", 10}, {"B", 20}, {"C", 30}})

	var lastEmission changeset.ChangeSet[person]
	sorted.OnUpdate(func(changes changeset.ChangeSet[person]) {
		lastEmission = changes
	})

	require.True(t, source.Replace(person{"A", 10}, person{"A", 25}))
	require.Equal(t, []person{{"B", 20}, {"A", 25}, {"C", 30}}, sorted.Items())

	// updates surface as remove + reinsert, never as an in-place update
	require.Equal(t, 2, lastEmission.Count())
	require.Equal(t, 1, lastEmission.Removes())
	require.Equal(t, 1, lastEmission.Adds())
}

func TestSort_LinearAndBinaryModesAgree(t *testing.T) {
	applyScript := func(source SourceList[int]) {
		source.AddRange([]int{50, 10, 40})
		source.Add(30)
		source.Remove(40)
		source.Replace(10, 20)
		source.Add(60)
	}

	linearSource := NewSourceList[int]()
	linearSorted := Sort[int](linearSource, lo.Comparator[int])
	applyScript(linearSource)

	binarySource := NewSourceList[int]()
	binarySorted := Sort[int](binarySource, lo.Comparator[int], WithSearchMode[int](UseBinarySearch))
	applyScript(binarySource)

	require.Equal(t, []int{20, 30, 50, 60}, linearSorted.Items())
	require.Equal(t, linearSorted.Items(), binarySorted.Items())
}

func TestSort_LinearModeKeepsTiesInInsertionOrder(t *testing.T) {
	source := NewSourceList[person]()
	sorted := Sort[person](source, byAge)

	source.Add(person{"A", 20})
	source.Add(person{"B", 20})
	source.Add(person{"C", 10})

	require.Equal(t, []person{{"C", 10}, {"A", 20}, {"B", 20}}, sorted.Items())
}

func TestSort_BinaryModeRejectsDuplicateKeys(t *testing.T) {
	operator := NewSortOperator[person](byAge, WithSearchMode[person](UseBinarySearch))

	operator.Apply(changeset.NewChangeSet(changeset.NewAddChange(person{"A", 20}, 0)))

	requireSortConsistencyPanic(t, func() {
		operator.Apply(changeset.NewChangeSet(changeset.NewAddChange(person{"B", 20}, 1)))
	})
}

func TestSort_MissingItemIsAConsistencyViolation(t *testing.T) {
	linearOperator := NewSortOperator[int](lo.Comparator[int])
	requireSortConsistencyPanic(t, func() {
		linearOperator.Apply(changeset.NewChangeSet(changeset.NewRemoveChange(42, 0)))
	})

	binaryOperator := NewSortOperator[int](lo.Comparator[int], WithSearchMode[int](UseBinarySearch))
	requireSortConsistencyPanic(t, func() {
		binaryOperator.Apply(changeset.NewChangeSet(changeset.NewRemoveChange(42, 0)))
	})
}

func TestSort_DoesNotSuppressEmptyEmissions(t *testing.T) {
	source := NewSourceList[int]()
	sorted := Sort[int](source, lo.Comparator[int])

	var emissionCount int
	sorted.OnUpdate(func(changes changeset.ChangeSet[int]) {
		emissionCount++
	})

	source.AddRange([]int{1, 2, 3})
	require.Equal(t, 1, emissionCount)

	// an upstream move does not affect the sorted order but still produces a (net-zero) emission
	source.Move(0, 2)
	require.Equal(t, 2, emissionCount)
	require.Equal(t, []int{1, 2, 3}, sorted.Items())
}

func TestSort_DownstreamReplayMatchesView(t *testing.T) {
	source := NewSourceList[int]()
	sorted := Sort[int](source, lo.Comparator[int])

	var downstream []int
	sorted.OnUpdate(func(changes changeset.ChangeSet[int]) {
		downstream = lo.PanicOnErr(changeset.Replay(downstream, changes))
	})

	source.AddRange([]int{9, 4, 7})
	source.Add(1)
	source.Replace(7, 5)
	source.RemoveAt(0)

	require.Equal(t, sorted.Items(), downstream)
}

func TestSort_RejectsNilCollaborators(t *testing.T) {
	require.Panics(t, func() { NewSortOperator[int](nil) })
	require.Panics(t, func() { Sort[int](nil, lo.Comparator[int]) })
	require.Panics(t, func() { Sort[int](NewSourceList[int](), nil) })
}

func requireSortConsistencyPanic(t *testing.T, callback func()) {
	t.Helper()

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered)

		err, isError := recovered.(error)
		require.True(t, isError)
		require.True(t, ierrors.Is(err, ErrSortConsistency))
	}()

	callback()
}
