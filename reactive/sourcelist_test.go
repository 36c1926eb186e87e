package reactive

import (
	"testing"

	"github.com/iotaledger/hive.go/lo"
	"github.com/stretchr/testify/require"

	"github.com/modulexcite/DynamicData/changeset"
)

func TestSourceList_EditPublishesOneChangeSetPerBatch(t *testing.T) {
	source := NewSourceList[string]()

	var emissions []changeset.ChangeSet[string]
	source.OnUpdate(func(changes changeset.ChangeSet[string]) {
		emissions = append(emissions, changes)
	})

	source.Edit(func(list *changeset.ChangeAwareList[string]) {
		list.Add("a")
		list.Add("b")
		list.Insert(0, "c")
		list.RemoveAt(1)
	})

	require.Len(t, emissions, 1)
	require.Equal(t, 4, emissions[0].Count())
	require.Equal(t, []string{"c", "b"}, source.Items())
}

func TestSourceList_NoOpEditPublishesNothing(t *testing.T) {
	source := NewSourceList[int]()

	var emissionCount int
	source.OnUpdate(func(changes changeset.ChangeSet[int]) {
		emissionCount++
	})

	source.Edit(func(list *changeset.ChangeAwareList[int]) {})
	source.Clear()
	require.Equal(t, 0, emissionCount)
}

func TestSourceList_LateSubscriberReceivesCurrentState(t *testing.T) {
	source := NewSourceList[int]()
	source.AddRange([]int{1, 2, 3})

	var initial changeset.ChangeSet[int]
	source.OnUpdate(func(changes changeset.ChangeSet[int]) {
		if initial.IsEmpty() {
			initial = changes
		}
	})

	require.Equal(t, 1, initial.Count())
	require.Equal(t, changeset.ReasonAddRange, initial.Changes()[0].Reason)
	require.Equal(t, []int{1, 2, 3}, initial.Changes()[0].Items)
}

func TestSourceList_UnsubscribeStopsDeliveries(t *testing.T) {
	source := NewSourceList[int]()

	var emissionCount int
	unsubscribe := source.OnUpdate(func(changes changeset.ChangeSet[int]) {
		emissionCount++
	})

	source.Add(1)
	require.Equal(t, 1, emissionCount)

	unsubscribe()

	source.Add(2)
	require.Equal(t, 1, emissionCount)
}

func TestSourceList_Replace(t *testing.T) {
	source := NewSourceList[string]()
	source.AddRange([]string{"a", "b"})

	require.True(t, source.Replace("b", "c"))
	require.False(t, source.Replace("missing", "d"))
	require.Equal(t, []string{"a", "c"}, source.Items())
}

func TestSourceList_SubscribersReplayToIdenticalState(t *testing.T) {
	source := NewSourceList[int]()

	var mirrored []int
	source.OnUpdate(func(changes changeset.ChangeSet[int]) {
		mirrored = lo.PanicOnErr(changeset.Replay(mirrored, changes))
	})

	source.AddRange([]int{1, 2, 3})
	source.Move(0, 2)
	source.Set(1, 9)
	source.RemoveAt(0)
	source.Insert(1, 4)

	require.Equal(t, source.Items(), mirrored)
}

func TestOperatorChaining(t *testing.T) {
	source := NewSourceList[person]()
	adults := Filter[person](source, isAdult)
	byAgeAscending := Sort[person](adults, byAge)

	source.AddRange([]person{{"C", 40}, {"A", 10}, {"B", 25}})
	source.Add(person{"D", 19})
	require.True(t, source.Replace(person{"A", 10}, person{"A", 22}))

	require.Equal(t, []person{{"D", 19}, {"A", 22}, {"B", 25}, {"C", 40}}, byAgeAscending.Items())

	source.Remove(person{"B", 25})
	require.Equal(t, []person{{"D", 19}, {"A", 22}, {"C", 40}}, byAgeAscending.Items())

	source.Clear()
	require.Empty(t, byAgeAscending.Items())
	require.Empty(t, adults.Items())
}

func TestDerivedList_LateSubscriberReceivesCurrentState(t *testing.T) {
	source := NewSourceList[int]()
	filtered := Filter[int](source, func(value int) bool { return value%2 == 0 })

	source.AddRange([]int{1, 2, 3, 4})

	var mirrored []int
	filtered.OnUpdate(func(changes changeset.ChangeSet[int]) {
		mirrored = lo.PanicOnErr(changeset.Replay(mirrored, changes))
	})

	require.Equal(t, []int{2, 4}, mirrored)

	source.Add(6)
	require.Equal(t, []int{2, 4, 6}, mirrored)
}

func TestOperatorChaining_OntoPopulatedStream(t *testing.T) {
	source := NewSourceList[int]()
	filtered := Filter[int](source, func(value int) bool { return value%5 == 0 })

	source.AddRange([]int{10, 3, 5, 8})

	// operators attached after the fact start from the current upstream state
	sorted := Sort[int](filtered, lo.Comparator[int])
	require.Equal(t, []int{5, 10}, sorted.Items())

	require.True(t, source.Remove(10))
	require.Equal(t, []int{5}, sorted.Items())
}
