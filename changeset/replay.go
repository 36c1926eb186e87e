package changeset

import (
	"github.com/iotaledger/hive.go/ierrors"
)

// region Replay ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Replay applies the given ChangeSet to a copy of the given item sequence and returns the resulting sequence. The
// given sequence must be the state that the ChangeSet was captured against, otherwise an error is returned as soon as
// a record references a position that does not exist.
func Replay[T any](items []T, changes ChangeSet[T]) ([]T, error) {
	result := make([]T, len(items))
	copy(result, items)

	err := changes.ForEach(func(change Change[T]) error {
		switch change.Reason {
		case ReasonAdd:
			if change.CurrentIndex < 0 || change.CurrentIndex > len(result) {
				return ierrors.Errorf("cannot replay %s at index %d (length %d)", change.Reason, change.CurrentIndex, len(result))
			}
			result = insertAt(result, change.CurrentIndex, change.Current)

		case ReasonAddRange:
			if change.CurrentIndex < 0 || change.CurrentIndex > len(result) {
				return ierrors.Errorf("cannot replay %s at index %d (length %d)", change.Reason, change.CurrentIndex, len(result))
			}
			for i, item := range change.Items {
				result = insertAt(result, change.CurrentIndex+i, item)
			}

		case ReasonRemove:
			if change.CurrentIndex < 0 || change.CurrentIndex >= len(result) {
				return ierrors.Errorf("cannot replay %s at index %d (length %d)", change.Reason, change.CurrentIndex, len(result))
			}
			result = append(result[:change.CurrentIndex], result[change.CurrentIndex+1:]...)

		case ReasonRemoveRange:
			if change.CurrentIndex < 0 || change.CurrentIndex+len(change.Items) > len(result) {
				return ierrors.Errorf("cannot replay %s at index %d (length %d)", change.Reason, change.CurrentIndex, len(result))
			}
			result = append(result[:change.CurrentIndex], result[change.CurrentIndex+len(change.Items):]...)

		case ReasonUpdate:
			if change.CurrentIndex < 0 || change.CurrentIndex >= len(result) {
				return ierrors.Errorf("cannot replay %s at index %d (length %d)", change.Reason, change.CurrentIndex, len(result))
			}
			result[change.CurrentIndex] = change.Current

		case ReasonMoved:
			if change.PreviousIndex < 0 || change.PreviousIndex >= len(result) || change.CurrentIndex < 0 || change.CurrentIndex >= len(result) {
				return ierrors.Errorf("cannot replay %s from index %d to index %d (length %d)", change.Reason, change.PreviousIndex, change.CurrentIndex, len(result))
			}
			item := result[change.PreviousIndex]
			result = append(result[:change.PreviousIndex], result[change.PreviousIndex+1:]...)
			result = insertAt(result, change.CurrentIndex, item)

		case ReasonClear:
			result = result[:0]

		case ReasonRefresh:
			// re-evaluation marker, does not alter the sequence

		default:
			return ierrors.Errorf("unsupported change reason %s", change.Reason)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// insertAt inserts the given item at the given index of the given sequence.
func insertAt[T any](items []T, index int, item T) []T {
	var zero T
	items = append(items, zero)
	copy(items[index+1:], items[index:])
	items[index] = item

	return items
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
