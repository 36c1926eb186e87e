package changeset

import (
	"fmt"
)

// region ChangeReason /////////////////////////////////////////////////////////////////////////////////////////////////

// ChangeReason describes the kind of mutation that a Change record represents.
type ChangeReason uint8

const (
	// ReasonAdd indicates that a single item was added to the list.
	ReasonAdd ChangeReason = iota

	// ReasonAddRange indicates that a contiguous batch of items was added to the list.
	ReasonAddRange

	// ReasonRemove indicates that a single item was removed from the list.
	ReasonRemove

	// ReasonRemoveRange indicates that a contiguous batch of items was removed from the list.
	ReasonRemoveRange

	// ReasonUpdate indicates that an item was replaced in place.
	ReasonUpdate

	// ReasonMoved indicates that an item was moved to a different position.
	ReasonMoved

	// ReasonClear indicates that the whole list was emptied.
	ReasonClear

	// ReasonRefresh indicates that an item shall be re-evaluated without its value having been replaced.
	ReasonRefresh
)

// ChangeReasonNames contains a dictionary of the names of ChangeReasons.
var ChangeReasonNames = [...]string{
	"Add",
	"AddRange",
	"Remove",
	"RemoveRange",
	"Update",
	"Moved",
	"Clear",
	"Refresh",
}

// IsRange returns true if the ChangeReason describes a batched mutation that affects multiple items at once.
func (c ChangeReason) IsRange() bool {
	return c == ReasonAddRange || c == ReasonRemoveRange || c == ReasonClear
}

// String returns a human-readable version of the ChangeReason.
func (c ChangeReason) String() string {
	if int(c) >= len(ChangeReasonNames) {
		return fmt.Sprintf("ChangeReason(%X)", uint8(c))
	}

	return ChangeReasonNames[c]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
