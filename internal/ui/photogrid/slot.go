package photogrid

import (
	"fmt"

	"github.com/idursun/photogrid/internal/photo"
)

type SlotKind int

const (
	SlotHidden SlotKind = iota
	SlotItem
	SlotAdd
)

func (k SlotKind) String() string {
	switch k {
	case SlotHidden:
		return "hidden"
	case SlotItem:
		return "item"
	case SlotAdd:
		return "add"
	default:
		return fmt.Sprintf("slot(%d)", int(k))
	}
}

// SlotState is what one grid position shows. Source and Position are only set
// for item slots.
type SlotState struct {
	Kind     SlotKind
	Source   *photo.Source
	Position int
}

func (s SlotState) String() string {
	if s.Kind == SlotItem {
		return fmt.Sprintf("item(%d, %s)", s.Position, s.Source)
	}
	return s.Kind.String()
}

type ChangeKind int

const (
	// ChangeReset means any slot may have changed.
	ChangeReset ChangeKind = iota
	// ChangeRemoved means the slot at Position was removed and later slots moved
	// up by one.
	ChangeRemoved
)

// Change is the re-render signal emitted after the list is mutated.
type Change struct {
	Kind     ChangeKind
	Position int
}

// Removal describes a successful RemoveByIdentity.
type Removal struct {
	// Position the removed source held before removal.
	Position  int
	Remaining int
	Change    Change
}
