package render

import (
	tea "charm.land/bubbletea/v2"
	"github.com/idursun/photogrid/internal/ui/layout"
)

// InteractionType defines what kinds of input an interactive region responds to.
// Multiple types can be combined using bitwise OR.
type InteractionType int

const (
	InteractionClick InteractionType = 1 << iota
	InteractionScroll
)

// InteractionOp represents an interactive region that responds to input.
type InteractionOp struct {
	Rect layout.Rectangle // The interactive area (absolute coordinates)
	Msg  tea.Msg          // Message to send
	Type InteractionType  // What kind of interaction this supports
	Z    int              // Z-index for overlapping regions (higher = priority)
}

// ScrollDeltaCarrier is an interface for messages that carry scroll delta information.
// ProcessMouseEvent sets the delta before returning the message.
type ScrollDeltaCarrier interface {
	SetDelta(delta int, horizontal bool) tea.Msg
}

func contains(r layout.Rectangle, x, y int) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}

// processMouseEvent expects interactions sorted by priority, highest first.
func processMouseEvent(interactions []InteractionOp, msg tea.MouseMsg) (tea.Msg, bool) {
	mouse := msg.Mouse()
	switch msg.(type) {
	case tea.MouseClickMsg:
		if mouse.Button != tea.MouseLeft {
			return nil, false
		}
		for _, interaction := range interactions {
			if interaction.Type&InteractionClick == 0 || !contains(interaction.Rect, mouse.X, mouse.Y) {
				continue
			}
			return interaction.Msg, true
		}
	case tea.MouseWheelMsg:
		delta, horizontal := 0, false
		switch mouse.Button {
		case tea.MouseWheelUp:
			delta = -1
		case tea.MouseWheelDown:
			delta = 1
		case tea.MouseWheelLeft:
			delta, horizontal = -1, true
		case tea.MouseWheelRight:
			delta, horizontal = 1, true
		default:
			return nil, false
		}
		for _, interaction := range interactions {
			if interaction.Type&InteractionScroll == 0 || !contains(interaction.Rect, mouse.X, mouse.Y) {
				continue
			}
			if carrier, ok := interaction.Msg.(ScrollDeltaCarrier); ok {
				return carrier.SetDelta(delta, horizontal), true
			}
			return interaction.Msg, true
		}
	}
	return nil, false
}
