package common

import (
	tea "charm.land/bubbletea/v2"
	"github.com/idursun/photogrid/internal/ui/layout"
	"github.com/idursun/photogrid/internal/ui/render"
)

// ImmediateModel is a component that draws itself into a display context every
// frame instead of returning a string.
type ImmediateModel interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	ViewRect(dl *render.DisplayContext, box layout.Box)
}

func NewCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
