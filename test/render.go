package test

import (
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/idursun/photogrid/internal/ui/common"
	"github.com/idursun/photogrid/internal/ui/layout"
	"github.com/idursun/photogrid/internal/ui/render"
)

// RenderImmediate renders an immediate model into a fixed-size buffer.
func RenderImmediate(model interface {
	ViewRect(dl *render.DisplayContext, box layout.Box)
}, width, height int) string {
	dl := Frame(model, width, height)
	buf := uv.NewScreenBuffer(width, height)
	dl.Render(buf)
	return buf.Render()
}

// Frame lays out model without rendering it, so interactions can be inspected
// or clicked.
func Frame(model interface {
	ViewRect(dl *render.DisplayContext, box layout.Box)
}, width, height int) *render.DisplayContext {
	dl := render.NewDisplayContext()
	model.ViewRect(dl, layout.NewBox(layout.Rect(0, 0, width, height)))
	return dl
}

// Click lays out model and sends it whatever message the cell at x, y carries.
// It reports false when nothing is clickable there.
func Click(model common.ImmediateModel, width, height, x, y int) (tea.Cmd, bool) {
	dl := Frame(model, width, height)
	msg, ok := dl.ProcessMouseEvent(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
	if !ok {
		return nil, false
	}
	return model.Update(msg), true
}

// SimulateModel runs cmd and feeds the resulting messages back into model
// until no commands are left. Batches are expanded; blink and other timer
// messages the model ignores end the chain.
func SimulateModel(model common.ImmediateModel, cmd tea.Cmd) []tea.Msg {
	var seen []tea.Msg
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0 && steps < 100; steps++ {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		switch msg := msg.(type) {
		case nil:
			continue
		case tea.BatchMsg:
			queue = append(queue, msg...)
			continue
		}
		seen = append(seen, msg)
		queue = append(queue, model.Update(msg))
	}
	return seen
}
