package render

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/idursun/photogrid/internal/ui/layout"
	"github.com/rivo/uniseg"
)

// TextBuilder lays out a single line of styled segments, some of which may be
// clickable.
type TextBuilder struct {
	dl       *DisplayContext
	segments []textSegment
	x        int
	y        int
	z        int
}

type textSegment struct {
	text    string
	style   lipgloss.Style
	onClick tea.Msg
}

func (dl *DisplayContext) Text(x, y, z int) *TextBuilder {
	return &TextBuilder{
		dl: dl,
		x:  x,
		y:  y,
		z:  z,
	}
}

func (tb *TextBuilder) Styled(text string, style lipgloss.Style) *TextBuilder {
	tb.segments = append(tb.segments, textSegment{text: text, style: style})
	return tb
}

func (tb *TextBuilder) Clickable(text string, style lipgloss.Style, onClick tea.Msg) *TextBuilder {
	tb.segments = append(tb.segments, textSegment{
		text:    text,
		style:   style,
		onClick: onClick,
	})
	return tb
}

// Done emits the draws and interactions and returns the width used.
func (tb *TextBuilder) Done() int {
	x := tb.x

	for _, seg := range tb.segments {
		width := uniseg.StringWidth(seg.text)
		if width == 0 {
			continue
		}

		segRect := layout.Rect(x, tb.y, width, 1)

		tb.dl.AddDraw(segRect, seg.style.Render(seg.text), tb.z)

		if seg.onClick != nil {
			tb.dl.AddInteraction(segRect, seg.onClick, InteractionClick, tb.z)
		}

		x += width
	}
	return x - tb.x
}
