package photogrid

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/idursun/photogrid/internal/config"
	"github.com/idursun/photogrid/internal/imageloader"
	"github.com/idursun/photogrid/internal/ui/common"
	"github.com/idursun/photogrid/internal/ui/intents"
	"github.com/idursun/photogrid/internal/ui/layout"
	"github.com/idursun/photogrid/internal/ui/render"
	"github.com/rivo/uniseg"
)

// DeleteFailedMsg is sent when a delete control could not remove its photo.
type DeleteFailedMsg struct {
	Err error
}

// Messages attached to tiles carry only the slot index. The slot's photo is
// looked up again when the message arrives.
type slotTapMsg struct {
	Index int
}

type deleteTapMsg struct {
	Index int
}

type gridScrollMsg struct {
	Delta      int
	Horizontal bool
}

func (m gridScrollMsg) SetDelta(delta int, horizontal bool) tea.Msg {
	m.Delta = delta
	m.Horizontal = horizontal
	return m
}

const deleteGlyph = "✕"

var _ common.ImmediateModel = (*Model)(nil)

type Model struct {
	presenter  *Presenter
	dispatcher *Dispatcher
	loader     imageloader.Loader
	surfaces   map[int]*imageloader.Surface
	keyMap     KeyMap
	grid       layout.Grid
	styles     styles
	search     quickSearch

	cursor              int
	startRow            int
	columns             int
	visibleRows         int
	ensureCursorVisible bool
	err                 error
}

type styles struct {
	tile           lipgloss.Style
	border         lipgloss.Style
	selectedBorder lipgloss.Style
	caption        lipgloss.Style
	delete         lipgloss.Style
	add            lipgloss.Style
	status         lipgloss.Style
	statusError    lipgloss.Style
	search         lipgloss.Style
	selected       lipgloss.Style
}

// New creates the grid for presenter. The model takes over the presenter's
// change notifications.
func New(presenter *Presenter, loader imageloader.Loader, c *config.Config) *Model {
	m := &Model{
		presenter:  presenter,
		dispatcher: NewDispatcher(presenter),
		loader:     loader,
		surfaces:   make(map[int]*imageloader.Surface),
		keyMap:     NewKeyMap(c),
		grid: layout.Grid{
			Columns:    c.Grid.Columns,
			CellWidth:  c.Grid.TileWidth,
			CellHeight: c.Grid.TileHeight,
		},
		styles: styles{
			tile:           common.DefaultPalette.Get("photogrid tile"),
			border:         common.DefaultPalette.Get("photogrid tile border"),
			selectedBorder: common.DefaultPalette.Get("photogrid tile selected border"),
			caption:        common.DefaultPalette.Get("photogrid caption"),
			delete:         common.DefaultPalette.Get("photogrid delete"),
			add:            common.DefaultPalette.Get("photogrid add"),
			status:         common.DefaultPalette.Get("photogrid status"),
			statusError:    common.DefaultPalette.Get("photogrid status error"),
			search:         common.DefaultPalette.Get("photogrid search"),
			selected:       common.DefaultPalette.Get("photogrid tile selected"),
		},
		search:  newQuickSearch(),
		columns: max(c.Grid.Columns, 1),
	}
	is := m.search.input.Styles()
	is.Focused.Prompt = m.styles.search
	is.Blurred.Prompt = m.styles.search
	m.search.input.SetStyles(is)
	presenter.OnChange(m.onChange)
	return m
}

func (m *Model) Dispatcher() *Dispatcher {
	return m.dispatcher
}

func (m *Model) Presenter() *Presenter {
	return m.presenter
}

func (m *Model) KeyMap() KeyMap {
	return m.keyMap
}

func (m *Model) Cursor() int {
	return m.cursor
}

// IsEditing reports whether keys go to the quick search input.
func (m *Model) IsEditing() bool {
	return m.search.active
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case intents.Intent:
		return m.handleIntent(msg)
	case slotTapMsg:
		m.cursor = msg.Index
		m.err = nil
		m.dispatcher.TapSlot(msg.Index)
	case deleteTapMsg:
		return m.delete(msg.Index)
	case gridScrollMsg:
		if msg.Horizontal {
			return nil
		}
		m.scroll(msg.Delta)
	case imageloader.LoadedMsg:
		// the surface already holds the new content, the next frame draws it
		return nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.search.active {
		switch {
		case key.Matches(msg, m.keyMap.SearchApply):
			return m.handleIntent(intents.GridSearchEnd{})
		case key.Matches(msg, m.keyMap.SearchCancel):
			return m.handleIntent(intents.GridSearchEnd{Cancelled: true})
		case key.Matches(msg, m.keyMap.SearchNext):
			return m.handleIntent(intents.GridSearchCycle{Delta: 1})
		case key.Matches(msg, m.keyMap.SearchPrev):
			return m.handleIntent(intents.GridSearchCycle{Delta: -1})
		}
		var cmd tea.Cmd
		m.search.input, cmd = m.search.input.Update(msg)
		if index, ok := m.search.search(m.presenter.Names()); ok {
			m.moveTo(index)
		}
		return cmd
	}

	switch {
	case key.Matches(msg, m.keyMap.Up):
		return m.handleIntent(intents.GridNavigate{DeltaY: -1})
	case key.Matches(msg, m.keyMap.Down):
		return m.handleIntent(intents.GridNavigate{DeltaY: 1})
	case key.Matches(msg, m.keyMap.Left):
		return m.handleIntent(intents.GridNavigate{DeltaX: -1})
	case key.Matches(msg, m.keyMap.Right):
		return m.handleIntent(intents.GridNavigate{DeltaX: 1})
	case key.Matches(msg, m.keyMap.Tap):
		return m.handleIntent(intents.GridTap{})
	case key.Matches(msg, m.keyMap.Delete):
		return m.handleIntent(intents.GridDelete{})
	case key.Matches(msg, m.keyMap.Add):
		return m.handleIntent(intents.GridAdd{})
	case key.Matches(msg, m.keyMap.Search):
		return m.handleIntent(intents.GridSearchStart{})
	}
	return nil
}

func (m *Model) handleIntent(intent intents.Intent) tea.Cmd {
	switch intent := intent.(type) {
	case intents.GridNavigate:
		m.navigate(intent.DeltaX, intent.DeltaY)
	case intents.GridTap:
		m.err = nil
		m.dispatcher.TapSlot(m.cursor)
	case intents.GridDelete:
		return m.delete(m.cursor)
	case intents.GridAdd:
		if m.presenter.Editable() {
			m.dispatcher.TapSlot(m.presenter.Len())
		}
	case intents.GridSearchStart:
		m.search.start(m.cursor)
		return textinput.Blink
	case intents.GridSearchEnd:
		if intent.Cancelled {
			m.moveTo(m.search.origin)
		}
		m.search.stop()
	case intents.GridSearchCycle:
		if index, ok := m.search.cycle(intent.Delta); ok {
			m.moveTo(index)
		}
	}
	return nil
}

func (m *Model) delete(index int) tea.Cmd {
	m.err = nil
	if _, err := m.dispatcher.TapDelete(index); err != nil {
		m.err = err
		return common.NewCmd(DeleteFailedMsg{Err: err})
	}
	return nil
}

func (m *Model) onChange(change Change) {
	switch change.Kind {
	case ChangeReset:
		clear(m.surfaces)
		m.ensureCursorVisible = true
	case ChangeRemoved:
		last := -1
		for index := range m.surfaces {
			last = max(last, index)
		}
		if change.Position > last {
			break
		}
		for i := change.Position; i < last; i++ {
			if next, ok := m.surfaces[i+1]; ok {
				m.surfaces[i] = next
			} else {
				delete(m.surfaces, i)
			}
		}
		delete(m.surfaces, last)
	}
	m.clampCursor()
	m.clampScroll()
}

func (m *Model) clampCursor() {
	m.cursor = max(min(m.cursor, m.presenter.VisibleSlotCount()-1), 0)
}

func (m *Model) moveTo(index int) {
	m.cursor = index
	m.clampCursor()
	m.ensureCursorVisible = true
}

func (m *Model) navigate(dx, dy int) {
	count := m.presenter.VisibleSlotCount()
	if count == 0 {
		return
	}
	next := m.cursor + dx + dy*m.columns
	if next < 0 {
		return
	}
	if next >= count {
		// moving down from a full row onto a shorter last row
		if dy <= 0 || m.cursor/m.columns >= (count-1)/m.columns {
			return
		}
		next = count - 1
	}
	m.moveTo(next)
}

func (m *Model) scroll(delta int) {
	m.startRow += delta
	m.clampScroll()
	m.ensureCursorVisible = false
}

// clampScroll keeps the last row of the grid at or below the bottom of the
// viewport.
func (m *Model) clampScroll() {
	rows := m.grid.Rows(m.presenter.VisibleSlotCount(), m.columns)
	maxStart := max(rows-m.visibleRows, 0)
	m.startRow = max(min(m.startRow, maxStart), 0)
}

func (m *Model) surface(index, width, height int) *imageloader.Surface {
	s, ok := m.surfaces[index]
	if !ok {
		s = imageloader.NewSurface(width, height)
		m.surfaces[index] = s
		return s
	}
	s.Resize(width, height)
	return s
}

func (m *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	parts := box.V(layout.Fill(1), layout.Fixed(1))
	area, statusLine := parts[0], parts[1]

	m.columns = m.grid.FitColumns(area.R.Dx())
	m.visibleRows = max(m.grid.VisibleRows(area.R.Dy()), 1)
	count := m.presenter.VisibleSlotCount()
	m.clampCursor()
	m.clampScroll()
	if m.ensureCursorVisible {
		row := m.cursor / m.columns
		if row < m.startRow {
			m.startRow = row
		} else if row >= m.startRow+m.visibleRows {
			m.startRow = row - m.visibleRows + 1
		}
		m.ensureCursorVisible = false
	}

	dl.AddInteraction(area.R, gridScrollMsg{}, render.InteractionScroll, render.ZBase)
	for index := m.startRow * m.columns; index < count; index++ {
		cell, ok := m.grid.Cell(area, index, m.columns, m.startRow)
		if !ok {
			break
		}
		m.renderSlot(dl, cell, index)
	}
	m.renderStatus(dl, statusLine)
}

func (m *Model) renderSlot(dl *render.DisplayContext, cell layout.Box, index int) {
	slot := m.presenter.SlotFor(index)
	if slot.Kind == SlotHidden {
		return
	}

	borderStyle := m.styles.border
	if index == m.cursor {
		borderStyle = m.styles.selectedBorder
	}
	drawBorder(dl, cell, lipgloss.RoundedBorder(), borderStyle)

	inner := cell.Inset(1)
	imageArea, captionArea := inner.CutBottom(1)
	style := m.styles.tile
	if slot.Kind == SlotAdd {
		imageArea = inner
		style = m.styles.add
	}

	if req, ok := m.presenter.Request(index); ok {
		surface := m.surface(index, imageArea.R.Dx(), imageArea.R.Dy())
		m.loader.Display(surface, req)
		content, state := surface.Content()
		dl.AddDraw(imageArea.R, style.Render(content), render.ZTileContent)
		if state == imageloader.StatePlaceholder || state == imageloader.StateFailed {
			dl.AddDim(imageArea.R, render.ZTileContent)
		}
	}
	if _, none := m.styles.selected.GetBackground().(lipgloss.NoColor); index == m.cursor && !none {
		dl.AddHighlight(inner.R, m.styles.selected, render.ZTileContent)
	}
	dl.AddInteraction(cell.R, slotTapMsg{Index: index}, render.InteractionClick, render.ZTile)

	if slot.Kind != SlotItem {
		return
	}
	caption := truncate(slot.Source.Name(), captionArea.R.Dx())
	dl.AddDraw(captionArea.R, m.styles.caption.Render(caption), render.ZTileContent)
	if m.search.active && index == m.cursor && len(m.search.matches) > 0 {
		dl.AddReverse(captionArea.R, render.ZTileControl)
	}

	if m.presenter.Editable() {
		dl.Text(cell.R.Max.X-2, cell.R.Min.Y, render.ZTileControl).
			Clickable(deleteGlyph, m.styles.delete, deleteTapMsg{Index: index}).
			Done()
	}
}

func (m *Model) renderStatus(dl *render.DisplayContext, box layout.Box) {
	dl.AddFill(box.R, ' ', m.styles.status, render.ZBase)
	if m.search.active {
		input := m.search.input.View()
		parts := box.H(layout.Fixed(lipgloss.Width(input)), layout.Fill(1))
		dl.AddDraw(parts[0].R, input, render.ZStatus)
		var b strings.Builder
		writeHelp(&b, m.keyMap.SearchHelp())
		dl.AddDraw(parts[1].R, m.styles.status.Render(b.String()), render.ZStatus)
		return
	}
	if m.err != nil {
		dl.AddDraw(box.R, m.styles.statusError.Render(m.err.Error()), render.ZStatus)
		return
	}

	var b strings.Builder
	if m.presenter.Editable() {
		fmt.Fprintf(&b, "%d/%d", m.presenter.Len(), m.presenter.MaxSlots())
	} else {
		fmt.Fprintf(&b, "%d", m.presenter.Len())
	}
	b.WriteString(" photos")
	writeHelp(&b, m.keyMap.ShortHelp(m.presenter.Editable()))
	dl.AddDraw(box.R, m.styles.status.Render(b.String()), render.ZStatus)
}

func writeHelp(b *strings.Builder, bindings []key.Binding) {
	for _, binding := range bindings {
		if !binding.Enabled() {
			continue
		}
		help := binding.Help()
		fmt.Fprintf(b, "  %s %s", help.Key, help.Desc)
	}
}

func drawBorder(dl *render.DisplayContext, box layout.Box, border lipgloss.Border, style lipgloss.Style) {
	w, h := box.R.Dx(), box.R.Dy()
	if w < 2 || h < 2 {
		return
	}
	lines := make([]string, 0, h)
	lines = append(lines, border.TopLeft+strings.Repeat(border.Top, w-2)+border.TopRight)
	middle := border.Left + strings.Repeat(" ", w-2) + border.Right
	for range h - 2 {
		lines = append(lines, middle)
	}
	lines = append(lines, border.BottomLeft+strings.Repeat(border.Bottom, w-2)+border.BottomRight)
	dl.AddDraw(box.R, style.Render(strings.Join(lines, "\n")), render.ZTile)
}

// truncate cuts s to width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > width-1 {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	b.WriteString("…")
	return b.String()
}
