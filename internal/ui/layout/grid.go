package layout

// Grid places equally sized cells left to right, top to bottom.
type Grid struct {
	Columns    int
	CellWidth  int
	CellHeight int
	Gap        int
}

// FitColumns returns how many columns fit in width, at most g.Columns and at least one.
func (g Grid) FitColumns(width int) int {
	if g.CellWidth <= 0 {
		return max(g.Columns, 1)
	}
	fit := (width + g.Gap) / (g.CellWidth + g.Gap)
	return max(min(fit, g.Columns), 1)
}

// VisibleRows returns how many full rows fit in height.
func (g Grid) VisibleRows(height int) int {
	if g.CellHeight <= 0 {
		return 0
	}
	return max((height+g.Gap)/(g.CellHeight+g.Gap), 0)
}

// Rows returns the number of rows needed for count cells in the given columns.
func (g Grid) Rows(count, columns int) int {
	if count <= 0 || columns <= 0 {
		return 0
	}
	return (count + columns - 1) / columns
}

// Cell returns the box of the cell at index, with startRow scrolled off the
// top. ok is false when the cell is outside the area.
func (g Grid) Cell(area Box, index, columns, startRow int) (cell Box, ok bool) {
	if index < 0 || columns <= 0 {
		return Box{}, false
	}
	row := index/columns - startRow
	col := index % columns
	if row < 0 {
		return Box{}, false
	}
	x := area.R.Min.X + col*(g.CellWidth+g.Gap)
	y := area.R.Min.Y + row*(g.CellHeight+g.Gap)
	r := Rect(x, y, g.CellWidth, g.CellHeight)
	if r.Max.X > area.R.Max.X || r.Max.Y > area.R.Max.Y {
		return Box{}, false
	}
	return NewBox(r), true
}
