package layout

import (
	"testing"
)

func TestGrid_FitColumns(t *testing.T) {
	g := Grid{Columns: 4, CellWidth: 10, CellHeight: 5, Gap: 1}

	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"room_for_all", 60, 4},
		{"exact_three", 32, 3},
		{"too_narrow", 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.FitColumns(tt.width); got != tt.want {
				t.Errorf("FitColumns(%d) = %d, want %d", tt.width, got, tt.want)
			}
		})
	}
}

func TestGrid_Rows(t *testing.T) {
	g := Grid{}
	if got := g.Rows(7, 3); got != 3 {
		t.Errorf("Rows(7, 3) = %d, want 3", got)
	}
	if got := g.Rows(0, 3); got != 0 {
		t.Errorf("Rows(0, 3) = %d, want 0", got)
	}
}

func TestGrid_Cell(t *testing.T) {
	g := Grid{Columns: 3, CellWidth: 4, CellHeight: 2, Gap: 1}
	area := NewBox(Rect(1, 1, 14, 5))

	cell, ok := g.Cell(area, 4, 3, 0)
	if !ok {
		t.Fatal("cell 4 should be visible")
	}
	if cell.R != Rect(6, 4, 4, 2) {
		t.Errorf("cell 4 = %v", cell.R)
	}

	if _, ok := g.Cell(area, 6, 3, 0); ok {
		t.Error("cell 6 is below the area and should not be visible")
	}

	cell, ok = g.Cell(area, 6, 3, 1)
	if !ok || cell.R.Min.Y != 4 {
		t.Errorf("cell 6 scrolled = %v, %v", cell.R, ok)
	}
	if _, ok := g.Cell(area, 0, 3, 1); ok {
		t.Error("cell 0 is scrolled off and should not be visible")
	}
}

func TestGrid_VisibleRows(t *testing.T) {
	g := Grid{CellHeight: 4, Gap: 1}
	if got := g.VisibleRows(9); got != 2 {
		t.Errorf("VisibleRows(9) = %d, want 2", got)
	}
	if got := g.VisibleRows(3); got != 0 {
		t.Errorf("VisibleRows(3) = %d, want 0", got)
	}
}
