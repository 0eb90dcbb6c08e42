package layout

import (
	uv "github.com/charmbracelet/ultraviolet"
)

type Rectangle = uv.Rectangle

type Position = uv.Position

// Rect creates a rectangle from its origin and size.
func Rect(x, y, width, height int) Rectangle {
	return Rectangle{
		Min: Position{X: x, Y: y},
		Max: Position{X: x + width, Y: y + height},
	}
}

// Box is an area that can be cut into smaller areas.
type Box struct {
	R Rectangle
}

func NewBox(r Rectangle) Box {
	return Box{R: r}
}

// Spec describes how much of the available space a part of a split receives.
type Spec struct {
	fixed  int
	weight float64
}

// Fixed takes exactly size cells (or whatever is left).
func Fixed(size int) Spec {
	return Spec{fixed: max(size, 0)}
}

// Fill shares the space left after fixed parts, proportionally to weight.
func Fill(weight float64) Spec {
	return Spec{weight: weight}
}

// V splits the box top to bottom.
func (b Box) V(specs ...Spec) []Box {
	sizes := distribute(b.R.Dy(), specs)
	boxes := make([]Box, len(sizes))
	y := b.R.Min.Y
	for i, size := range sizes {
		boxes[i] = NewBox(Rect(b.R.Min.X, y, b.R.Dx(), size))
		y += size
	}
	return boxes
}

// H splits the box left to right.
func (b Box) H(specs ...Spec) []Box {
	sizes := distribute(b.R.Dx(), specs)
	boxes := make([]Box, len(sizes))
	x := b.R.Min.X
	for i, size := range sizes {
		boxes[i] = NewBox(Rect(x, b.R.Min.Y, size, b.R.Dy()))
		x += size
	}
	return boxes
}

func distribute(total int, specs []Spec) []int {
	sizes := make([]int, len(specs))
	remaining := max(total, 0)
	var weights float64
	for i, spec := range specs {
		if spec.weight > 0 {
			weights += spec.weight
			continue
		}
		sizes[i] = min(spec.fixed, remaining)
		remaining -= sizes[i]
	}
	if weights == 0 {
		return sizes
	}
	left := remaining
	last := -1
	for i, spec := range specs {
		if spec.weight <= 0 {
			continue
		}
		sizes[i] = int(float64(remaining) * spec.weight / weights)
		left -= sizes[i]
		last = i
	}
	// rounding leftovers go to the last fill
	sizes[last] += left
	return sizes
}

// CutBottom splits off the last n rows.
func (b Box) CutBottom(n int) (rest Box, bottom Box) {
	n = min(max(n, 0), b.R.Dy())
	rest = NewBox(Rect(b.R.Min.X, b.R.Min.Y, b.R.Dx(), b.R.Dy()-n))
	bottom = NewBox(Rect(b.R.Min.X, b.R.Max.Y-n, b.R.Dx(), n))
	return rest, bottom
}

// Inset shrinks the box by n cells on every side.
func (b Box) Inset(n int) Box {
	w := max(b.R.Dx()-2*n, 0)
	h := max(b.R.Dy()-2*n, 0)
	return NewBox(Rect(b.R.Min.X+n, b.R.Min.Y+n, w, h))
}
