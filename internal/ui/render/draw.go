package render

import (
	"github.com/idursun/photogrid/internal/ui/layout"
)

// Draw represents a content rendering operation.
// Draws are rendered first, sorted by Z-index (lower values render first).
type Draw struct {
	Rect    layout.Rectangle // The area to draw in
	Content string           // Rendered ANSI string (from lipgloss, etc.)
	Z       int              // Z-index for layering (lower = back, higher = front)
}

// Z-index bands used by the grid.
const (
	ZBase        = 0
	ZTile        = 10
	ZTileContent = 11
	ZTileControl = 20
	ZStatus      = 30
)
