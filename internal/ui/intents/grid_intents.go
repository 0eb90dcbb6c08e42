package intents

// GridNavigate moves the grid cursor by whole cells.
type GridNavigate struct {
	DeltaX int
	DeltaY int
}

func (GridNavigate) isIntent() {}

// GridTap acts on the slot under the cursor as if it was clicked.
type GridTap struct{}

func (GridTap) isIntent() {}

// GridDelete removes the photo under the cursor.
type GridDelete struct{}

func (GridDelete) isIntent() {}

// GridAdd asks the owner for a new photo, when there is room for one.
type GridAdd struct{}

func (GridAdd) isIntent() {}

type GridSearchStart struct{}

func (GridSearchStart) isIntent() {}

// GridSearchEnd closes quick search. Cancelled restores the cursor.
type GridSearchEnd struct {
	Cancelled bool
}

func (GridSearchEnd) isIntent() {}

// GridSearchCycle moves to the next (positive Delta) or previous quick search match.
type GridSearchCycle struct {
	Delta int
}

func (GridSearchCycle) isIntent() {}
