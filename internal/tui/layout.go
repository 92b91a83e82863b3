package tui

// gridLayout tracks where the keypad lands on screen so mouse events can be
// mapped back to buttons. Render fills in the rows above the grid, the cell
// height it settled on and the height of the whole view.
type gridLayout struct {
	windowWidth  int
	windowHeight int
	cellWidth    int
	cellHeight   int
	count        int
	gridTop      int
	viewHeight   int
	badgeX       int
	badgeWidth   int
}

func newGridLayout() gridLayout {
	return gridLayout{cellWidth: 7, cellHeight: framedCellHeight}
}

// Update resizes the cells to the window, clamped to readable bounds.
func (l *gridLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	usable := width - 2*appPaddingX - (gridColumns-1)*cellGap
	cell := usable/gridColumns - 2
	if cell < minCellWidth {
		cell = minCellWidth
	}
	if cell > maxCellWidth {
		cell = maxCellWidth
	}
	l.cellWidth = cell
}

// minWindowWidth is the narrowest terminal that shows every column of the
// keypad at the smallest cell width.
func minWindowWidth() int {
	return gridColumns*(minCellWidth+2) + (gridColumns-1)*cellGap + 2*appPaddingX
}

func (l gridLayout) tooNarrow() bool {
	return l.windowWidth > 0 && l.windowWidth < minWindowWidth()
}

func (l gridLayout) compact() bool {
	return l.cellHeight == compactCellHeight
}

// overflows reports whether a view of the given height is taller than the
// window. An unknown window size never overflows.
func (l gridLayout) overflows(height int) bool {
	return l.windowHeight > 0 && height > l.windowHeight
}

// scrollOffset is how many top rows of the last view the terminal dropped.
// Bubbletea keeps the bottom rows of a view taller than the window.
func (l gridLayout) scrollOffset() int {
	if !l.overflows(l.viewHeight) {
		return 0
	}
	return l.viewHeight - l.windowHeight
}

func (l gridLayout) cellOuterWidth() int {
	return l.cellWidth + 2
}

// width is the grid's rendered width including cell borders.
func (l gridLayout) width() int {
	return gridColumns*l.cellOuterWidth() + (gridColumns-1)*cellGap
}

func (l gridLayout) rows() int {
	return (l.count + gridColumns - 1) / gridColumns
}

// hitButton maps a screen cell to a button index. Gaps between cells,
// columns cut off by the window and positions past the last button miss.
func (l gridLayout) hitButton(x, y int) (int, bool) {
	if l.windowWidth > 0 && x >= l.windowWidth {
		return 0, false
	}
	x -= appPaddingX
	y += l.scrollOffset() - l.gridTop
	if x < 0 || y < 0 || x >= l.width() {
		return 0, false
	}
	stride := l.cellOuterWidth() + cellGap
	if x%stride >= l.cellOuterWidth() {
		return 0, false
	}
	row := y / l.cellHeight
	if row >= l.rows() {
		return 0, false
	}
	idx := row*gridColumns + x/stride
	if idx >= l.count {
		return 0, false
	}
	return idx, true
}

// hitBadge reports whether the point lands on the mode badge in the title row.
func (l gridLayout) hitBadge(x, y int) bool {
	if y+l.scrollOffset() != appPaddingY || l.badgeWidth == 0 {
		return false
	}
	return x >= l.badgeX && x < l.badgeX+l.badgeWidth
}

// move returns the focus index after stepping by (dx, dy) cells. Steps that
// would leave the grid keep the current index.
func (l gridLayout) move(idx, dx, dy int) int {
	col := idx % gridColumns
	switch {
	case dx < 0 && col > 0:
		return idx - 1
	case dx > 0 && col < gridColumns-1 && idx+1 < l.count:
		return idx + 1
	case dy < 0 && idx-gridColumns >= 0:
		return idx - gridColumns
	case dy > 0 && idx+gridColumns < l.count:
		return idx + gridColumns
	default:
		return idx
	}
}
