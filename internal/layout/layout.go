// Package layout computes responsive geometry for the game window: card
// and grid placement, button rects and font sizes, all derived from the
// current window dimensions. Everything here is pure arithmetic so the
// frontends can recompute on every resize event.
package layout

const (
	// Margin surrounds the grid on all sides.
	Margin = 40
	// TopReserved keeps space above the grid for the score line and
	// reset button.
	TopReserved = 100
	// Spacing separates adjacent cards.
	Spacing = 16

	MinCardSize = 40
	MaxCardSize = 120

	// BaseWindowWidth anchors font scaling.
	BaseWindowWidth = 800

	// MinWindowWidth and MinWindowHeight bound the supported window
	// sizes; below these the grid may overflow.
	MinWindowWidth  = 480
	MinWindowHeight = 480

	buttonWidthRatio  = 0.20
	buttonHeightRatio = 0.06
	buttonYRatio      = 0.05
)

// Layout holds the derived geometry for one window size and grid size.
type Layout struct {
	WindowW, WindowH int
	GridSize         int

	CardSize     int
	GridX, GridY int
	GridW, GridH int

	ButtonW, ButtonH, ButtonY int

	FontTitle    int
	FontSubtitle int
	FontButton   int
	FontScore    int
	FontMessage  int
}

// Compute derives the layout for the given window and grid size.
func Compute(windowW, windowH, gridSize int) Layout {
	l := Layout{WindowW: windowW, WindowH: windowH, GridSize: gridSize}

	availW := windowW - 2*Margin
	availH := windowH - 2*Margin - TopReserved

	fitW := (availW - (gridSize-1)*Spacing) / gridSize
	fitH := (availH - (gridSize-1)*Spacing) / gridSize
	l.CardSize = clamp(min(fitW, fitH), MinCardSize, MaxCardSize)

	l.GridW = gridSize*l.CardSize + (gridSize-1)*Spacing
	l.GridH = l.GridW
	l.GridX = (windowW - l.GridW) / 2
	l.GridY = (windowH - l.GridH) / 2

	l.ButtonW = clamp(int(float64(windowW)*buttonWidthRatio), 120, windowW)
	l.ButtonH = clamp(int(float64(windowH)*buttonHeightRatio), 32, windowH)
	l.ButtonY = int(float64(windowH) * buttonYRatio)

	scale := float64(windowW) / BaseWindowWidth
	l.FontTitle = clamp(int(48*scale), 32, 64)
	l.FontSubtitle = clamp(int(20*scale), 14, 32)
	l.FontButton = clamp(int(24*scale), 14, 36)
	l.FontScore = max(18, windowW/40)
	l.FontMessage = max(28, windowW/18)

	return l
}

// CardRect returns the top-left corner and size of a cell's card.
func (l Layout) CardRect(row, col int) (x, y, size int) {
	x = l.GridX + col*(l.CardSize+Spacing)
	y = l.GridY + row*(l.CardSize+Spacing)
	return x, y, l.CardSize
}

// CellAt maps a window point to a grid cell. ok is false on the gaps
// between cards and anywhere outside the grid.
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	if x < l.GridX || y < l.GridY {
		return 0, 0, false
	}
	stride := l.CardSize + Spacing
	col = (x - l.GridX) / stride
	row = (y - l.GridY) / stride
	if row >= l.GridSize || col >= l.GridSize {
		return 0, 0, false
	}
	if (x-l.GridX)%stride >= l.CardSize || (y-l.GridY)%stride >= l.CardSize {
		return 0, 0, false
	}
	return row, col, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
