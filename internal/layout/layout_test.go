package layout

import "testing"

func TestCompute_GridFits(t *testing.T) {
	sizes := []struct{ w, h int }{
		{480, 480},
		{640, 480},
		{800, 800},
		{1280, 720},
		{1920, 1080},
		{2560, 1440},
	}
	for _, gridSize := range []int{4, 6} {
		for _, s := range sizes {
			l := Compute(s.w, s.h, gridSize)

			if l.CardSize <= 0 {
				t.Errorf("%dx%d grid %d: card size %d", s.w, s.h, gridSize, l.CardSize)
			}
			if l.CardSize < MinCardSize || l.CardSize > MaxCardSize {
				t.Errorf("%dx%d grid %d: card size %d outside [%d,%d]",
					s.w, s.h, gridSize, l.CardSize, MinCardSize, MaxCardSize)
			}
			if l.GridW > s.w-2*Margin+Spacing {
				t.Errorf("%dx%d grid %d: grid width %d overflows window minus margin",
					s.w, s.h, gridSize, l.GridW)
			}
			if l.GridX < 0 || l.GridY < 0 {
				t.Errorf("%dx%d grid %d: negative grid origin (%d,%d)",
					s.w, s.h, gridSize, l.GridX, l.GridY)
			}
		}
	}
}

func TestCompute_GridCentered(t *testing.T) {
	l := Compute(800, 800, 4)
	if l.GridX != (800-l.GridW)/2 {
		t.Errorf("grid not centered horizontally: x=%d w=%d", l.GridX, l.GridW)
	}
	if l.GridY != (800-l.GridH)/2 {
		t.Errorf("grid not centered vertically: y=%d h=%d", l.GridY, l.GridH)
	}
}

func TestCompute_ButtonInsideWindow(t *testing.T) {
	for _, s := range []struct{ w, h int }{{480, 480}, {800, 800}, {1920, 1080}} {
		l := Compute(s.w, s.h, 6)
		if l.ButtonW <= 0 || l.ButtonH <= 0 {
			t.Errorf("%dx%d: degenerate button %dx%d", s.w, s.h, l.ButtonW, l.ButtonH)
		}
		if l.ButtonW > s.w || l.ButtonY+l.ButtonH > s.h {
			t.Errorf("%dx%d: button outside window", s.w, s.h)
		}
	}
}

func TestCompute_FontMinima(t *testing.T) {
	l := Compute(MinWindowWidth, MinWindowHeight, 4)
	if l.FontTitle < 32 || l.FontSubtitle < 14 || l.FontButton < 14 {
		t.Errorf("fonts below readable minima: %d %d %d", l.FontTitle, l.FontSubtitle, l.FontButton)
	}
	if l.FontScore < 18 || l.FontMessage < 28 {
		t.Errorf("score/message fonts below minima: %d %d", l.FontScore, l.FontMessage)
	}
}

func TestCardRect(t *testing.T) {
	l := Compute(800, 800, 4)

	x0, y0, size := l.CardRect(0, 0)
	if x0 != l.GridX || y0 != l.GridY || size != l.CardSize {
		t.Errorf("cell (0,0): got (%d,%d,%d)", x0, y0, size)
	}

	x, y, _ := l.CardRect(1, 2)
	wantX := l.GridX + 2*(l.CardSize+Spacing)
	wantY := l.GridY + 1*(l.CardSize+Spacing)
	if x != wantX || y != wantY {
		t.Errorf("cell (1,2): got (%d,%d), want (%d,%d)", x, y, wantX, wantY)
	}
}

func TestCellAt_RoundTrip(t *testing.T) {
	l := Compute(800, 800, 6)
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			x, y, size := l.CardRect(row, col)
			r, c, ok := l.CellAt(x+size/2, y+size/2)
			if !ok || r != row || c != col {
				t.Errorf("center of (%d,%d) mapped to (%d,%d,%v)", row, col, r, c, ok)
			}
		}
	}
}

func TestCellAt_Misses(t *testing.T) {
	l := Compute(800, 800, 4)

	if _, _, ok := l.CellAt(0, 0); ok {
		t.Error("window corner should miss the grid")
	}
	if _, _, ok := l.CellAt(l.GridX-1, l.GridY); ok {
		t.Error("left of grid should miss")
	}
	// Point in the gap between the first two columns.
	x, y, size := l.CardRect(0, 0)
	if _, _, ok := l.CellAt(x+size+Spacing/2, y); ok {
		t.Error("gap between cards should miss")
	}
}
