package terminal

// ScreenViewport reports the terminal size in world units.
type ScreenViewport struct {
	Screen   interface{ Size() (int, int) }
	Renderer *Renderer
}

func (v ScreenViewport) Size() (float64, float64, bool) {
	if v.Screen == nil {
		return 0, 0, false
	}
	cols, rows := v.Screen.Size()
	if cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	return float64(cols) * v.Renderer.CellWidth, float64(rows) * v.Renderer.CellHeight, true
}
