package game

// ClampPlayer confines pos to the lower half of a width x height viewport,
// keeping margin units clear of every edge.
func ClampPlayer(pos Vec2, width, height, margin float64) Vec2 {
	xMin := margin
	xMax := width - margin
	yMin := margin
	yMax := height/2 - margin

	if pos.X < xMin {
		pos.X = xMin
	} else if pos.X > xMax {
		pos.X = xMax
	}

	if pos.Y < yMin {
		pos.Y = yMin
	} else if pos.Y > yMax {
		pos.Y = yMax
	}

	return pos
}
