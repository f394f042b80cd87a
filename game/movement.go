package game

// PlayerDirection converts held keys into a heading. Each held direction adds
// its unit axis; opposing keys cancel. A nonzero sum is normalized so that
// diagonal input is no faster than axis-aligned input.
func PlayerDirection(keys Keys) Vec2 {
	var dir Vec2

	if keys.Has(KeyLeft) || keys.Has(KeyA) {
		dir = dir.Add(Vec2{X: -1})
	}
	if keys.Has(KeyRight) || keys.Has(KeyD) {
		dir = dir.Add(Vec2{X: 1})
	}
	if keys.Has(KeyUp) || keys.Has(KeyW) {
		dir = dir.Add(Vec2{Y: 1})
	}
	if keys.Has(KeyDown) || keys.Has(KeyS) {
		dir = dir.Add(Vec2{Y: -1})
	}

	return dir.Normalize()
}

// AnimationFrame picks the player's sprite frame for the held keys.
func AnimationFrame(keys Keys) int {
	frame := 0
	if keys.Has(KeyLeft) || keys.Has(KeyA) {
		frame = 2
	}
	if keys.Has(KeyRight) || keys.Has(KeyD) {
		frame = 1
	}
	return frame
}

// Integrate advances pos along dir for dt seconds at speed.
func Integrate(pos, dir Vec2, speed, dt float64) Vec2 {
	return pos.Add(dir.Scale(speed * dt))
}

// MovePlayer applies one frame of input to the player.
func MovePlayer(p *Player, keys Keys, dt float64) {
	p.Frame = AnimationFrame(keys)
	p.Position = Integrate(p.Position, PlayerDirection(keys), p.Speed, dt)
}

// MoveEnemy advances an enemy along its fixed heading.
func MoveEnemy(e *Enemy, dt float64) {
	e.Position = Integrate(e.Position, e.Direction, e.Speed, dt)
}
