package component

// Transform places an entity in the world. X and Y are the sprite centre with
// Y growing upward; Z only orders drawing.
type Transform struct {
	X, Y, Z        float64
	ScaleX, ScaleY float64
	Rotation       float64
}

var TransformComponent = NewComponent[Transform]()

// Translate moves the transform by (dx, dy) world units.
func (t *Transform) Translate(dx, dy float64) {
	t.X += dx
	t.Y += dy
}
