package physics

// Transform2D places local-space points in the world: scale, then rotate,
// then translate.
type Transform2D struct {
	Position Vec2
	Rotation float64 // radians, counter-clockwise
	Scale    Vec2
}

// Identity returns a transform that leaves points unchanged.
func Identity() Transform2D {
	return Transform2D{Scale: Vec2{1, 1}}
}

// NewTransform returns a unit-scale, unrotated transform at pos.
func NewTransform(pos Vec2) Transform2D {
	return Transform2D{Position: pos, Scale: Vec2{1, 1}}
}

// WithPosition returns a copy of t moved to pos.
func (t Transform2D) WithPosition(pos Vec2) Transform2D {
	t.Position = pos
	return t
}

// Apply maps a local point to world space.
func (t Transform2D) Apply(local Vec2) Vec2 {
	return local.Mul(t.Scale).Rotate(t.Rotation).Add(t.Position)
}

// ApplyAll maps every point into a freshly allocated slice.
func (t Transform2D) ApplyAll(local []Vec2) []Vec2 {
	return t.ApplyInto(make([]Vec2, len(local)), local)
}

// ApplyInto maps local into dst, which must be at least as long, and returns
// dst[:len(local)].
func (t Transform2D) ApplyInto(dst, local []Vec2) []Vec2 {
	dst = dst[:len(local)]
	for i, p := range local {
		dst[i] = t.Apply(p)
	}
	return dst
}
