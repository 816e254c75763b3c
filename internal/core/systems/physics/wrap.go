package physics

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidBounds = errors.New("invalid world bounds")

// Bounds is the size of a toroidal world. Both axes wrap: leaving past
// Width re-enters at 0 and vice versa.
type Bounds struct {
	Width  float64
	Height float64
}

func (b Bounds) Validate() error {
	if !(b.Width > 0) || math.IsInf(b.Width, 0) {
		return fmt.Errorf("%w: width %v", ErrInvalidBounds, b.Width)
	}
	if !(b.Height > 0) || math.IsInf(b.Height, 0) {
		return fmt.Errorf("%w: height %v", ErrInvalidBounds, b.Height)
	}
	return nil
}

// ShortestDisplacement is ShortestWrappedDisplacement within b.
func (b Bounds) ShortestDisplacement(from, to Vec2) Vec2 {
	return ShortestWrappedDisplacement(from, to, b.Width, b.Height)
}

// Wrap is WrapIntoDomain within b.
func (b Bounds) Wrap(p Vec2) Vec2 { return WrapIntoDomain(b.Width, b.Height, p) }

// Contains reports whether p lies in [0,Width) x [0,Height).
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// wrapOffsets lists the nine toroidal images, the untranslated one first so
// that it wins ties.
var wrapOffsets = [9][2]float64{
	{0, 0}, {0, -1}, {0, 1},
	{-1, 0}, {-1, -1}, {-1, 1},
	{1, 0}, {1, -1}, {1, 1},
}

// ShortestWrappedDisplacement returns the shortest vector from `from` to any
// of the nine images of `to` in a width x height torus.
func ShortestWrappedDisplacement(from, to Vec2, width, height float64) Vec2 {
	best := to.Sub(from)
	bestLen := best.LengthSquared()
	for _, o := range wrapOffsets[1:] {
		d := Vec2{to.X + o[0]*width, to.Y + o[1]*height}.Sub(from)
		if l := d.LengthSquared(); l < bestLen {
			best, bestLen = d, l
		}
	}
	return best
}

// WrapIntoDomain reduces p into [0,width) x [0,height).
func WrapIntoDomain(width, height float64, p Vec2) Vec2 {
	return Vec2{mod(p.X, width), mod(p.Y, height)}
}

func mod(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	// -tiny + m rounds to m
	if r >= m {
		r = 0
	}
	return r
}
