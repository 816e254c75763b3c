package collision

import (
	"github.com/zeusync/torus/internal/core/systems/physics"
)

// CheckSeparability runs the separating axis test using the edge normals of
// p1 only. If some axis separates the two vertex sets it reports
// separable=true. Otherwise mtv is the shortest overlap vector found across
// p1's axes. Call it twice with the arguments swapped for a full test.
func CheckSeparability(p1, p2 []physics.Vec2) (separable bool, mtv physics.Vec2, err error) {
	if len(p1) < 3 || len(p2) < 3 {
		return false, physics.Vec2{}, &GeometryError{Kind: ErrInvalidGeometry, Edge: -1}
	}
	axes, err := edgeAxes(p1)
	if err != nil {
		return false, physics.Vec2{}, err
	}
	separable, mtv = separate(axes, p1, p2)
	return separable, mtv, nil
}

// edgeAxes returns the unit normal of every edge, closing edge included.
func edgeAxes(vertices []physics.Vec2) ([]physics.Vec2, error) {
	n := len(vertices)
	axes := make([]physics.Vec2, n)
	for i := 0; i < n; i++ {
		edge := vertices[(i+1)%n].Sub(vertices[i])
		axis, ok := edge.Perpendicular().Normalize()
		if !ok {
			return nil, &GeometryError{Kind: ErrDegenerateAxis, Edge: i}
		}
		axes[i] = axis
	}
	return axes, nil
}

func separate(axes, p1, p2 []physics.Vec2) (bool, physics.Vec2) {
	var (
		best    physics.Vec2
		bestLen float64
	)
	for i, axis := range axes {
		min1, max1 := project(axis, p1)
		min2, max2 := project(axis, p2)
		if min1 > max2 || min2 > max1 {
			return true, physics.Vec2{}
		}

		depth := max1 - min2
		if d := max2 - min1; d < depth {
			depth = d
		}
		candidate := axis.Scale(depth)
		if l := candidate.LengthSquared(); i == 0 || l < bestLen {
			best, bestLen = candidate, l
		}
	}
	return false, best
}

func project(axis physics.Vec2, vertices []physics.Vec2) (lo, hi float64) {
	lo = axis.Dot(vertices[0])
	hi = lo
	for _, v := range vertices[1:] {
		p := axis.Dot(v)
		if p < lo {
			lo = p
		} else if p > hi {
			hi = p
		}
	}
	return lo, hi
}
