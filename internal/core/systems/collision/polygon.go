package collision

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/torus/internal/core/systems/physics"
)

// Polygon is an immutable, implicitly closed list of local-space vertices.
// The last vertex connects back to the first.
type Polygon struct {
	vertices    []physics.Vec2
	fingerprint uint64
}

// NewPolygon copies points into a Polygon. Fewer than three points is
// rejected with ErrInvalidGeometry.
func NewPolygon(points []physics.Vec2) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, &GeometryError{Kind: ErrInvalidGeometry, Edge: -1}
	}
	vertices := make([]physics.Vec2, len(points))
	copy(vertices, points)
	return Polygon{vertices: vertices, fingerprint: fingerprint(vertices)}, nil
}

func (p Polygon) Len() int { return len(p.vertices) }

// Vertices returns a copy of the local-space vertices.
func (p Polygon) Vertices() []physics.Vec2 {
	out := make([]physics.Vec2, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Fingerprint hashes the exact vertex bits; equal vertex lists hash equal.
func (p Polygon) Fingerprint() uint64 { return p.fingerprint }

// Equal reports whether both polygons have identical vertices in the same order.
func (p Polygon) Equal(o Polygon) bool {
	if p.fingerprint != o.fingerprint || len(p.vertices) != len(o.vertices) {
		return false
	}
	for i := range p.vertices {
		if p.vertices[i] != o.vertices[i] {
			return false
		}
	}
	return true
}

// Transformed maps every vertex through t into a new slice.
func (p Polygon) Transformed(t physics.Transform2D) []physics.Vec2 {
	return t.ApplyAll(p.vertices)
}

func (p Polygon) transformInto(dst []physics.Vec2, t physics.Transform2D) []physics.Vec2 {
	return t.ApplyInto(dst, p.vertices)
}

func fingerprint(vertices []physics.Vec2) uint64 {
	h := xxhash.New()
	var buf [16]byte
	for _, v := range vertices {
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(v.X))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(v.Y))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}
