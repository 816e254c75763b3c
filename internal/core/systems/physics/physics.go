// Package physics holds the value types and pure geometry shared by the
// collision system: vectors, affine transforms and toroidal wrap math.
package physics

// Distance2V computes Euclidean distance between two points.
func Distance2V(a, b Vec2) float64 { return b.Sub(a).Length() }
