package collision

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/zeusync/torus/internal/core/observability/log"
	"github.com/zeusync/torus/internal/core/systems/physics"
	"github.com/zeusync/torus/pkg/generic"
)

// Scratch space for world-space vertices during a query.
var vertexPool = generic.NewSlicePool[physics.Vec2](16)

// Contact is the outcome of a collision query. Resolution is only set when
// Overlapping is true and points in the direction that pushes the querying
// shape away from the other one.
type Contact struct {
	Overlapping bool
	Resolution  physics.Vec2
}

// Shape is a convex polygon placed in a World. Geometry is normally set once;
// the transform is replaced every simulation step by the owning entity.
type Shape struct {
	id    uuid.UUID
	world *World

	mu         sync.RWMutex
	polygon    Polygon
	transform  physics.Transform2D
	wrapAround bool
}

type ShapeOption func(*Shape)

// WithWrapAround sets whether the shape lives on the torus. Shapes wrap by default.
func WithWrapAround(wrap bool) ShapeOption {
	return func(s *Shape) { s.wrapAround = wrap }
}

func WithTransform(t physics.Transform2D) ShapeOption {
	return func(s *Shape) { s.transform = t }
}

// NewShape builds a shape from local-space points.
func (w *World) NewShape(points []physics.Vec2, opts ...ShapeOption) (*Shape, error) {
	polygon, err := NewPolygon(points)
	if err != nil {
		w.logger.Warn("Shape geometry rejected", log.Int("points", len(points)), log.Error(err))
		return nil, err
	}
	return w.newShape(polygon, opts...), nil
}

// NewShapeFromCatalog builds a shape from a polygon registered under name.
func (w *World) NewShapeFromCatalog(name string, opts ...ShapeOption) (*Shape, error) {
	polygon, err := w.catalog.Polygon(name)
	if err != nil {
		return nil, err
	}
	return w.newShape(polygon, opts...), nil
}

func (w *World) newShape(polygon Polygon, opts ...ShapeOption) *Shape {
	s := &Shape{
		id:         uuid.New(),
		world:      w,
		polygon:    polygon,
		transform:  physics.Identity(),
		wrapAround: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Shape) ID() uuid.UUID { return s.id }

// SetGeometry replaces the local-space polygon. On error the previous
// geometry is kept.
func (s *Shape) SetGeometry(points []physics.Vec2) error {
	polygon, err := NewPolygon(points)
	if err != nil {
		var gerr *GeometryError
		if errors.As(err, &gerr) {
			gerr.Shape = s.id
		}
		s.world.logger.Warn("Shape geometry rejected",
			log.Stringer("shape", s.id),
			log.Int("points", len(points)),
			log.Error(err),
		)
		return err
	}

	s.mu.Lock()
	s.polygon = polygon
	s.mu.Unlock()
	return nil
}

func (s *Shape) SetTransform(t physics.Transform2D) {
	s.mu.Lock()
	s.transform = t
	s.mu.Unlock()
}

func (s *Shape) Transform() physics.Transform2D {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transform
}

func (s *Shape) Polygon() Polygon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.polygon
}

func (s *Shape) WrapAround() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wrapAround
}

func (s *Shape) SetWrapAround(wrap bool) {
	s.mu.Lock()
	s.wrapAround = wrap
	s.mu.Unlock()
}

// WorldVertices returns the polygon mapped through the current transform.
// The slice is freshly allocated on every call.
func (s *Shape) WorldVertices() []physics.Vec2 {
	snap := s.snapshot()
	return snap.polygon.Transformed(snap.transform)
}

type shapeState struct {
	polygon    Polygon
	transform  physics.Transform2D
	wrapAround bool
}

func (s *Shape) snapshot() shapeState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return shapeState{polygon: s.polygon, transform: s.transform, wrapAround: s.wrapAround}
}

// CheckCollision tests s against other. Neither shape is modified. A
// degenerate edge in either polygon is reported as an error wrapping
// ErrDegenerateAxis, never as a miss.
func (s *Shape) CheckCollision(other *Shape) (Contact, error) {
	self, them := s.snapshot(), other.snapshot()

	selfPos, otherPos, wrapped := s.world.frame(
		self.transform.Position,
		them.transform.Position,
		self.wrapAround || them.wrapAround,
	)

	buf1, buf2 := vertexPool.Get(self.polygon.Len()), vertexPool.Get(them.polygon.Len())
	defer vertexPool.Put(buf1)
	defer vertexPool.Put(buf2)

	v1 := self.polygon.transformInto(*buf1, self.transform.WithPosition(selfPos))
	v2 := them.polygon.transformInto(*buf2, them.transform.WithPosition(otherPos))

	axes1, err := edgeAxes(v1)
	if err != nil {
		return Contact{}, s.degenerate(s.id, err)
	}
	axes2, err := edgeAxes(v2)
	if err != nil {
		return Contact{}, s.degenerate(other.id, err)
	}

	separable, mtv1 := separate(axes1, v1, v2)
	if separable {
		return Contact{}, nil
	}
	separable, mtv2 := separate(axes2, v2, v1)
	if separable {
		return Contact{}, nil
	}

	mtv := mtv2
	if mtv1.LengthSquared() < mtv2.LengthSquared() {
		mtv = mtv1
	}
	if mtv.LengthSquared() > 0 && mtv.Dot(selfPos.Sub(otherPos)) < 0 {
		mtv = mtv.Neg()
	}

	s.world.logger.Debug("Shapes overlap",
		log.Stringer("shape", s.id),
		log.Stringer("other", other.id),
		log.Bool("wrapped", wrapped),
		log.Stringer("resolution", mtv),
	)
	return Contact{Overlapping: true, Resolution: mtv}, nil
}

func (s *Shape) degenerate(id uuid.UUID, err error) error {
	var gerr *GeometryError
	if errors.As(err, &gerr) {
		gerr.Shape = id
	}
	s.world.logger.Error("Degenerate collision geometry", log.Stringer("shape", id), log.Error(err))
	return err
}
