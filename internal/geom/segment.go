package geom

import "math"

// Segment is a 2D line segment between two endpoints. Walls and cast rays are
// both represented as segments.
type Segment struct {
	Start, End Vec2
}

// Orientation classifies the turn made by the ordered point triple p, q, r.
type Orientation int

const (
	Clockwise Orientation = iota
	CounterClockwise
)

// nearParallelCross is the cross-product magnitude below which two segment
// directions are treated as parallel when solving for an intersection point.
const nearParallelCross = 0.001

// Orient returns the orientation of the triple p, q, r based on the sign of
// the 2D cross product (q-p) x (r-q). A degenerate (collinear) triple counts
// as clockwise; a ray exactly grazing a wall endpoint may therefore be
// classified either way depending on which side the tie lands on.
func Orient(p, q, r Vec2) Orientation {
	value := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	if value >= 0 {
		return Clockwise
	}
	return CounterClockwise
}

// Intersects reports whether the two segments cross, using the standard
// orientation straddle test. Collinear-overlap configurations fall through
// the general test and may give either answer; wall data never produces
// exactly collinear rays in practice.
func Intersects(a, b Segment) bool {
	c1 := Orient(a.Start, a.End, b.Start) != Orient(a.Start, a.End, b.End)
	c2 := Orient(b.Start, b.End, a.Start) != Orient(b.Start, b.End, a.End)
	return c1 && c2
}

// IntersectionPoint returns the crossing point of the two segments, or
// ok=false when they do not cross or are near-parallel. Both segments are
// normalized to unit directions before solving the 2x2 linear system with
// cross products, which keeps the parallel cutoff scale-independent.
func IntersectionPoint(a, b Segment) (Vec2, bool) {
	if !Intersects(a, b) {
		return Vec2{}, false
	}

	p := a.Start
	r := a.End.Sub(a.Start).Normalized()
	q := b.Start
	s := b.End.Sub(b.Start).Normalized()

	denom := r.Cross(s)
	if math.Abs(denom) <= nearParallelCross {
		return Vec2{}, false
	}

	t := q.Sub(p).Cross(s.Scale(1 / denom))
	return p.Add(r.Scale(t)), true
}
