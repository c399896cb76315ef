package geom

// Mat3 is a column-major 3x3 homogeneous transform for 2D points, indexed as
// m[column][row].
type Mat3 [3][3]float64

// Identity returns the identity transform.
func Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Apply transforms a 2D point by m, treating it as having an implicit third
// coordinate of 1.
func (m Mat3) Apply(p Vec2) Vec2 {
	return Vec2{
		X: m[0][0]*p.X + m[1][0]*p.Y + m[2][0],
		Y: m[0][1]*p.X + m[1][1]*p.Y + m[2][1],
	}
}
