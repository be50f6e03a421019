package math

// Affine is a 2D affine transform stored as a 2x3 matrix.
// Layout: [A C E]
//
//	[B D F]
//
// A point p maps to (A*x + C*y + E, B*x + D*y + F).
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Translate returns a translation by (x, y).
func Translate(x, y float64) Affine {
	return Affine{A: 1, D: 1, E: x, F: y}
}

// Scale returns a scale about the origin.
func Scale(x, y float64) Affine {
	return Affine{A: x, D: y}
}

// Mul returns m * other, the transform that applies other first and then m.
func (m Affine) Mul(other Affine) Affine {
	return Affine{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

// Apply transforms a point.
func (m Affine) Apply(p Vec2) Vec2 {
	return Vec2{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// IsIdentity reports whether m leaves every point unchanged.
func (m Affine) IsIdentity() bool {
	return m == Identity()
}
