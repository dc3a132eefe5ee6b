package tuples

import "math"

// Note that none of these check W. Adding two points gives a tuple with W = 2,
// which is meaningless as geometry, but it's up to the caller to avoid that.

func (t Tuple) Add(b Tuple) Tuple {
	return Tuple{t.X + b.X, t.Y + b.Y, t.Z + b.Z, t.W + b.W}
}

// Subtracting two points gives the vector from b to t.
func (t Tuple) Sub(b Tuple) Tuple {
	return Tuple{t.X - b.X, t.Y - b.Y, t.Z - b.Z, t.W - b.W}
}

func (t Tuple) Neg() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

func (t Tuple) Mul(s float64) Tuple {
	return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s}
}

// Dividing by zero follows IEEE 754, so the fields become ±Inf or NaN. Use
// TryDiv to get an error instead.
func (t Tuple) Div(s float64) Tuple {
	return Tuple{t.X / s, t.Y / s, t.Z / s, t.W / s}
}

// Euclidean length over all four fields. For a vector W is zero, so this is
// the usual 3D length.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Scale to unit magnitude. A zero tuple normalizes to all NaN fields; use
// TryNormalize to get an error instead.
func (t Tuple) Normalize() Tuple {
	mag := t.Magnitude()
	return Tuple{t.X / mag, t.Y / mag, t.Z / mag, t.W / mag}
}

func (t Tuple) Dot(b Tuple) float64 {
	return t.X*b.X + t.Y*b.Y + t.Z*b.Z + t.W*b.W
}

// The cross product only looks at X, Y and Z, and always returns a vector,
// whatever the W of the operands. The order matters: a.Cross(b) is
// b.Cross(a).Neg().
func (t Tuple) Cross(b Tuple) Tuple {
	return Vector(
		t.Y*b.Z-t.Z*b.Y,
		t.Z*b.X-t.X*b.Z,
		t.X*b.Y-t.Y*b.X,
	)
}
