package tuples

// A homogeneous coordinate. W is 1 for points and 0 for vectors. Other values
// of W have no geometric name, but show up as intermediate results (adding two
// points, scaling a point) and all the arithmetic below stays well defined for
// them.
//
// Tuples are plain values. Every operation returns a new tuple and never
// modifies its receiver, so they can be shared freely between goroutines.
type Tuple struct {
	X float64
	Y float64
	Z float64
	W float64
}

func New(x, y, z, w float64) Tuple {
	return Tuple{x, y, z, w}
}

// A location in space.
func Point(x, y, z float64) Tuple {
	return Tuple{x, y, z, 1}
}

// A direction or displacement with no fixed location.
func Vector(x, y, z float64) Tuple {
	return Tuple{x, y, z, 0}
}

func (t Tuple) IsPoint() bool {
	return t.W == 1
}

func (t Tuple) IsVector() bool {
	return t.W == 0
}
