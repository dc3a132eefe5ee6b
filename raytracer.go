// Geometric primitives for a ray tracer.
//
// The foundation is Tuple, a homogeneous coordinate (x, y, z, w) that stands
// for either a point (w = 1) or a vector (w = 0). Tuples are plain values:
// every operation returns a new tuple, and none of them fail. Degenerate input
// (dividing by zero, normalizing a zero vector) produces IEEE 754 infinities
// and NaNs rather than errors. See the tuples package for the Try variants if
// you'd rather get an error.
package raytracer

import "github.com/osuushi/raytracer/tuples"

type Tuple = tuples.Tuple

// A location in space, with w = 1.
func Point(x, y, z float64) Tuple {
	return tuples.Point(x, y, z)
}

// A direction or displacement, with w = 0.
func Vector(x, y, z float64) Tuple {
	return tuples.Vector(x, y, z)
}

// A generic 4-tuple. Prefer Point and Vector unless you really need some other
// w.
func NewTuple(x, y, z, w float64) Tuple {
	return tuples.New(x, y, z, w)
}
