package tuples

import "math"

const Tolerance = 1e-5

// Computed values rarely come out bit-for-bit equal to the literal you'd
// write by hand (normalize(vector(1, 2, 3)) is the classic example), so
// comparisons of computed results should go through this rather than ==.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Field-wise Equal. Plain == on two tuples is still available when exact
// comparison is what you want.
func (t Tuple) ApproxEqual(b Tuple) bool {
	return Equal(t.X, b.X) &&
		Equal(t.Y, b.Y) &&
		Equal(t.Z, b.Z) &&
		Equal(t.W, b.W)
}

// Sum of any number of tuples. The sum of nothing is the zero vector.
func Sum(tuples ...Tuple) Tuple {
	var result Tuple
	for _, t := range tuples {
		result = result.Add(t)
	}
	return result
}
