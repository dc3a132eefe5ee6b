package tuples

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Tuples print and parse in the same notation the scenarios use:
//
//	point(1, -2, 3)
//	vector(0.5, 0, 1)
//	tuple(1, 2, 3, 4)
//
// Floats are written with the shortest representation that parses back to the
// same value, so String and Parse round-trip exactly.

func (t Tuple) String() string {
	switch {
	case t.IsPoint():
		return fmt.Sprintf("point(%s, %s, %s)", formatFloat(t.X), formatFloat(t.Y), formatFloat(t.Z))
	case t.IsVector():
		return fmt.Sprintf("vector(%s, %s, %s)", formatFloat(t.X), formatFloat(t.Y), formatFloat(t.Z))
	default:
		return fmt.Sprintf("tuple(%s, %s, %s, %s)", formatFloat(t.X), formatFloat(t.Y), formatFloat(t.Z), formatFloat(t.W))
	}
}

func Parse(s string) (Tuple, error) {
	literal := strings.TrimSpace(s)
	open := strings.IndexByte(literal, '(')
	if open < 0 || !strings.HasSuffix(literal, ")") {
		return Tuple{}, errors.Errorf("invalid tuple literal %q", s)
	}

	name := strings.TrimSpace(literal[:open])
	var arity int
	switch name {
	case "point", "vector":
		arity = 3
	case "tuple":
		arity = 4
	default:
		return Tuple{}, errors.Errorf("unknown tuple constructor %q in %q", name, s)
	}

	args := strings.Split(literal[open+1:len(literal)-1], ",")
	if len(args) != arity {
		return Tuple{}, errors.Errorf("%s takes %d arguments, got %d in %q", name, arity, len(args), s)
	}
	values := make([]float64, arity)
	for i, arg := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return Tuple{}, errors.Wrapf(err, "invalid component %d in %q", i, s)
		}
		values[i] = v
	}

	switch name {
	case "point":
		return Point(values[0], values[1], values[2]), nil
	case "vector":
		return Vector(values[0], values[1], values[2]), nil
	default:
		return New(values[0], values[1], values[2], values[3]), nil
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
