package tuples

import "github.com/pkg/errors"

// The plain operations let IEEE 754 take its course. These are for callers
// that would rather find out about a degenerate input right away than chase
// a NaN through the rest of the pipeline.

var (
	ErrZeroMagnitude = errors.New("tuple has zero magnitude")
	ErrDivideByZero  = errors.New("division by zero")
)

func (t Tuple) TryNormalize() (Tuple, error) {
	if t.Magnitude() == 0 {
		return Tuple{}, errors.Wrapf(ErrZeroMagnitude, "cannot normalize %s", t)
	}
	return t.Normalize(), nil
}

func (t Tuple) TryDiv(s float64) (Tuple, error) {
	if s == 0 {
		return Tuple{}, errors.Wrapf(ErrDivideByZero, "cannot divide %s", t)
	}
	return t.Div(s), nil
}
