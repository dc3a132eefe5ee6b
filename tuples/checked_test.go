package tuples

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryNormalize(t *testing.T) {
	n, err := Vector(0, 3, 4).TryNormalize()
	require.NoError(t, err)
	assert.Equal(t, Vector(0, 0.6, 0.8), n)

	_, err = Vector(0, 0, 0).TryNormalize()
	assert.True(t, errors.Is(err, ErrZeroMagnitude))
	assert.Equal(t, ErrZeroMagnitude, errors.Cause(err))
	assert.EqualError(t, err, "cannot normalize vector(0, 0, 0): tuple has zero magnitude")
}

func TestTryDiv(t *testing.T) {
	q, err := New(1, -2, 3, -4).TryDiv(2)
	require.NoError(t, err)
	assert.Equal(t, New(0.5, -1, 1.5, -2), q)

	_, err = Point(1, 2, 3).TryDiv(0)
	assert.True(t, errors.Is(err, ErrDivideByZero))
	assert.EqualError(t, err, "cannot divide point(1, 2, 3): division by zero")
}
