package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/raytracer/tuples"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/alecthomas/kingpin.v2"
)

func TestTupleFlag(t *testing.T) {
	app := kingpin.New("test", "")
	at := Tuple(app.Flag("at", "").Default("point(1, 2, 3)"))

	_, err := app.Parse([]string{})
	require.NoError(t, err)
	assert.Equal(t, tuples.Point(1, 2, 3), *at)

	_, err = app.Parse([]string{"--at=vector(1, 0, -1)"})
	require.NoError(t, err)
	assert.Equal(t, tuples.Vector(1, 0, -1), *at)

	_, err = app.Parse([]string{"--at=vector(1, 0)"})
	assert.Error(t, err)
}

func parseOptions(t *testing.T, args ...string) *options {
	app, opts := newApp()
	_, err := app.Parse(args)
	require.NoError(t, err)
	return opts
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "lob.png")
	svgPath := filepath.Join(dir, "lob.svg")
	opts := parseOptions(t, "--name=lob", "--no-color", "--verbose", "--png="+pngPath, "--svg="+svgPath)

	var out bytes.Buffer
	require.NoError(t, run(opts, &out))
	assert.Contains(t, out.String(), "lob: landed after ")
	assert.Contains(t, out.String(), "    0  at point(0, 1, 0) moving vector(")
	assert.Contains(t, out.String(), "  apex at point(")
	// No escape codes without color
	assert.NotContains(t, out.String(), "\x1b[")

	for _, path := range []string{pngPath, svgPath} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}
}

func TestRunStillFlying(t *testing.T) {
	opts := parseOptions(t, "--name=lob", "--no-color", "--max-ticks=2")
	var out bytes.Buffer
	require.NoError(t, run(opts, &out))
	assert.Contains(t, out.String(), "lob: still flying after 2 ticks")
}

func TestRunRandomName(t *testing.T) {
	opts := parseOptions(t, "--no-color")
	var out bytes.Buffer
	require.NoError(t, run(opts, &out))
	assert.Contains(t, out.String(), ": landed after ")
	assert.NotEqual(t, ':', out.String()[0])
}

func TestRunErrors(t *testing.T) {
	for _, tc := range []struct {
		args     []string
		expected string
	}{
		{[]string{"--position=vector(0, 1, 0)"}, "--position must be a point, got vector(0, 1, 0)"},
		{[]string{"--gravity=point(0, -1, 0)"}, "--gravity must be a vector, got point(0, -1, 0)"},
		{[]string{"--wind=tuple(0, 0, 0, 2)"}, "--wind must be a vector, got tuple(0, 0, 0, 2)"},
		{[]string{"--scale=0"}, "--scale must be positive, got 0"},
	} {
		t.Run(tc.expected, func(t *testing.T) {
			err := run(parseOptions(t, tc.args...), &bytes.Buffer{})
			assert.EqualError(t, err, tc.expected)
		})
	}

	t.Run("zero velocity", func(t *testing.T) {
		err := run(parseOptions(t, "--velocity=vector(0, 0, 0)"), &bytes.Buffer{})
		assert.True(t, errors.Is(err, tuples.ErrZeroMagnitude))
	})
}
