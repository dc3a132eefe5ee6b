package projectile

import (
	"github.com/fogleman/gg"
)

// Padding around the plot so the launch and landing points aren't on the edge
const drawPadding = 20

// Plot the trajectory in the x/y plane, with the origin at the bottom left.
// One unit of distance is scale pixels.
func (tr Trajectory) Draw(scale float64) *gg.Context {
	min, max := tr.Bounds()

	// Set up the context
	width := int(scale*(max.X-min.X)) + drawPadding*2
	height := int(scale*(max.Y-min.Y)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-min.X, -min.Y)

	if len(tr) == 0 {
		return c
	}

	c.SetLineWidth(2)
	c.MoveTo(tr[0].Position.X, tr[0].Position.Y)
	for _, p := range tr[1:] {
		c.LineTo(p.Position.X, p.Position.Y)
	}
	c.SetRGB(0, 1, 1)
	c.Stroke()

	// Mark each tick. Circle radii go through the matrix, so undo the scale.
	radius := 3 / scale
	c.SetRGB(1, 1, 1)
	for _, p := range tr {
		c.DrawCircle(p.Position.X, p.Position.Y, radius)
	}
	c.Fill()

	apex := tr.Apex()
	c.SetRGB(1, 0, 0)
	c.DrawCircle(apex.Position.X, apex.Position.Y, 2*radius)
	c.Fill()

	return c
}

func (tr Trajectory) SavePNG(path string, scale float64) error {
	return tr.Draw(scale).SavePNG(path)
}
