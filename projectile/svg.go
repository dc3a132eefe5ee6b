package projectile

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Write the trajectory as a standalone SVG document with a single polyline.
// The polyline's points are the raw x/y positions, so they can be read back
// exactly; the flip and scale to image coordinates happen in a transform on
// the enclosing group.
func (tr Trajectory) WriteSVG(w io.Writer, scale float64) error {
	min, max := tr.Bounds()
	width := scale*(max.X-min.X) + drawPadding*2
	height := scale*(max.Y-min.Y) + drawPadding*2

	points := make([]string, len(tr))
	for i, p := range tr {
		points[i] = formatFloat(p.Position.X) + "," + formatFloat(p.Position.Y)
	}

	_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s">
  <rect width="100%%" height="100%%" fill="black"/>
  <g transform="translate(%s %s) scale(%s %s) translate(%s %s)">
    <polyline points="%s" fill="none" stroke="cyan" stroke-width="2" vector-effect="non-scaling-stroke"/>
  </g>
</svg>
`,
		formatFloat(width), formatFloat(height),
		formatFloat(drawPadding), formatFloat(height-drawPadding),
		formatFloat(scale), formatFloat(-scale),
		formatFloat(-min.X), formatFloat(-min.Y),
		strings.Join(points, " "),
	)
	return err
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
