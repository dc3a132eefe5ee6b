package projectile

import (
	"math"

	"github.com/osuushi/raytracer/tuples"
)

// The states of a projectile over time, launch first.
type Trajectory []Projectile

// The number of ticks simulated
func (tr Trajectory) Ticks() int {
	if len(tr) == 0 {
		return 0
	}
	return len(tr) - 1
}

func (tr Trajectory) Landed() bool {
	return len(tr) > 0 && tr[len(tr)-1].Position.Y <= 0
}

// The highest state reached. Ties go to the earliest.
func (tr Trajectory) Apex() Projectile {
	var apex Projectile
	for i, p := range tr {
		if i == 0 || p.Position.Y > apex.Position.Y {
			apex = p
		}
	}
	return apex
}

// Horizontal distance (ignoring height) between the launch point and the last
// position.
func (tr Trajectory) Distance() float64 {
	if len(tr) == 0 {
		return 0
	}
	displacement := tr[len(tr)-1].Position.Sub(tr[0].Position)
	displacement.Y = 0
	return displacement.Magnitude()
}

// The bounding box of all positions, as two points. An empty trajectory has
// zero bounds at the origin.
func (tr Trajectory) Bounds() (min, max tuples.Tuple) {
	if len(tr) == 0 {
		return tuples.Point(0, 0, 0), tuples.Point(0, 0, 0)
	}
	minX, minY, minZ := math.Inf(1), math.Inf(1), math.Inf(1)
	maxX, maxY, maxZ := math.Inf(-1), math.Inf(-1), math.Inf(-1)
	for _, p := range tr {
		minX = math.Min(minX, p.Position.X)
		minY = math.Min(minY, p.Position.Y)
		minZ = math.Min(minZ, p.Position.Z)
		maxX = math.Max(maxX, p.Position.X)
		maxY = math.Max(maxY, p.Position.Y)
		maxZ = math.Max(maxZ, p.Position.Z)
	}
	return tuples.Point(minX, minY, minZ), tuples.Point(maxX, maxY, maxZ)
}

func (tr Trajectory) Positions() []tuples.Tuple {
	positions := make([]tuples.Tuple, len(tr))
	for i, p := range tr {
		positions[i] = p.Position
	}
	return positions
}
