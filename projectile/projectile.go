// A projectile flying through an environment with gravity and wind, one tick at
// a time. This is the first thing built on top of tuples, and mostly serves to
// show that points and vectors combine the way they should: a point plus a
// vector is a point, a vector plus a vector is a vector.
package projectile

import (
	"fmt"

	"github.com/osuushi/raytracer/tuples"
)

type Projectile struct {
	Position tuples.Tuple // point
	Velocity tuples.Tuple // vector
}

type Environment struct {
	Gravity tuples.Tuple // vector
	Wind    tuples.Tuple // vector
}

// Launch a projectile from position in the given direction. Only the direction
// of the vector matters; its length is replaced by speed. A zero direction has
// no meaning, so it's an error.
func Launch(position, direction tuples.Tuple, speed float64) (Projectile, error) {
	unit, err := direction.TryNormalize()
	if err != nil {
		return Projectile{}, err
	}
	return Projectile{Position: position, Velocity: unit.Mul(speed)}, nil
}

// Advance the projectile by one unit of time.
func Tick(env Environment, p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// Tick until the projectile reaches the ground (y <= 0) or maxTicks ticks have
// passed. The result starts with the launch state and ends with the last state
// computed, so a projectile that lands ends just at or below the ground. A
// projectile launched at or below the ground never moves.
func Simulate(env Environment, p Projectile, maxTicks int) Trajectory {
	trajectory := Trajectory{p}
	for tick := 0; tick < maxTicks && p.Position.Y > 0; tick++ {
		p = Tick(env, p)
		trajectory = append(trajectory, p)
	}
	return trajectory
}

func (p Projectile) String() string {
	return fmt.Sprintf("at %s moving %s", p.Position, p.Velocity)
}
