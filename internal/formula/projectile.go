package formula

import (
	"fmt"
	"math"
)

// StandardGravity is the gravitational acceleration at the Earth's surface, m/s².
const StandardGravity = 9.81

// Trajectory describes a drag-free projectile launched from ground level.
type Trajectory struct {
	Speed    float64 // launch speed, m/s
	AngleDeg float64 // launch angle above the horizontal, degrees
	Gravity  float64 // m/s²

	VX           float64 // horizontal velocity component, m/s
	VY           float64 // vertical velocity component at launch, m/s
	TimeOfFlight float64 // s
	MaxHeight    float64 // m
	Range        float64 // m
}

// Projectile computes the trajectory under [StandardGravity].
func Projectile(v0, angleDeg float64) Trajectory {
	return projectile(v0, angleDeg, StandardGravity)
}

// ProjectileWithGravity computes the trajectory under gravity g.
//
// Angles outside [0, 180] degrees are not rejected; they give a negative
// time of flight.
func ProjectileWithGravity(v0, angleDeg, g float64) (Trajectory, error) {
	if g <= 0 {
		return Trajectory{}, fmt.Errorf("projectile with g=%g: %w", g, ErrNonPositiveGravity)
	}
	return projectile(v0, angleDeg, g), nil
}

func projectile(v0, angleDeg, g float64) Trajectory {
	theta := angleDeg * math.Pi / 180
	vx := v0 * math.Cos(theta)
	vy := v0 * math.Sin(theta)
	tof := 2 * vy / g

	return Trajectory{
		Speed:        v0,
		AngleDeg:     angleDeg,
		Gravity:      g,
		VX:           vx,
		VY:           vy,
		TimeOfFlight: tof,
		MaxHeight:    vy * vy / (2 * g),
		Range:        vx * tof,
	}
}

// Map returns the named result record.
func (t Trajectory) Map() map[string]float64 {
	return map[string]float64{
		"v_x":            t.VX,
		"v_y":            t.VY,
		"time_of_flight": t.TimeOfFlight,
		"max_height":     t.MaxHeight,
		"range":          t.Range,
	}
}

// Point is a sample of the flight path.
type Point struct {
	T, X, Y float64
}

// Position returns the projectile position at time t after launch.
func (t Trajectory) Position(at float64) Point {
	return Point{
		T: at,
		X: t.VX * at,
		Y: t.VY*at - 0.5*t.Gravity*at*at,
	}
}

// Path samples n evenly spaced points from launch to landing.
// A non-positive time of flight yields only the launch point.
func (t Trajectory) Path(n int) []Point {
	if n < 2 || t.TimeOfFlight <= 0 {
		return []Point{t.Position(0)}
	}
	times := Linspace(0, t.TimeOfFlight, n)
	pts := make([]Point, n)
	for i, at := range times {
		pts[i] = t.Position(at)
	}
	// land exactly on the ground
	pts[n-1].Y = 0
	return pts
}
