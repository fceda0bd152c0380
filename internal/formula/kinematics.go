package formula

import "fmt"

// Velocity returns distance/time in m/s.
func Velocity(distance, time float64) (float64, error) {
	if time == 0 {
		return 0, fmt.Errorf("velocity over %g m: %w", distance, ErrZeroTime)
	}
	return distance / time, nil
}

// Acceleration returns the average acceleration (v1-v0)/time in m/s².
func Acceleration(v0, v1, time float64) (float64, error) {
	if time == 0 {
		return 0, fmt.Errorf("acceleration from %g to %g m/s: %w", v0, v1, ErrZeroTime)
	}
	return (v1 - v0) / time, nil
}

// Force returns mass*acceleration in newtons.
func Force(mass, acceleration float64) float64 {
	return mass * acceleration
}
