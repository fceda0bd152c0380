package formula

import "fmt"

// NumericalVelocity differentiates position with respect to time.
//
// Interior samples use second-order central differences that account for
// uneven spacing; the first and last samples use one-sided differences.
// Both slices must have the same length of at least two, and timestamps must
// not repeat.
func NumericalVelocity(time, position []float64) ([]float64, error) {
	if len(time) != len(position) {
		return nil, fmt.Errorf("%d times, %d positions: %w", len(time), len(position), ErrLengthMismatch)
	}
	n := len(time)
	if n < 2 {
		return nil, fmt.Errorf("got %d: %w", n, ErrTooFewSamples)
	}

	for i := 1; i < n; i++ {
		if time[i] == time[i-1] {
			return nil, fmt.Errorf("repeated timestamp %g at index %d: %w", time[i], i, ErrZeroTime)
		}
	}

	v := make([]float64, n)
	v[0] = (position[1] - position[0]) / (time[1] - time[0])
	v[n-1] = (position[n-1] - position[n-2]) / (time[n-1] - time[n-2])

	for i := 1; i < n-1; i++ {
		hs := time[i] - time[i-1]
		hd := time[i+1] - time[i]
		if hd+hs == 0 {
			return nil, fmt.Errorf("zero span around index %d: %w", i, ErrZeroTime)
		}
		a := -hd / (hs * (hd + hs))
		b := (hd - hs) / (hd * hs)
		c := hs / (hd * (hd + hs))
		v[i] = a*position[i-1] + b*position[i] + c*position[i+1]
	}

	return v, nil
}

// Linspace returns n evenly spaced samples over [start, stop].
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
