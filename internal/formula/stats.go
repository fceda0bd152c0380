package formula

import "math"

// Stats summarises a sample.
type Stats struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Describe computes the mean, population standard deviation, min and max.
func Describe(data []float64) (Stats, error) {
	if len(data) == 0 {
		return Stats{}, ErrEmptySample
	}

	s := Stats{Min: data[0], Max: data[0]}
	sum := 0.0
	for _, x := range data {
		sum += x
		s.Min = math.Min(s.Min, x)
		s.Max = math.Max(s.Max, x)
	}
	s.Mean = sum / float64(len(data))

	sq := 0.0
	for _, x := range data {
		d := x - s.Mean
		sq += d * d
	}
	s.Std = math.Sqrt(sq / float64(len(data)))

	return s, nil
}

// Map returns the statistics keyed mean, std, min and max.
func (s Stats) Map() map[string]float64 {
	return map[string]float64{
		"mean": s.Mean,
		"std":  s.Std,
		"min":  s.Min,
		"max":  s.Max,
	}
}
