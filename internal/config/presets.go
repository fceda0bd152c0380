package config

import "sort"

// GravityPreset is the surface gravity of a body, m/s².
type GravityPreset struct {
	Name    string
	Gravity float64
}

var Presets = map[string]GravityPreset{
	"earth":   {Name: "earth", Gravity: 9.81},
	"moon":    {Name: "moon", Gravity: 1.62},
	"mars":    {Name: "mars", Gravity: 3.71},
	"venus":   {Name: "venus", Gravity: 8.87},
	"jupiter": {Name: "jupiter", Gravity: 24.79},
}

func GetPreset(name string) (GravityPreset, bool) {
	p, ok := Presets[name]
	return p, ok
}

// ListPresets returns preset names ordered by increasing gravity.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return Presets[names[i]].Gravity < Presets[names[j]].Gravity
	})
	return names
}
