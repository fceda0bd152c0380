package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/kinelab/internal/formula"
)

func TestWriteBasic(t *testing.T) {
	var buf bytes.Buffer
	WriteBasic(&buf, Basic{
		Distance: 100, Time: 5, Velocity: 20,
		V0: 0, V1: 20, AccelTime: 4, Accel: 5,
		Mass: 10, Force: 50,
	})

	out := buf.String()
	for _, want := range []string{"Basic Physics Calculator", "20 m/s", "5 m/s²", "50 N"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestWriteProjectiles(t *testing.T) {
	var buf bytes.Buffer
	WriteProjectiles(&buf, []formula.Trajectory{formula.Projectile(20, 45)})

	out := buf.String()
	for _, want := range []string{"Launch Angle: 45°", "2.88 s", "10.19 m", "40.77 m"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "below the horizon") {
		t.Error("unexpected negative flight hint")
	}
}

func TestWriteProjectilesNegativeAngle(t *testing.T) {
	var buf bytes.Buffer
	WriteProjectiles(&buf, []formula.Trajectory{formula.Projectile(20, -15)})

	if !strings.Contains(buf.String(), "below the horizon") {
		t.Error("expected negative flight hint")
	}
}

func TestWriteAnalysis(t *testing.T) {
	var buf bytes.Buffer
	WriteAnalysis(&buf, Analysis{
		Source:    "synthetic",
		Synthetic: true,
		Samples:   50,
		Position:  formula.Stats{Mean: 1, Std: 2, Min: 3, Max: 4},
		Velocity:  formula.Stats{Mean: 5, Std: 6, Min: 7, Max: 8},
	})

	out := buf.String()
	for _, want := range []string{"synthetic (generated)", "Position Statistics:", "Velocity Statistics:", "Mean:", "8.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}
