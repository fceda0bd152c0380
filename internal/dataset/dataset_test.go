package dataset

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"
)

func TestSynthetic(t *testing.T) {
	ds := Synthetic()

	if !ds.Synthetic {
		t.Error("expected synthetic flag")
	}
	if ds.Len() != SyntheticSamples {
		t.Fatalf("expected %d samples, got %d", SyntheticSamples, ds.Len())
	}
	if ds.Time[0] != 0 || ds.Time[ds.Len()-1] != SyntheticDuration {
		t.Errorf("unexpected time bounds %f..%f", ds.Time[0], ds.Time[ds.Len()-1])
	}

	// p(10) = 5*10 + 0.5*9.81*100
	last := ds.Position[ds.Len()-1]
	if math.Abs(last-540.5) > 1e-9 {
		t.Errorf("expected final position 540.5, got %f", last)
	}
}

func TestSyntheticVelocity(t *testing.T) {
	ds := Synthetic()
	v, err := ds.Velocity()
	if err != nil {
		t.Fatalf("velocity failed: %v", err)
	}

	// interior central differences are exact for a quadratic
	for i := 1; i < len(v)-1; i++ {
		expected := 5 + 9.81*ds.Time[i]
		if math.Abs(v[i]-expected) > 1e-6 {
			t.Errorf("index %d: expected %f, got %f", i, expected, v[i])
		}
	}
}

func TestLoadMissingFallsBack(t *testing.T) {
	ds, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	if err != nil {
		t.Fatalf("expected fallback, got error: %v", err)
	}
	if !ds.Synthetic {
		t.Error("expected synthetic dataset")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "motion.csv")
	in := &Dataset{
		Time:     []float64{0, 0.5, 1.0},
		Position: []float64{0, 1.25, 5.0},
	}

	if err := Save(path, in); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if out.Synthetic {
		t.Error("loaded file should not be synthetic")
	}
	if out.Source != path {
		t.Errorf("expected source %s, got %s", path, out.Source)
	}
	if out.Len() != 3 || out.Position[2] != 5.0 {
		t.Errorf("unexpected data: %v %v", out.Time, out.Position)
	}
}

func TestReadSkipsHeader(t *testing.T) {
	ds, err := Read(strings.NewReader("time,position\n0, 1\n1, 3\n"))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if ds.Len() != 2 || ds.Position[1] != 3 {
		t.Errorf("unexpected data: %v %v", ds.Time, ds.Position)
	}
}

func TestReadMalformed(t *testing.T) {
	tests := []string{
		"time,position\n0\n",
		"time,position\n0,abc\n",
		"time,position\nx,1\n",
		"time,position\n0,1,2\n",
	}

	for _, in := range tests {
		_, err := Read(strings.NewReader(in))
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("input %q: expected ErrMalformed, got %v", in, err)
		}
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	ds := &Dataset{Time: []float64{1}, Position: []float64{2.5}}
	if err := Write(&buf, ds); err != nil {
		t.Fatal(err)
	}
	expected := "time,position\n1.000000,2.500000\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}
