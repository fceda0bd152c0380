// Package dataset loads sampled time/position series from CSV.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/kinelab/internal/formula"
)

const (
	SyntheticSamples  = 50
	SyntheticDuration = 10.0
	SyntheticV0       = 5.0
)

var ErrMalformed = errors.New("dataset: malformed csv")

type Dataset struct {
	Source    string
	Synthetic bool
	Time      []float64
	Position  []float64
}

// Synthetic returns uniformly accelerated motion, p = v0*t + g*t²/2, sampled
// over [0, SyntheticDuration].
func Synthetic() *Dataset {
	time := formula.Linspace(0, SyntheticDuration, SyntheticSamples)
	pos := make([]float64, len(time))
	for i, t := range time {
		pos[i] = SyntheticV0*t + 0.5*formula.StandardGravity*t*t
	}
	return &Dataset{
		Source:    "synthetic",
		Synthetic: true,
		Time:      time,
		Position:  pos,
	}
}

// Load reads a time,position CSV with a single header row. A missing file is
// not an error: the synthetic series is returned instead.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("data file not found, generating sample data", "file", path)
			return Synthetic(), nil
		}
		return nil, err
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ds.Source = path
	slog.Debug("loaded data file", "file", path, "samples", len(ds.Time))
	return ds, nil
}

func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	ds := &Dataset{}
	if len(records) < 2 {
		return ds, nil
	}

	ds.Time = make([]float64, 0, len(records)-1)
	ds.Position = make([]float64, 0, len(records)-1)

	for i, record := range records[1:] {
		line := i + 2
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		if len(record) != 2 {
			return nil, fmt.Errorf("%w: line %d: expected 2 columns, got %d", ErrMalformed, line, len(record))
		}
		t, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: time: %v", ErrMalformed, line, err)
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: position: %v", ErrMalformed, line, err)
		}
		ds.Time = append(ds.Time, t)
		ds.Position = append(ds.Position, p)
	}

	return ds, nil
}

func Write(w io.Writer, ds *Dataset) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"time", "position"}); err != nil {
		return err
	}
	for i := range ds.Time {
		row := []string{
			strconv.FormatFloat(ds.Time[i], 'f', 6, 64),
			strconv.FormatFloat(ds.Position[i], 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func Save(path string, ds *Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, ds); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (d *Dataset) Len() int { return len(d.Time) }

// Velocity differentiates the position series.
func (d *Dataset) Velocity() ([]float64, error) {
	return formula.NumericalVelocity(d.Time, d.Position)
}
