package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/kinelab/internal/formula"
)

const (
	metadataFile = "metadata.json"
	samplesFile  = "samples.csv"
)

var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir      string
	now          func() time.Time
	writeSamples func(path string, run *Run) error
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now, writeSamples: writeSamplesCSV}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string        `json:"id"`
	Source    string        `json:"source"`
	Synthetic bool          `json:"synthetic"`
	Timestamp time.Time     `json:"timestamp"`
	Samples   int           `json:"samples"`
	Position  formula.Stats `json:"position"`
	Velocity  formula.Stats `json:"velocity"`
}

// Run is a stored analysis: the metadata plus its sample columns.
type Run struct {
	Meta     RunMetadata
	Time     []float64
	Position []float64
	Velocity []float64
}

// Save writes a run directory and returns its id. The id is unique within
// the store even for runs saved in the same second. A failed write leaves no
// directory behind.
func (s *Store) Save(run *Run) (string, error) {
	if len(run.Time) != len(run.Position) || len(run.Time) != len(run.Velocity) {
		return "", fmt.Errorf("storage: %w", formula.ErrLengthMismatch)
	}

	ts := s.now()
	base := fmt.Sprintf("analysis_%d", ts.Unix())
	runID := base
	for i := 1; ; i++ {
		err := os.Mkdir(filepath.Join(s.baseDir, runID), 0755)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", err
		}
		runID = fmt.Sprintf("%s_%d", base, i)
	}
	runDir := filepath.Join(s.baseDir, runID)

	meta := run.Meta
	meta.ID = runID
	meta.Timestamp = ts
	meta.Samples = len(run.Time)

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}
	if err := s.writeSamples(filepath.Join(runDir, samplesFile), run); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}

	run.Meta = meta
	return runID, nil
}

func writeSamplesCSV(path string, run *Run) error {
	csvFile, err := os.Create(path)
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"time", "position", "velocity"}); err != nil {
		return err
	}
	for i := range run.Time {
		row := []string{
			strconv.FormatFloat(run.Time[i], 'f', 6, 64),
			strconv.FormatFloat(run.Position[i], 'f', 6, 64),
			strconv.FormatFloat(run.Velocity[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return csvFile.Close()
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", runID, ErrRunNotFound)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadRun(runID string) (*Run, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, samplesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	run := &Run{Meta: *meta}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 3 {
			continue
		}
		vals := make([]float64, 3)
		ok := true
		for j := range vals {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}
		run.Time = append(run.Time, vals[0])
		run.Position = append(run.Position, vals[1])
		run.Velocity = append(run.Velocity, vals[2])
	}

	return run, nil
}

// ExportJSON writes the run with its samples as indented JSON.
func ExportJSON(w io.Writer, run *Run) error {
	data := struct {
		Metadata RunMetadata `json:"metadata"`
		Time     []float64   `json:"time"`
		Position []float64   `json:"position"`
		Velocity []float64   `json:"velocity"`
	}{run.Meta, run.Time, run.Position, run.Velocity}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
