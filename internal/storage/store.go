// Package storage implements run persistence (spec.md D2): one
// timestamped directory per run holding a JSON metadata file and a CSV
// dump of the state trajectory, the way the teacher's internal/storage
// persists a simulation run.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/arletty-bit/rkapp/internal/ivp"
)

// Store owns one base directory under which every run gets its own
// timestamped subdirectory.
type Store struct {
	baseDir string
}

// New returns a Store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Init creates the base directory if it doesn't already exist.
func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes one persisted run: the method and problem it
// used, the step grid, and (for Everhart) the configured order.
type RunMetadata struct {
	ID                  string    `json:"id"`
	Method              string    `json:"method"`
	Problem             string    `json:"problem"`
	Timestamp           time.Time `json:"timestamp"`
	Seed                int64     `json:"seed"`
	Dt                  float64   `json:"dt"`
	Steps               int       `json:"steps"`
	InterpolationPoints int       `json:"interpolation_points"`
	Order               int       `json:"order,omitempty"`
}

// Save writes meta and the state trajectory (with its matching time
// grid) to a new run directory, returning the run's ID.
func (s *Store) Save(meta RunMetadata, states []ivp.State, times []float64) (string, error) {
	meta.ID = fmt.Sprintf("%s_%d", meta.Method, time.Now().Unix())
	meta.Timestamp = time.Now()
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "states.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(states) == 0 {
		return meta.ID, nil
	}

	header := []string{"time"}
	for i := range states[0] {
		header = append(header, fmt.Sprintf("y%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, state := range states {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range state {
			row = append(row, strconv.FormatFloat(val, 'f', 10, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return meta.ID, nil
}

// List returns the metadata of every persisted run.
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

// Load reads back one run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadStates reads back one run's state trajectory and time grid.
func (s *Store) LoadStates(runID string) ([]ivp.State, []float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "states.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return []ivp.State{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	states := make([]ivp.State, 0, len(records)-1)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) == 0 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)

		state := make(ivp.State, 0, len(record)-1)
		for j := 1; j < len(record); j++ {
			val, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				continue
			}
			state = append(state, val)
		}
		states = append(states, state)
	}

	return states, times, nil
}
