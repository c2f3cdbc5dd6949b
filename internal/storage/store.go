package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/sortviz/internal/frame"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
)

var (
	ErrRunNotFound = errors.New("storage: run not found")
	ErrCorruptRun  = errors.New("storage: corrupt run")
)

var csvHeader = []string{"frame", "index", "value", "role", "origin"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string {
	return s.baseDir
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Algorithm string             `json:"algorithm"`
	Title     string             `json:"title"`
	Dataset   string             `json:"dataset"`
	Count     int                `json:"count"`
	Seed      int64              `json:"seed"`
	Timestamp time.Time          `json:"timestamp"`
	Frames    int                `json:"frames"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes seq under a fresh run directory and returns its id. ID,
// Timestamp and Frames in meta are filled in by Save.
func (s *Store) Save(meta RunMetadata, seq frame.Sequence) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", meta.Algorithm, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now
	meta.Frames = seq.Len()

	if err := writeMetadata(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, framesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, seq); err != nil {
		return "", err
	}
	return runID, csvFile.Close()
}

func writeMetadata(path string, meta RunMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}
	return f.Close()
}

// WriteCSV writes seq in long form, one row per element per frame.
func WriteCSV(w io.Writer, seq frame.Sequence) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for i, f := range seq {
		for j, e := range f {
			row := []string{
				strconv.Itoa(i),
				strconv.Itoa(j),
				strconv.Itoa(e.Value),
				e.Role.Code(),
				strconv.Itoa(e.Origin),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses the output of WriteCSV. Frames with no rows (the trace of
// an empty input) cannot be represented and come back as an empty Sequence.
func ReadCSV(r io.Reader) (frame.Sequence, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptRun, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header", ErrCorruptRun)
	}

	seq := frame.Sequence{}
	for line, record := range records[1:] {
		fi, err1 := strconv.Atoi(record[0])
		idx, err2 := strconv.Atoi(record[1])
		val, err3 := strconv.Atoi(record[2])
		origin, err4 := strconv.Atoi(record[4])
		if err := errors.Join(err1, err2, err3, err4); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorruptRun, line+2, err)
		}
		role, err := frame.RoleFromCode(record[3])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorruptRun, line+2, err)
		}

		switch {
		case fi == len(seq):
			seq = append(seq, frame.Frame{})
		case fi != len(seq)-1:
			return nil, fmt.Errorf("%w: line %d: frame %d out of order", ErrCorruptRun, line+2, fi)
		}
		cur := &seq[fi]
		if idx != len(*cur) {
			return nil, fmt.Errorf("%w: line %d: index %d out of order", ErrCorruptRun, line+2, idx)
		}
		*cur = append(*cur, frame.Element{Value: val, Role: role, Origin: origin})
	}

	return seq, nil
}

// List returns every readable run, newest first.
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

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRun, runID, err)
	}

	return &meta, nil
}

func (s *Store) LoadFrames(runID string) (frame.Sequence, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	seq, err := ReadCSV(file)
	if err != nil {
		return nil, err
	}
	// An empty input still has one (empty) frame; the CSV has no rows for it.
	if seq.Len() == 0 {
		if meta, err := s.Load(runID); err == nil {
			for i := 0; i < meta.Frames; i++ {
				seq = append(seq, frame.Frame{})
			}
		}
	}
	return seq, nil
}
