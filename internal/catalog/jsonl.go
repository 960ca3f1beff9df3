package catalog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/adboard/internal/logger"
	"github.com/mesh-intelligence/adboard/pkg/types"
)

// jsonlLine is one non-empty line of a JSONL file with its 1-based number.
type jsonlLine struct {
	no   int
	data json.RawMessage
}

// readJSONL reads a JSONL file and returns each non-empty, well-formed line.
// Malformed lines are reported through skip and left out.
func readJSONL(path string, skip func(no int)) ([]jsonlLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []jsonlLine
	scanner := bufio.NewScanner(f)
	no := 0
	for scanner.Scan() {
		no++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			skip(no)
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		lines = append(lines, jsonlLine{no: no, data: cp})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return lines, nil
}

// File is a read-only Source backed by a JSONL fixture, one AdConfig object
// per line. Records without an id are assigned a UUID v7.
type File struct {
	path string
	log  logger.Logger
}

// NewFile returns a Source reading path. A nil log discards messages.
func NewFile(path string, log logger.Logger) *File {
	if log == nil {
		log = logger.Discard()
	}
	return &File{path: path, log: log}
}

// Name implements Source.
func (f *File) Name() string { return f.path }

// Load implements Source.
func (f *File) Load() ([]types.AdConfig, error) {
	lines, err := readJSONL(f.path, func(no int) {
		f.log.Warn("skipping malformed line", "file", f.path, "line", no)
	})
	if err != nil {
		return nil, err
	}

	records := make([]types.AdConfig, 0, len(lines))
	for _, l := range lines {
		var a types.AdConfig
		if err := json.Unmarshal(l.data, &a); err != nil {
			return nil, fmt.Errorf("line %d: %w", l.no, err)
		}
		if a.ID == "" {
			a.ID = newUUID()
		}
		records = append(records, a)
	}
	f.log.Debug("loaded records", "file", f.path, "count", len(records))
	return records, nil
}

// newUUID generates a UUID v7 string.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}
