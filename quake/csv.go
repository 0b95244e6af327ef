package quake

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedRow is returned when a catalog row cannot be turned into an event.
var ErrMalformedRow = errors.New("malformed event row")

var requiredColumns = []string{"latitude", "longitude", "depth", "mag"}

// LoadFile reads a USGS style CSV catalog from disk.
func LoadFile(fileName string) ([]Event, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open event file %s: %w", fileName, err)
	}
	defer file.Close()

	events, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing event file %s: %w", fileName, err)
	}
	return events, nil
}

// ReadCSV parses a CSV catalog with a header row. Only the latitude, longitude,
// depth and mag columns are read; any others are ignored. An empty depth is read as 0.
func ReadCSV(reader io.Reader) ([]Event, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	index := make([]int, len(requiredColumns))
	for i, name := range requiredColumns {
		col, ok := columns[name]
		if !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
		index[i] = col
	}

	var events []Event
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		var values [4]float64
		for i, col := range index {
			if col >= len(record) {
				return nil, fmt.Errorf("line %d: %w: missing %s", line, ErrMalformedRow, requiredColumns[i])
			}
			field := strings.TrimSpace(record[col])
			if field == "" && requiredColumns[i] == "depth" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("line %d: %w: bad %s %q", line, ErrMalformedRow, requiredColumns[i], field)
			}
			values[i] = v
		}
		events = append(events, NewEvent(values[0], values[1], values[2], values[3]))
	}
	return events, nil
}
