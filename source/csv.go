package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ReadCSV loads a dense matrix from CSV data.
//
// Every record must parse as float64 values and all records must have the
// same field count; the loader never pads or truncates.
//
// Parameters:
//   - r: CSV input
//
// Returns:
//   - [][]float64: Parsed rows
//   - error: Parse failure with row/column position
func ReadCSV(r io.Reader) ([][]float64, error) {
	reader := csv.NewReader(r)
	// Matrices are rectangular; let the csv reader enforce uniform
	// field counts per record.
	reader.FieldsPerRecord = 0

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	data := make([][]float64, len(records))
	for i, record := range records {
		row := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("parse element at row %d col %d: %w", i, j, err)
			}
			row[j] = v
		}
		data[i] = row
	}

	return data, nil
}

// LoadCSVFile loads a dense matrix from a CSV file on disk.
//
// Parameters:
//   - path: File path
//
// Returns:
//   - [][]float64: Parsed rows
//   - error: Open or parse failure
func LoadCSVFile(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f)
}
