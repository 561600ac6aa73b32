package workbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/iamshubhamjangle/trackle/internal/domain"
)

// legacyColumns is the column order of the older CSV import format.
var legacyColumns = []string{"name", "url", "difficulty", "tags"}

// legacyRow requires every column of the CSV format to be present.
type legacyRow struct {
	Name       string `validate:"required"`
	URL        string `validate:"required"`
	Difficulty string `validate:"required"`
	Tags       string `validate:"required"`
}

// ReadCSV parses the legacy CSV format with columns title, url, difficulty
// and tags. It carries questions only.
func ReadCSV(r io.Reader) (*Sheet, []RowError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(rows) == 0 {
		return &Sheet{}, nil, nil
	}

	cols := newColumns(rows[0], legacyColumns, headerAliases)
	s := &Sheet{}
	var errs []RowError
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		lr := legacyRow{
			Name:       cols.get(row, "name"),
			URL:        cols.get(row, "url"),
			Difficulty: cols.get(row, "difficulty"),
			Tags:       cols.get(row, "tags"),
		}
		if err := checkRow(lr); err != nil {
			errs = append(errs, RowError{Sheet: "csv", Row: i + 2, Err: err})
			continue
		}
		s.Questions = append(s.Questions, QuestionRow{
			Name:       lr.Name,
			URL:        lr.URL,
			Difficulty: lr.Difficulty,
			Tags:       splitRefs(lr.Tags),
		})
	}
	return s, errs, nil
}

// Supported reports whether path has a workbook extension this package reads.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".csv":
		return true
	}
	return false
}

// ReadFile opens path and parses it as xlsx or CSV according to its extension.
func ReadFile(path string) (*Sheet, []RowError, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(file)
	case ".xlsx":
		return Read(file)
	}
	return nil, nil, fmt.Errorf("unsupported workbook type: %s", path)
}

// WriteFile writes questions and tags to an xlsx workbook at path.
func WriteFile(path string, questions []domain.Question, tags []domain.Tag) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(file, questions, tags); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
