// Package workbook converts between the tracker's collections and the
// two-sheet spreadsheet (Questions, Tags) used for import and export.
package workbook

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/iamshubhamjangle/trackle/internal/domain"
)

const (
	QuestionsSheet = "Questions"
	TagsSheet      = "Tags"
)

// ErrNoSheets is returned when a workbook holds neither a Questions nor a Tags sheet.
var ErrNoSheets = errors.New("workbook has no Questions or Tags sheet")

var validate = validator.New(validator.WithRequiredStructEnabled())

// QuestionRow is one row of the Questions sheet. Tags holds the raw
// references, which may be tag ids or tag names.
type QuestionRow struct {
	Name       string   `validate:"required"`
	URL        string   `validate:"required"`
	Difficulty string
	Completed  bool
	Starred    bool
	Tags       []string
}

// TagRow is one row of the Tags sheet.
type TagRow struct {
	ID    string `validate:"required"`
	Name  string `validate:"required"`
	Color string
}

// RowError describes a row skipped during import. Row is 1-based and counts
// the header.
type RowError struct {
	Sheet string
	Row   int
	Err   error
}

func (e RowError) Error() string {
	return fmt.Sprintf("%s row %d: %v", e.Sheet, e.Row, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

// Sheet is the parsed content of a workbook, ready to be merged.
type Sheet struct {
	Tags      []domain.Tag
	Questions []QuestionRow
	// NewID mints question ids; nil means random UUIDs.
	NewID func() string
}

// ImportedTags returns the tags read from the Tags sheet.
func (s *Sheet) ImportedTags() []domain.Tag {
	return s.Tags
}

// ResolveQuestions turns the question rows into questions. Each reference is
// matched against known by id, then by case-insensitive name. References
// that match nothing are dropped and a question left without tags gets the
// default tag.
func (s *Sheet) ResolveQuestions(known []domain.Tag) []domain.Question {
	newID := s.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	out := make([]domain.Question, 0, len(s.Questions))
	for _, row := range s.Questions {
		tags := make([]string, 0, len(row.Tags))
		for _, ref := range row.Tags {
			id, ok := resolveTag(known, ref)
			if ok && !slices.Contains(tags, id) {
				tags = append(tags, id)
			}
		}
		if len(tags) == 0 {
			tags = append(tags, domain.DefaultTagID)
		}

		out = append(out, domain.Question{
			ID:         "question-" + newID(),
			Name:       row.Name,
			URL:        row.URL,
			Difficulty: domain.ParseDifficulty(row.Difficulty),
			Tags:       tags,
			Completed:  row.Completed,
			Starred:    row.Starred,
		})
	}
	return out
}

func resolveTag(known []domain.Tag, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}
	if t, ok := domain.FindTag(known, ref); ok {
		return t.ID, true
	}
	for _, t := range known {
		if strings.EqualFold(strings.TrimSpace(t.Name), ref) {
			return t.ID, true
		}
	}
	return "", false
}

// splitRefs splits a comma-joined tag cell.
func splitRefs(cell string) []string {
	var refs []string
	for _, part := range strings.Split(cell, ",") {
		if p := strings.TrimSpace(part); p != "" {
			refs = append(refs, p)
		}
	}
	return refs
}

func parseBool(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

func checkRow(v any) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, len(verrs))
			for i, fe := range verrs {
				fields[i] = strings.ToLower(fe.Field())
			}
			return fmt.Errorf("missing %s", strings.Join(fields, ", "))
		}
		return err
	}
	return nil
}

// columns maps lowercased header names to column positions.
type columns map[string]int

// newColumns indexes header. When no header cell is recognized the
// positional fallback is used.
func newColumns(header []string, fallback []string, aliases map[string]string) columns {
	c := columns{}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if canonical, ok := aliases[name]; ok {
			name = canonical
		}
		if slices.Contains(fallback, name) {
			if _, seen := c[name]; !seen {
				c[name] = i
			}
		}
	}
	if len(c) == 0 {
		for i, name := range fallback {
			c[name] = i
		}
	}
	return c
}

func (c columns) get(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
