package workbook

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/iamshubhamjangle/trackle/internal/domain"
)

var (
	questionColumns = []string{"name", "url", "difficulty", "completed", "starred", "tags"}
	tagColumns      = []string{"id", "name", "color"}
	headerAliases   = map[string]string{"title": "name"}
)

// Read parses an xlsx workbook. Malformed rows are skipped and reported;
// only an unreadable file or a workbook without either sheet is an error.
func Read(r io.Reader) (*Sheet, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	hasQuestions := slices.Contains(sheets, QuestionsSheet)
	hasTags := slices.Contains(sheets, TagsSheet)
	if !hasQuestions && !hasTags {
		return nil, nil, ErrNoSheets
	}

	s := &Sheet{}
	var rowErrs []RowError

	if hasTags {
		rows, err := f.GetRows(TagsSheet)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s sheet: %w", TagsSheet, err)
		}
		tags, errs := parseTagRows(rows)
		s.Tags = tags
		rowErrs = append(rowErrs, errs...)
	}

	if hasQuestions {
		rows, err := f.GetRows(QuestionsSheet)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s sheet: %w", QuestionsSheet, err)
		}
		qs, errs := parseQuestionRows(QuestionsSheet, rows, questionColumns)
		s.Questions = qs
		rowErrs = append(rowErrs, errs...)
	}

	return s, rowErrs, nil
}

func parseTagRows(rows [][]string) ([]domain.Tag, []RowError) {
	if len(rows) == 0 {
		return nil, nil
	}
	cols := newColumns(rows[0], tagColumns, nil)

	var tags []domain.Tag
	var errs []RowError
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		tr := TagRow{
			ID:    cols.get(row, "id"),
			Name:  cols.get(row, "name"),
			Color: cols.get(row, "color"),
		}
		if err := checkRow(tr); err != nil {
			errs = append(errs, RowError{Sheet: TagsSheet, Row: i + 2, Err: err})
			continue
		}
		if tr.Color == "" {
			tr.Color = "bg-gray-500"
		}
		tags = append(tags, domain.Tag{ID: tr.ID, Name: tr.Name, Color: tr.Color})
	}
	return tags, errs
}

func parseQuestionRows(sheet string, rows [][]string, fallback []string) ([]QuestionRow, []RowError) {
	if len(rows) == 0 {
		return nil, nil
	}
	cols := newColumns(rows[0], fallback, headerAliases)

	var out []QuestionRow
	var errs []RowError
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		qr := QuestionRow{
			Name:       cols.get(row, "name"),
			URL:        cols.get(row, "url"),
			Difficulty: cols.get(row, "difficulty"),
			Completed:  parseBool(cols.get(row, "completed")),
			Starred:    parseBool(cols.get(row, "starred")),
			Tags:       splitRefs(cols.get(row, "tags")),
		}
		if err := checkRow(qr); err != nil {
			errs = append(errs, RowError{Sheet: sheet, Row: i + 2, Err: err})
			continue
		}
		out = append(out, qr)
	}
	return out, errs
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Write serializes questions and tags as a two-sheet xlsx workbook. Tag
// references are written as comma-joined ids.
func Write(w io.Writer, questions []domain.Question, tags []domain.Tag) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), QuestionsSheet); err != nil {
		return fmt.Errorf("failed to name %s sheet: %w", QuestionsSheet, err)
	}
	if _, err := f.NewSheet(TagsSheet); err != nil {
		return fmt.Errorf("failed to create %s sheet: %w", TagsSheet, err)
	}

	if err := writeRow(f, QuestionsSheet, 1, toAny(questionColumns)); err != nil {
		return err
	}
	for i, q := range questions {
		row := []any{q.Name, q.URL, string(q.Difficulty), q.Completed, q.Starred, strings.Join(q.Tags, ",")}
		if err := writeRow(f, QuestionsSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := writeRow(f, TagsSheet, 1, toAny(tagColumns)); err != nil {
		return err
	}
	for i, t := range tags {
		if err := writeRow(f, TagsSheet, i+2, []any{t.ID, t.Name, t.Color}); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
