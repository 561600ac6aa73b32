package workbook

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/iamshubhamjangle/trackle/internal/domain"
)

func counter() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprint(n)
	}
}

func buildWorkbook(t *testing.T, sheets map[string][][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName(f.GetSheetName(0), name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestWriteThenRead(t *testing.T) {
	questions := []domain.Question{
		{ID: "q1", Name: "Two Sum", URL: "https://leetcode.com/problems/two-sum", Difficulty: domain.Easy, Tags: []string{"t1", "t2"}, Completed: true},
		{ID: "q2", Name: "LRU Cache", URL: "https://leetcode.com/problems/lru-cache", Difficulty: domain.Medium, Tags: []string{"t2"}, Starred: true},
	}
	tags := []domain.Tag{
		{ID: "t1", Name: "Arrays", Color: "bg-blue-500"},
		{ID: "t2", Name: "Design", Color: "bg-pink-500"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, questions, tags))

	sheet, rowErrs, err := Read(&buf)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	assert.Equal(t, tags, sheet.Tags)
	require.Len(t, sheet.Questions, 2)
	assert.Equal(t, []string{"t1", "t2"}, sheet.Questions[0].Tags, "tags are exported as ids")
	assert.True(t, sheet.Questions[0].Completed)
	assert.True(t, sheet.Questions[1].Starred)

	sheet.NewID = counter()
	resolved := sheet.ResolveQuestions(tags)
	require.Len(t, resolved, 2)
	assert.Equal(t, "question-1", resolved[0].ID)
	assert.Equal(t, questions[0].Name, resolved[0].Name)
	assert.Equal(t, questions[0].Tags, resolved[0].Tags)
	assert.Equal(t, domain.Medium, resolved[1].Difficulty)
}

func TestReadSkipsMalformedRows(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]any{
		QuestionsSheet: {
			{"Title", "URL", "Difficulty", "Completed", "Starred", "Tags"},
			{"Two Sum", "https://x/two-sum", "Easy", "false", "false", "t1"},
			{"", "https://x/no-name", "Easy", "false", "false", "t1"},
			{"No URL"},
			{"Valid Anagram", "https://x/anagram", "easy", "TRUE", "", "arrays, Hashing"},
		},
		TagsSheet: {
			{"id", "name", "color"},
			{"t1", "Arrays", "bg-blue-500"},
			{"t9"},
			{"t3", "Hashing"},
		},
	})

	sheet, rowErrs, err := Read(buf)
	require.NoError(t, err)

	require.Len(t, sheet.Questions, 2)
	assert.Equal(t, "Two Sum", sheet.Questions[0].Name, "title is accepted as the name column")
	assert.True(t, sheet.Questions[1].Completed)
	assert.Equal(t, []string{"arrays", "Hashing"}, sheet.Questions[1].Tags)

	require.Len(t, sheet.Tags, 2)
	assert.Equal(t, "bg-gray-500", sheet.Tags[1].Color, "missing color falls back to gray")

	require.Len(t, rowErrs, 3)
	var rowErr RowError
	require.True(t, errors.As(rowErrs[0], &rowErr))
	assert.Equal(t, TagsSheet, rowErr.Sheet)
	assert.Equal(t, 3, rowErr.Row)
	assert.Contains(t, rowErr.Error(), "missing name")
	assert.Equal(t, QuestionsSheet, rowErrs[1].Sheet)
	assert.Equal(t, 3, rowErrs[1].Row)
	assert.Equal(t, 4, rowErrs[2].Row)
	assert.Contains(t, rowErrs[2].Error(), "missing url")
}

func TestReadPositionalColumns(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]any{
		QuestionsSheet: {
			{"a", "b", "c", "d", "e", "f"},
			{"Two Sum", "https://x/two-sum", "Hard", "true", "true", "t1,t2"},
		},
	})

	sheet, rowErrs, err := Read(buf)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, sheet.Questions, 1)
	assert.Equal(t, QuestionRow{
		Name: "Two Sum", URL: "https://x/two-sum", Difficulty: "Hard",
		Completed: true, Starred: true, Tags: []string{"t1", "t2"},
	}, sheet.Questions[0])
	assert.Empty(t, sheet.Tags)
}

func TestReadWithoutSheets(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]any{"Notes": {{"x"}}})

	_, _, err := Read(buf)
	assert.ErrorIs(t, err, ErrNoSheets)
}

func TestResolveQuestions(t *testing.T) {
	known := []domain.Tag{
		{ID: domain.DefaultTagID, Name: "Default"},
		{ID: "t1", Name: "Arrays"},
		{ID: "t2", Name: "Two Pointers"},
	}

	testCases := []struct {
		name     string
		refs     []string
		expected []string
	}{
		{name: "by id", refs: []string{"t2", "t1"}, expected: []string{"t2", "t1"}},
		{name: "by name ignoring case", refs: []string{"two pointers", "ARRAYS"}, expected: []string{"t2", "t1"}},
		{name: "duplicates collapse", refs: []string{"t1", "arrays"}, expected: []string{"t1"}},
		{name: "unknown refs are dropped", refs: []string{"graphs", "t1"}, expected: []string{"t1"}},
		{name: "nothing resolves", refs: []string{"graphs"}, expected: []string{domain.DefaultTagID}},
		{name: "no refs", refs: nil, expected: []string{domain.DefaultTagID}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := &Sheet{Questions: []QuestionRow{{Name: "q", URL: "u", Difficulty: "nonsense", Tags: tc.refs}}}
			got := s.ResolveQuestions(known)
			require.Len(t, got, 1)
			assert.Equal(t, tc.expected, got[0].Tags)
			assert.Equal(t, domain.Medium, got[0].Difficulty)
			assert.True(t, strings.HasPrefix(got[0].ID, "question-"))
		})
	}
}

func TestReadCSV(t *testing.T) {
	input := `title,url,difficulty,tags
Two Sum,https://x/two-sum,Easy,arrays
3Sum,https://x/3sum,Medium,"arrays,two pointers"
Missing Tags,https://x/missing,Easy,

,,,
No URL,,Hard,arrays
`
	sheet, rowErrs, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, sheet.Questions, 2)
	assert.Equal(t, []string{"arrays", "two pointers"}, sheet.Questions[1].Tags)
	assert.Empty(t, sheet.Tags)

	require.Len(t, rowErrs, 2)
	assert.Equal(t, 4, rowErrs[0].Row)
	assert.Contains(t, rowErrs[0].Error(), "tags")
	assert.Contains(t, rowErrs[1].Error(), "url")
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("questions.XLSX"))
	assert.True(t, Supported("dir/legacy.csv"))
	assert.False(t, Supported("notes.md"))
}
