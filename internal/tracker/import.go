package tracker

import "github.com/iamshubhamjangle/trackle/internal/domain"

// Batch is a set of imported records. Questions are resolved against the
// merged tag collection so that references to imported tags succeed.
type Batch interface {
	ImportedTags() []domain.Tag
	ResolveQuestions(known []domain.Tag) []domain.Question
}

// ImportStats summarizes a merge.
type ImportStats struct {
	TagsAdded   int
	TagsSkipped int
	Questions   int
}

// Import merges b into the stored collections. Tags are unioned by id with
// existing tags winning; questions are appended without deduplication.
// Completed and starred flags carried by imported questions seed their
// progress entries.
func (t *Tracker) Import(b Batch) (ImportStats, error) {
	var stats ImportStats

	tags, err := t.Tags()
	if err != nil {
		return stats, err
	}
	questions, err := t.Questions()
	if err != nil {
		return stats, err
	}
	progress, err := t.Progress()
	if err != nil {
		return stats, err
	}

	for _, tag := range b.ImportedTags() {
		if _, exists := domain.FindTag(tags, tag.ID); exists {
			stats.TagsSkipped++
			continue
		}
		tags = append(tags, tag)
		stats.TagsAdded++
	}

	imported := b.ResolveQuestions(tags)
	seeded := false
	for _, q := range imported {
		questions = append(questions, coerceQuestion(q))
		if q.Completed || q.Starred {
			progress[q.ID] = domain.QuestionProgress{Completed: q.Completed, Starred: q.Starred}
			seeded = true
		}
	}
	stats.Questions = len(imported)

	if err := t.saveTags(tags); err != nil {
		return stats, err
	}
	if err := t.saveQuestions(questions); err != nil {
		return stats, err
	}
	if seeded {
		if err := t.saveProgress(progress); err != nil {
			return stats, err
		}
	}

	t.log.Info().
		Int("tags_added", stats.TagsAdded).
		Int("tags_skipped", stats.TagsSkipped).
		Int("questions", stats.Questions).
		Msg("import merged")
	return stats, nil
}

// Export returns the collections in the shape the workbook adapter writes.
// Each question's Completed and Starred fields carry its current progress.
func (t *Tracker) Export() ([]domain.Question, []domain.Tag, error) {
	questions, err := t.Questions()
	if err != nil {
		return nil, nil, err
	}
	tags, err := t.Tags()
	if err != nil {
		return nil, nil, err
	}
	progress, err := t.Progress()
	if err != nil {
		return nil, nil, err
	}
	for i, q := range questions {
		p := progress.Get(q.ID)
		questions[i].Completed = p.Completed
		questions[i].Starred = p.Starred
	}
	return questions, tags, nil
}
