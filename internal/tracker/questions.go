package tracker

import (
	"slices"

	"github.com/iamshubhamjangle/trackle/internal/domain"
)

// NewQuestion builds a question with a freshly minted id. Tag ids that do not
// name a known tag are replaced by the default tag, and a question without
// tags gets the default tag.
func (t *Tracker) NewQuestion(name, url string, difficulty domain.Difficulty, tagIDs []string) (domain.Question, error) {
	tags, err := t.Tags()
	if err != nil {
		return domain.Question{}, err
	}

	resolved := make([]string, 0, len(tagIDs))
	for _, id := range tagIDs {
		if _, ok := domain.FindTag(tags, id); !ok {
			id = domain.DefaultTagID
		}
		if !slices.Contains(resolved, id) {
			resolved = append(resolved, id)
		}
	}
	if len(resolved) == 0 {
		resolved = append(resolved, domain.DefaultTagID)
	}

	if !difficulty.Valid() {
		difficulty = domain.ParseDifficulty(string(difficulty))
	}
	return domain.Question{
		ID:         "question-" + t.newID(),
		Name:       name,
		URL:        url,
		Difficulty: difficulty,
		Tags:       resolved,
	}, nil
}

// QuestionByID returns the first question with id.
func (t *Tracker) QuestionByID(id string) (domain.Question, bool, error) {
	qs, err := t.Questions()
	if err != nil {
		return domain.Question{}, false, err
	}
	i := slices.IndexFunc(qs, func(q domain.Question) bool { return q.ID == id })
	if i < 0 {
		return domain.Question{}, false, nil
	}
	return qs[i], true, nil
}

// AddQuestion appends q to the collection.
func (t *Tracker) AddQuestion(q domain.Question) error {
	qs, err := t.Questions()
	if err != nil {
		return err
	}
	return t.saveQuestions(append(qs, coerceQuestion(q)))
}

// UpdateQuestion merges patch into the question with id. Unknown ids are a no-op.
func (t *Tracker) UpdateQuestion(id string, patch domain.QuestionPatch) error {
	qs, err := t.Questions()
	if err != nil {
		return err
	}
	i := slices.IndexFunc(qs, func(q domain.Question) bool { return q.ID == id })
	if i < 0 {
		t.log.Debug().Str("question_id", id).Msg("update of unknown question ignored")
		return nil
	}
	qs[i] = coerceQuestion(patch.Apply(qs[i]))
	return t.saveQuestions(qs)
}

// DeleteQuestion removes every question with id. Its progress entry is kept.
func (t *Tracker) DeleteQuestion(id string) error {
	qs, err := t.Questions()
	if err != nil {
		return err
	}
	kept := slices.DeleteFunc(qs, func(q domain.Question) bool { return q.ID == id })
	if len(kept) == len(qs) {
		t.log.Debug().Str("question_id", id).Msg("delete of unknown question ignored")
		return nil
	}
	return t.saveQuestions(kept)
}
