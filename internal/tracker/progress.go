package tracker

import (
	"fmt"

	"github.com/iamshubhamjangle/trackle/internal/domain"
	"github.com/iamshubhamjangle/trackle/internal/storage"
)

// ToggleQuestionCompleted flips the completed flag of id and returns the new entry.
func (t *Tracker) ToggleQuestionCompleted(id string) (domain.QuestionProgress, error) {
	return t.updateProgress(id, func(p *domain.QuestionProgress) { p.Completed = !p.Completed })
}

// ToggleQuestionStarred flips the starred flag of id and returns the new entry.
func (t *Tracker) ToggleQuestionStarred(id string) (domain.QuestionProgress, error) {
	return t.updateProgress(id, func(p *domain.QuestionProgress) { p.Starred = !p.Starred })
}

func (t *Tracker) updateProgress(id string, fn func(*domain.QuestionProgress)) (domain.QuestionProgress, error) {
	progress, err := t.Progress()
	if err != nil {
		return domain.QuestionProgress{}, err
	}
	entry := progress.Get(id)
	fn(&entry)
	progress[id] = entry
	if err := t.saveProgress(progress); err != nil {
		return domain.QuestionProgress{}, err
	}
	return entry, nil
}

// ResetProgress clears every progress entry. It cannot be undone; callers
// are expected to confirm with the user first.
func (t *Tracker) ResetProgress() error {
	if err := t.store.Remove(storage.KeyProgress); err != nil {
		return fmt.Errorf("failed to reset progress: %w", err)
	}
	t.log.Info().Msg("progress reset")
	return nil
}
