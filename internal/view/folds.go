package view

import "github.com/iamshubhamjangle/trackle/internal/domain"

// Folds tracks which tag groups are expanded. It is presentation state and
// only has meaning in category mode.
type Folds struct {
	categoryWise bool
	expanded     map[string]bool
}

// NewFolds expands every tag unless opts.AllFolded is set.
func NewFolds(opts domain.ViewOptions, tags []domain.Tag) *Folds {
	f := &Folds{categoryWise: opts.CategoryWise}
	f.SetAll(opts.AllFolded, tags)
	return f
}

// SetAll folds or unfolds every tag at once.
func (f *Folds) SetAll(folded bool, tags []domain.Tag) {
	f.expanded = make(map[string]bool, len(tags))
	if folded {
		return
	}
	for _, t := range tags {
		f.expanded[t.ID] = true
	}
}

// Toggle flips a single tag. It does nothing outside category mode.
func (f *Folds) Toggle(tagID string) {
	if !f.categoryWise {
		return
	}
	if f.expanded[tagID] {
		delete(f.expanded, tagID)
		return
	}
	f.expanded[tagID] = true
}

// Expanded reports whether the group's questions should be shown.
// The synthetic all-questions group is always expanded.
func (f *Folds) Expanded(g Group) bool {
	if !f.categoryWise || g.Tag.ID == domain.AllQuestionsTagID {
		return true
	}
	return f.expanded[g.Tag.ID]
}
