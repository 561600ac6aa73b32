// Package view derives the grouped, filtered and ordered question list shown
// to the user from the tracker's collections and display options.
package view

import "github.com/iamshubhamjangle/trackle/internal/domain"

// Input is everything Derive needs. Order is the session permutation of
// question ids and is only consulted when Options.Randomize is set.
type Input struct {
	Questions []domain.Question
	Tags      []domain.Tag
	Progress  domain.Progress
	Options   domain.ViewOptions
	Order     []string
}

// Group is one rendered section: a tag and the questions under it.
type Group struct {
	Tag              domain.Tag
	Questions        []domain.Question
	CompletedInGroup int
	TotalInGroup     int
}

// Percent is the share of completed questions in the group, 0 when empty.
func (g Group) Percent() float64 {
	return percent(g.CompletedInGroup, g.TotalInGroup)
}

// Result is the derived view plus counters over the full question set.
type Result struct {
	Groups         []Group
	CompletedCount int
	TotalCount     int
}

// Percent is the overall completion percentage, 0 when there are no questions.
func (r Result) Percent() float64 {
	return percent(r.CompletedCount, r.TotalCount)
}

// Derive computes the view. It is a pure function of its input.
//
// In category mode there is one group per tag in tag order and groups left
// empty by filtering are omitted; a question referencing no known tag
// appears in no group. Otherwise a single "All Questions" group is returned.
// The global counters ignore every filter.
func Derive(in Input) Result {
	res := Result{
		CompletedCount: in.Progress.CompletedCount(in.Questions),
		TotalCount:     len(in.Questions),
	}

	visible := filterStarred(in.Questions, in.Progress, in.Options.Starred)
	if in.Options.Randomize && in.Order != nil {
		visible = applyOrder(visible, in.Order)
	}

	if !in.Options.CategoryWise {
		res.Groups = []Group{newGroup(domain.AllQuestionsTag(), visible, in.Progress)}
		return res
	}

	for _, tag := range in.Tags {
		var qs []domain.Question
		for _, q := range visible {
			if q.HasTag(tag.ID) {
				qs = append(qs, q)
			}
		}
		if len(qs) == 0 {
			continue
		}
		res.Groups = append(res.Groups, newGroup(tag, qs, in.Progress))
	}
	return res
}

func newGroup(tag domain.Tag, qs []domain.Question, p domain.Progress) Group {
	if qs == nil {
		qs = []domain.Question{}
	}
	return Group{
		Tag:              tag,
		Questions:        qs,
		CompletedInGroup: p.CompletedCount(qs),
		TotalInGroup:     len(qs),
	}
}

func filterStarred(qs []domain.Question, p domain.Progress, starredOnly bool) []domain.Question {
	out := make([]domain.Question, 0, len(qs))
	for _, q := range qs {
		if starredOnly && !p.Get(q.ID).Starred {
			continue
		}
		out = append(out, q)
	}
	return out
}

// applyOrder reindexes qs by rank in order. Questions missing from order are
// dropped and repeated ids in order never duplicate a question.
func applyOrder(qs []domain.Question, order []string) []domain.Question {
	byID := make(map[string][]domain.Question, len(qs))
	for _, q := range qs {
		byID[q.ID] = append(byID[q.ID], q)
	}

	out := make([]domain.Question, 0, len(qs))
	seen := make(map[string]bool, len(order))
	for _, id := range order {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, byID[id]...)
	}
	return out
}

func percent(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}
