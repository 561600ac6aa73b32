package tracker

import (
	"slices"

	"github.com/iamshubhamjangle/trackle/internal/domain"
)

// NewTag builds a tag with a freshly minted id.
func (t *Tracker) NewTag(name, color string) domain.Tag {
	return domain.Tag{ID: "tag-" + t.newID(), Name: name, Color: color}
}

// TagByID returns the first tag with id.
func (t *Tracker) TagByID(id string) (domain.Tag, bool, error) {
	tags, err := t.Tags()
	if err != nil {
		return domain.Tag{}, false, err
	}
	tag, ok := domain.FindTag(tags, id)
	return tag, ok, nil
}

// AddTag appends tag. The id must be supplied by the caller; uniqueness is
// not enforced and lookups by id return the first match.
func (t *Tracker) AddTag(tag domain.Tag) error {
	tags, err := t.Tags()
	if err != nil {
		return err
	}
	return t.saveTags(append(tags, tag))
}

// UpdateTag merges patch into the first tag with id. Unknown ids are a no-op.
func (t *Tracker) UpdateTag(id string, patch domain.TagPatch) error {
	tags, err := t.Tags()
	if err != nil {
		return err
	}
	i := slices.IndexFunc(tags, func(tag domain.Tag) bool { return tag.ID == id })
	if i < 0 {
		t.log.Debug().Str("tag_id", id).Msg("update of unknown tag ignored")
		return nil
	}
	tags[i] = patch.Apply(tags[i])
	return t.saveTags(tags)
}

// DeleteTag removes the tag and strips its id from every question.
func (t *Tracker) DeleteTag(id string) error {
	tags, err := t.Tags()
	if err != nil {
		return err
	}
	questions, err := t.Questions()
	if err != nil {
		return err
	}

	kept := slices.DeleteFunc(tags, func(tag domain.Tag) bool { return tag.ID == id })
	if err := t.saveTags(kept); err != nil {
		return err
	}

	changed := false
	for i, q := range questions {
		if q.HasTag(id) {
			questions[i] = q.WithoutTag(id)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return t.saveQuestions(questions)
}

// ReorderTags replaces the tag collection with ids' order. ids must name
// exactly the current tags; anything else is a no-op.
func (t *Tracker) ReorderTags(ids []string) error {
	tags, err := t.Tags()
	if err != nil {
		return err
	}

	current := make([]string, len(tags))
	for i, tag := range tags {
		current[i] = tag.ID
	}
	want := slices.Clone(ids)
	slices.Sort(current)
	slices.Sort(want)
	if !slices.Equal(current, want) {
		t.log.Debug().Strs("ids", ids).Msg("reorder is not a permutation of the tags, ignored")
		return nil
	}

	// Duplicate ids are consumed in their existing relative order.
	byID := make(map[string][]domain.Tag, len(tags))
	for _, tag := range tags {
		byID[tag.ID] = append(byID[tag.ID], tag)
	}
	reordered := make([]domain.Tag, 0, len(tags))
	for _, id := range ids {
		reordered = append(reordered, byID[id][0])
		byID[id] = byID[id][1:]
	}
	return t.saveTags(reordered)
}

// MoveTag shifts the tag with id by delta positions, clamped to the bounds.
func (t *Tracker) MoveTag(id string, delta int) error {
	tags, err := t.Tags()
	if err != nil {
		return err
	}
	from := slices.IndexFunc(tags, func(tag domain.Tag) bool { return tag.ID == id })
	if from < 0 {
		t.log.Debug().Str("tag_id", id).Msg("move of unknown tag ignored")
		return nil
	}
	to := min(max(from+delta, 0), len(tags)-1)

	ids := make([]string, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}
	moved := ids[from]
	ids = slices.Delete(ids, from, from+1)
	ids = slices.Insert(ids, to, moved)
	return t.ReorderTags(ids)
}
