package domain

import "strings"

// Difficulty is the rated difficulty of a practice question.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Difficulties lists the valid difficulties in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty matches s against the known difficulties ignoring case.
// Unknown values fall back to Medium.
func ParseDifficulty(s string) Difficulty {
	s = strings.TrimSpace(s)
	for _, d := range Difficulties {
		if strings.EqualFold(s, string(d)) {
			return d
		}
	}
	return Medium
}

// Valid reports whether d is one of Easy, Medium or Hard.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Question is a single practice problem.
//
// Completed and Starred are kept for import/export compatibility only.
// The runtime state of a question lives in Progress.
type Question struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	URL        string     `json:"url"`
	Difficulty Difficulty `json:"difficulty"`
	Tags       []string   `json:"tags"`
	Completed  bool       `json:"completed"`
	Starred    bool       `json:"starred"`
}

// HasTag reports whether the question references the tag id.
func (q Question) HasTag(tagID string) bool {
	for _, t := range q.Tags {
		if t == tagID {
			return true
		}
	}
	return false
}

// WithoutTag returns a copy of q with every reference to tagID removed.
func (q Question) WithoutTag(tagID string) Question {
	tags := make([]string, 0, len(q.Tags))
	for _, t := range q.Tags {
		if t != tagID {
			tags = append(tags, t)
		}
	}
	q.Tags = tags
	return q
}

// QuestionPatch holds the fields to merge into a Question. Nil fields are left untouched.
type QuestionPatch struct {
	Name       *string
	URL        *string
	Difficulty *Difficulty
	Tags       []string
	Completed  *bool
	Starred    *bool
}

// Apply merges the non-nil fields of p into q.
func (p QuestionPatch) Apply(q Question) Question {
	if p.Name != nil {
		q.Name = *p.Name
	}
	if p.URL != nil {
		q.URL = *p.URL
	}
	if p.Difficulty != nil {
		q.Difficulty = *p.Difficulty
	}
	if p.Tags != nil {
		q.Tags = append([]string(nil), p.Tags...)
	}
	if p.Completed != nil {
		q.Completed = *p.Completed
	}
	if p.Starred != nil {
		q.Starred = *p.Starred
	}
	return q
}

// IDs returns the ids of qs in order.
func IDs(qs []Question) []string {
	ids := make([]string, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}
