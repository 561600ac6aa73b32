package domain

// QuestionProgress is the study state of one question.
type QuestionProgress struct {
	Completed bool `json:"completed"`
	Starred   bool `json:"starred"`
}

// Progress maps question ids to their study state. A missing entry means
// neither completed nor starred.
type Progress map[string]QuestionProgress

// Get returns the entry for id, or the zero value when absent.
func (p Progress) Get(id string) QuestionProgress {
	return p[id]
}

// CompletedCount counts the questions in qs marked completed.
func (p Progress) CompletedCount(qs []Question) int {
	n := 0
	for _, q := range qs {
		if p[q.ID].Completed {
			n++
		}
	}
	return n
}

// Clone returns a shallow copy of p that is safe to mutate.
func (p Progress) Clone() Progress {
	out := make(Progress, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
