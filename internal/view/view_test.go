package view

import (
	"math"
	"reflect"
	"sort"
	"testing"

	"github.com/iamshubhamjangle/trackle/internal/domain"
)

func twoSumInput() Input {
	return Input{
		Tags: []domain.Tag{{ID: "t1", Name: "Arrays", Color: "blue"}},
		Questions: []domain.Question{
			{ID: "q1", Name: "Two Sum", URL: "...", Difficulty: domain.Easy, Tags: []string{"t1"}},
		},
		Progress: domain.Progress{},
		Options: domain.ViewOptions{
			CategoryWise:   true,
			ShowDifficulty: true,
		},
	}
}

func groupIDs(g Group) []string {
	return domain.IDs(g.Questions)
}

func TestDeriveSingleTag(t *testing.T) {
	res := Derive(twoSumInput())

	if len(res.Groups) != 1 {
		t.Fatalf("Expected 1 group, but got %d", len(res.Groups))
	}
	g := res.Groups[0]
	if g.Tag.ID != "t1" {
		t.Errorf("Expected group tag to be 't1', but got '%s'", g.Tag.ID)
	}
	if !reflect.DeepEqual(groupIDs(g), []string{"q1"}) {
		t.Errorf("Expected group questions to be [q1], but got %v", groupIDs(g))
	}
	if g.CompletedInGroup != 0 || g.TotalInGroup != 1 {
		t.Errorf("Expected group counters 0/1, but got %d/%d", g.CompletedInGroup, g.TotalInGroup)
	}
	if res.CompletedCount != 0 || res.TotalCount != 1 {
		t.Errorf("Expected global counters 0/1, but got %d/%d", res.CompletedCount, res.TotalCount)
	}
}

func TestDeriveCompletedQuestion(t *testing.T) {
	in := twoSumInput()
	in.Progress = domain.Progress{"q1": {Completed: true}}

	res := Derive(in)

	if res.Groups[0].CompletedInGroup != 1 {
		t.Errorf("Expected completedInGroup to be 1, but got %d", res.Groups[0].CompletedInGroup)
	}
	if res.CompletedCount != 1 {
		t.Errorf("Expected completedCount to be 1, but got %d", res.CompletedCount)
	}
	if res.Percent() != 100 {
		t.Errorf("Expected 100%%, but got %.1f", res.Percent())
	}
}

func TestDeriveStarredFilterOmitsEmptyGroups(t *testing.T) {
	in := twoSumInput()
	in.Options.Starred = true

	res := Derive(in)

	if len(res.Groups) != 0 {
		t.Errorf("Expected no groups, but got %d", len(res.Groups))
	}
	if res.TotalCount != 1 {
		t.Errorf("Expected totalCount to ignore filters, but got %d", res.TotalCount)
	}
}

func TestDeriveUntaggedQuestionIsInvisible(t *testing.T) {
	in := twoSumInput()
	in.Tags = nil
	in.Questions[0].Tags = nil

	res := Derive(in)

	if len(res.Groups) != 0 {
		t.Errorf("Expected no groups, but got %d", len(res.Groups))
	}
}

func TestDeriveDanglingTagReference(t *testing.T) {
	in := twoSumInput()
	in.Questions = append(in.Questions, domain.Question{ID: "q2", Tags: []string{"gone"}})

	res := Derive(in)

	if len(res.Groups) != 1 || !reflect.DeepEqual(groupIDs(res.Groups[0]), []string{"q1"}) {
		t.Errorf("Expected only q1 to be grouped, but got %+v", res.Groups)
	}
	if res.TotalCount != 2 {
		t.Errorf("Expected totalCount to be 2, but got %d", res.TotalCount)
	}
}

func TestDeriveAllQuestions(t *testing.T) {
	in := Input{
		Tags: []domain.Tag{{ID: "t1"}},
		Questions: []domain.Question{
			{ID: "q1", Tags: []string{"t1"}},
			{ID: "q2"},
			{ID: "q3", Tags: []string{"t1"}},
		},
		Progress: domain.Progress{"q2": {Starred: true}, "q3": {Starred: true, Completed: true}},
	}

	testCases := []struct {
		name     string
		starred  bool
		expected []string
		done     int
	}{
		{name: "no filter", expected: []string{"q1", "q2", "q3"}, done: 1},
		{name: "starred only", starred: true, expected: []string{"q2", "q3"}, done: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in.Options = domain.ViewOptions{Starred: tc.starred}
			res := Derive(in)

			if len(res.Groups) != 1 {
				t.Fatalf("Expected exactly 1 group, but got %d", len(res.Groups))
			}
			g := res.Groups[0]
			if g.Tag.ID != domain.AllQuestionsTagID || g.Tag.Name != "All Questions" {
				t.Errorf("Expected the synthetic group, but got %+v", g.Tag)
			}
			if !reflect.DeepEqual(groupIDs(g), tc.expected) {
				t.Errorf("Expected %v, but got %v", tc.expected, groupIDs(g))
			}
			if g.CompletedInGroup != tc.done {
				t.Errorf("Expected completedInGroup %d, but got %d", tc.done, g.CompletedInGroup)
			}
		})
	}
}

func TestDeriveAllQuestionsEmpty(t *testing.T) {
	res := Derive(Input{})

	if len(res.Groups) != 1 || res.Groups[0].Questions == nil || len(res.Groups[0].Questions) != 0 {
		t.Errorf("Expected one empty synthetic group, but got %+v", res.Groups)
	}
	if p := res.Percent(); p != 0 || math.IsNaN(p) {
		t.Errorf("Expected 0%% for an empty collection, but got %v", p)
	}
	if p := res.Groups[0].Percent(); p != 0 {
		t.Errorf("Expected 0%% for an empty group, but got %v", p)
	}
}

func TestDeriveGroupOrderFollowsTags(t *testing.T) {
	in := Input{
		Tags: []domain.Tag{{ID: "b"}, {ID: "a"}},
		Questions: []domain.Question{
			{ID: "q1", Tags: []string{"a"}},
			{ID: "q2", Tags: []string{"a", "b"}},
		},
		Options: domain.ViewOptions{CategoryWise: true},
	}

	res := Derive(in)

	if len(res.Groups) != 2 || res.Groups[0].Tag.ID != "b" || res.Groups[1].Tag.ID != "a" {
		t.Fatalf("Expected groups in tag order [b a], but got %+v", res.Groups)
	}
	if !reflect.DeepEqual(groupIDs(res.Groups[1]), []string{"q1", "q2"}) {
		t.Errorf("Expected collection order in group a, but got %v", groupIDs(res.Groups[1]))
	}
}

func TestDeriveCategoryMembership(t *testing.T) {
	in := Input{
		Tags: []domain.Tag{{ID: "t1"}, {ID: "t2"}, {ID: "t3"}},
		Questions: []domain.Question{
			{ID: "q1", Tags: []string{"t1", "t2"}},
			{ID: "q2", Tags: []string{"t2"}},
			{ID: "q3", Tags: []string{"x"}},
			{ID: "q4"},
			{ID: "q5", Tags: []string{"t3", "x"}},
		},
		Progress: domain.Progress{"q1": {Starred: true}, "q5": {Starred: true}},
	}

	for _, starred := range []bool{false, true} {
		in.Options = domain.ViewOptions{CategoryWise: true, Starred: starred}
		res := Derive(in)

		var got []string
		for _, g := range res.Groups {
			got = append(got, groupIDs(g)...)
		}

		var want []string
		for _, q := range in.Questions {
			if starred && !in.Progress.Get(q.ID).Starred {
				continue
			}
			for _, tag := range in.Tags {
				if q.HasTag(tag.ID) {
					want = append(want, q.ID)
				}
			}
		}
		sort.Strings(got)
		sort.Strings(want)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("starred=%v: expected grouped ids %v, but got %v", starred, want, got)
		}
	}
}

func TestDeriveRandomOrder(t *testing.T) {
	in := Input{
		Tags: []domain.Tag{{ID: "t1"}},
		Questions: []domain.Question{
			{ID: "q1", Tags: []string{"t1"}},
			{ID: "q2", Tags: []string{"t1"}},
			{ID: "q3", Tags: []string{"t1"}},
		},
		Options: domain.ViewOptions{CategoryWise: true, Randomize: true},
	}

	testCases := []struct {
		name     string
		order    []string
		expected []string
	}{
		{name: "permutation is authoritative", order: []string{"q3", "q1", "q2"}, expected: []string{"q3", "q1", "q2"}},
		{name: "missing ids are dropped", order: []string{"q2", "q1"}, expected: []string{"q2", "q1"}},
		{name: "repeated ids do not duplicate", order: []string{"q2", "q2", "q3", "q1"}, expected: []string{"q2", "q3", "q1"}},
		{name: "unknown ids are ignored", order: []string{"zz", "q1", "q2", "q3"}, expected: []string{"q1", "q2", "q3"}},
		{name: "no permutation keeps collection order", order: nil, expected: []string{"q1", "q2", "q3"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in.Order = tc.order
			res := Derive(in)
			if !reflect.DeepEqual(groupIDs(res.Groups[0]), tc.expected) {
				t.Errorf("Expected %v, but got %v", tc.expected, groupIDs(res.Groups[0]))
			}
		})
	}
}

func TestDeriveIgnoresOrderWhenNotRandomized(t *testing.T) {
	in := Input{
		Questions: []domain.Question{{ID: "q1"}, {ID: "q2"}},
		Order:     []string{"q2"},
	}
	res := Derive(in)
	if !reflect.DeepEqual(groupIDs(res.Groups[0]), []string{"q1", "q2"}) {
		t.Errorf("Expected collection order, but got %v", groupIDs(res.Groups[0]))
	}
}

func TestDeriveIsStable(t *testing.T) {
	qs := []domain.Question{{ID: "q1"}, {ID: "q2"}, {ID: "q3"}, {ID: "q4"}}
	opts := domain.ViewOptions{Randomize: true}
	s := NewSeededSession(7)

	first := Derive(Input{Questions: qs, Options: opts, Order: s.Order(opts, qs)})
	second := Derive(Input{Questions: qs, Options: opts, Order: s.Order(opts, qs)})

	if !reflect.DeepEqual(groupIDs(first.Groups[0]), groupIDs(second.Groups[0])) {
		t.Errorf("Expected identical ordering across renders, but got %v and %v",
			groupIDs(first.Groups[0]), groupIDs(second.Groups[0]))
	}
}
