package domain

const (
	// DefaultTagID is the fallback tag for questions whose tags cannot be resolved.
	DefaultTagID = "default"
	// StarredTagID is the conventional tag for starred questions.
	StarredTagID = "starred"
	// AllQuestionsTagID identifies the synthetic group used when questions are not grouped by tag.
	AllQuestionsTagID = "all"
)

// Colors are the symbolic color tokens a tag may carry.
var Colors = []string{
	"bg-red-500",
	"bg-blue-500",
	"bg-green-500",
	"bg-purple-500",
	"bg-indigo-500",
	"bg-yellow-500",
	"bg-pink-500",
	"bg-gray-500",
}

// Tag is a user-defined category applied to questions.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TagPatch holds the fields to merge into a Tag. Nil fields are left untouched.
type TagPatch struct {
	Name  *string
	Color *string
}

// Apply merges the non-nil fields of p into t.
func (p TagPatch) Apply(t Tag) Tag {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Color != nil {
		t.Color = *p.Color
	}
	return t
}

// AllQuestionsTag is the pseudo-tag heading the ungrouped view.
func AllQuestionsTag() Tag {
	return Tag{ID: AllQuestionsTagID, Name: "All Questions", Color: "bg-gray-500"}
}

// DefaultTags returns a fresh copy of the built-in tag set used when no tags are stored.
func DefaultTags() []Tag {
	return []Tag{
		{ID: DefaultTagID, Name: "Default", Color: "bg-gray-500"},
		{ID: StarredTagID, Name: "Starred", Color: "bg-yellow-500"},
		{ID: "tag-1755331013001", Name: "Arrays", Color: "bg-blue-500"},
		{ID: "tag-1755331013002", Name: "Heap", Color: "bg-green-500"},
		{ID: "tag-1755331013586", Name: "Two Pointers", Color: "bg-blue-500"},
		{ID: "tag-1755331023426", Name: "Sliding Window", Color: "bg-indigo-500"},
		{ID: "tag-1755331030842", Name: "Stack", Color: "bg-purple-500"},
		{ID: "tag-1755331042314", Name: "Binary Search", Color: "bg-yellow-500"},
		{ID: "tag-1755331197882", Name: "Linked List", Color: "bg-blue-500"},
		{ID: "tag-1755331207258", Name: "Trees", Color: "bg-green-500"},
		{ID: "tag-1755331227874", Name: "Backtracking", Color: "bg-green-500"},
		{ID: "tag-1755331234297", Name: "Tries", Color: "bg-green-500"},
		{ID: "tag-1755331241474", Name: "Graphs", Color: "bg-red-500"},
		{ID: "tag-1755331246026", Name: "Advanced Graphs", Color: "bg-red-500"},
		{ID: "tag-1755331250530", Name: "DP 1D", Color: "bg-red-500"},
		{ID: "tag-1755331254538", Name: "DP 2D", Color: "bg-red-500"},
		{ID: "tag-1755331260530", Name: "Greedy", Color: "bg-pink-500"},
		{ID: "tag-1755331264842", Name: "Intervals", Color: "bg-pink-500"},
		{ID: "tag-1755331271499", Name: "Math", Color: "bg-blue-500"},
		{ID: "tag-1755331275314", Name: "Bit Manipulation", Color: "bg-blue-500"},
	}
}

// FindTag returns the first tag with the given id.
func FindTag(tags []Tag, id string) (Tag, bool) {
	for _, t := range tags {
		if t.ID == id {
			return t, true
		}
	}
	return Tag{}, false
}
