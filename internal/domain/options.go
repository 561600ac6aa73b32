package domain

// ViewOptions are the persisted display preferences.
type ViewOptions struct {
	ShowDifficulty bool `json:"showDifficulty"`
	Randomize      bool `json:"randomize"`
	CategoryWise   bool `json:"categoryWise"`
	AllFolded      bool `json:"allFolded"`
	Starred        bool `json:"starred"`
}

// DefaultViewOptions returns the options used when none are stored.
func DefaultViewOptions() ViewOptions {
	return ViewOptions{
		ShowDifficulty: true,
		Randomize:      false,
		CategoryWise:   true,
		AllFolded:      false,
		Starred:        false,
	}
}
