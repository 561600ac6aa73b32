package storage

// Keys under which the tracker persists its collections.
const (
	KeyQuestions   = "problem-list-questions"
	KeyTags        = "problem-list-tags"
	KeyProgress    = "problem-list-progress"
	KeyViewOptions = "problem-list-study-options"
)

// Store is a key-value store holding JSON documents. Writes are last-write-wins.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) ([]byte, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(key string) error
}
