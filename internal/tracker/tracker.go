// Package tracker implements the read-modify-write operations over the
// persisted questions, tags, progress and view options.
package tracker

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/iamshubhamjangle/trackle/internal/domain"
	"github.com/iamshubhamjangle/trackle/internal/storage"
	"github.com/iamshubhamjangle/trackle/internal/view"
)

// Tracker owns the store and the session-scoped random order.
// It assumes a single caller; it is not safe for concurrent use.
type Tracker struct {
	store   storage.Store
	log     zerolog.Logger
	session *view.Session
	newID   func() string
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger used for no-ops and recovered decode failures.
func WithLogger(l zerolog.Logger) Option {
	return func(t *Tracker) { t.log = l }
}

// WithSession replaces the random order session, e.g. with a seeded one.
func WithSession(s *view.Session) Option {
	return func(t *Tracker) { t.session = s }
}

// WithIDGenerator replaces the id source used by NewQuestion and NewTag.
func WithIDGenerator(f func() string) Option {
	return func(t *Tracker) { t.newID = f }
}

// New returns a Tracker reading and writing through store.
func New(store storage.Store, opts ...Option) *Tracker {
	t := &Tracker{
		store:   store,
		log:     zerolog.Nop(),
		session: view.NewSeededSession(uint64(time.Now().UnixNano())),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Session exposes the random order session.
func (t *Tracker) Session() *view.Session {
	return t.session
}

// View derives the current view, generating the session order on first need.
func (t *Tracker) View() (view.Result, error) {
	in, err := t.Snapshot()
	if err != nil {
		return view.Result{}, err
	}
	return view.Derive(in), nil
}

// Snapshot loads every collection and the current session order.
func (t *Tracker) Snapshot() (view.Input, error) {
	questions, err := t.Questions()
	if err != nil {
		return view.Input{}, err
	}
	tags, err := t.Tags()
	if err != nil {
		return view.Input{}, err
	}
	progress, err := t.Progress()
	if err != nil {
		return view.Input{}, err
	}
	opts, err := t.ViewOptions()
	if err != nil {
		return view.Input{}, err
	}
	return view.Input{
		Questions: questions,
		Tags:      tags,
		Progress:  progress,
		Options:   opts,
		Order:     t.session.Order(opts, questions),
	}, nil
}

// load decodes key into dst. It reports false when the key is absent or
// holds malformed JSON, in which case the caller falls back to a default.
func (t *Tracker) load(key string, dst any) (bool, error) {
	raw, ok, err := t.store.Get(key)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		t.log.Warn().Err(err).Str("key", key).Msg("stored value is malformed, using default")
		return false, nil
	}
	return true, nil
}

func (t *Tracker) save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := t.store.Set(key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Questions returns the stored questions, or none.
func (t *Tracker) Questions() ([]domain.Question, error) {
	var qs []domain.Question
	ok, err := t.load(storage.KeyQuestions, &qs)
	if err != nil || !ok {
		return []domain.Question{}, err
	}
	for i := range qs {
		qs[i] = coerceQuestion(qs[i])
	}
	return qs, nil
}

func coerceQuestion(q domain.Question) domain.Question {
	if !q.Difficulty.Valid() {
		q.Difficulty = domain.ParseDifficulty(string(q.Difficulty))
	}
	if q.Tags == nil {
		q.Tags = []string{}
	}
	return q
}

// Tags returns the stored tags, or the built-in set when none are stored.
func (t *Tracker) Tags() ([]domain.Tag, error) {
	var tags []domain.Tag
	ok, err := t.load(storage.KeyTags, &tags)
	if err != nil {
		return nil, err
	}
	if !ok || tags == nil {
		return domain.DefaultTags(), nil
	}
	return tags, nil
}

// Progress returns the stored progress mapping, or an empty one.
func (t *Tracker) Progress() (domain.Progress, error) {
	p := domain.Progress{}
	ok, err := t.load(storage.KeyProgress, &p)
	if err != nil || !ok || p == nil {
		return domain.Progress{}, err
	}
	return p, nil
}

// ViewOptions returns the stored options. Fields missing from the stored
// document keep their defaults.
func (t *Tracker) ViewOptions() (domain.ViewOptions, error) {
	opts := domain.DefaultViewOptions()
	ok, err := t.load(storage.KeyViewOptions, &opts)
	if err != nil || !ok {
		return domain.DefaultViewOptions(), err
	}
	return opts, nil
}

func (t *Tracker) saveQuestions(qs []domain.Question) error {
	if err := t.save(storage.KeyQuestions, qs); err != nil {
		return err
	}
	t.session.Reset()
	return nil
}

func (t *Tracker) saveTags(tags []domain.Tag) error {
	return t.save(storage.KeyTags, tags)
}

func (t *Tracker) saveProgress(p domain.Progress) error {
	return t.save(storage.KeyProgress, p)
}

func (t *Tracker) saveViewOptions(opts domain.ViewOptions) error {
	return t.save(storage.KeyViewOptions, opts)
}
