package view

import (
	"math/rand/v2"
	"slices"

	"github.com/iamshubhamjangle/trackle/internal/domain"
)

// Shuffle returns a random permutation of ids. ids is not modified.
func Shuffle(ids []string, rng *rand.Rand) []string {
	out := slices.Clone(ids)
	if out == nil {
		out = []string{}
	}
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Session holds the random question order for the lifetime of one study
// session. The order is built once and reused across renders until it is
// invalidated.
type Session struct {
	rng   *rand.Rand
	order []string
	// ids the order was built from, in collection order
	basis []string
}

// NewSession returns a session drawing permutations from rng.
func NewSession(rng *rand.Rand) *Session {
	return &Session{rng: rng}
}

// NewSeededSession returns a session with a deterministic PCG source.
func NewSeededSession(seed uint64) *Session {
	return NewSession(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Order returns the permutation to use for questions under opts. It is nil
// when randomize is off. When randomize is on and no permutation exists,
// one is generated.
func (s *Session) Order(opts domain.ViewOptions, questions []domain.Question) []string {
	s.Sync(opts, questions)
	if !opts.Randomize {
		return nil
	}
	if s.order == nil {
		s.Regenerate(questions)
	}
	return s.order
}

// Regenerate discards the current permutation and shuffles questions anew.
func (s *Session) Regenerate(questions []domain.Question) {
	s.basis = domain.IDs(questions)
	s.order = Shuffle(s.basis, s.rng)
}

// Sync drops the permutation when randomize is off or when the question
// collection no longer matches the one it was built from.
func (s *Session) Sync(opts domain.ViewOptions, questions []domain.Question) {
	if s.order == nil {
		return
	}
	if !opts.Randomize || !slices.Equal(s.basis, domain.IDs(questions)) {
		s.Reset()
	}
}

// Reset discards the permutation.
func (s *Session) Reset() {
	s.order = nil
	s.basis = nil
}

// Active reports whether a permutation is currently held.
func (s *Session) Active() bool {
	return s.order != nil
}
