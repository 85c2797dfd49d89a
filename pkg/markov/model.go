package markov

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
)

// Rand is the source of randomness used to pick starting states and
// successors. *rand.Rand from math/rand/v2 satisfies it. A Rand shared by
// goroutines calling the same Model must be safe for concurrent use.
type Rand interface {
	// IntN returns a value in [0, n). n is always positive.
	IntN(n int) int
}

// globalRand draws from the goroutine-safe top-level math/rand/v2 source.
type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

// Model is a word-level Markov chain over a fixed corpus. The transition table
// is built on first use and cached for the lifetime of the Model; the corpus
// and order never change after NewModel.
//
// A Model is safe for concurrent use once its options are set.
type Model struct {
	corpus    string
	order     int
	rnd       Rand
	logger    *slog.Logger
	buildOnce sync.Once
	table     *Table
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used by the model. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithRand sets the random source used for generation. A nil source is
// ignored. Default: the top-level math/rand/v2 source.
func WithRand(r Rand) Option {
	return func(m *Model) {
		if r != nil {
			m.rnd = r
		}
	}
}

// NewModel creates a Model over corpus whose states are order consecutive
// tokens. It returns ErrInvalidOrder if order is less than 1. The transition
// table is not built until it is first needed.
func NewModel(corpus string, order int, opts ...Option) (*Model, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}
	m := &Model{
		corpus: corpus,
		order:  order,
		rnd:    globalRand{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// SetLogger sets the logger for the Model. By default, all logs are discarded.
// It must not be called concurrently with other methods.
func (m *Model) SetLogger(logger *slog.Logger) {
	if logger != nil {
		m.logger = logger
	}
}

// Corpus returns the text the model was created from.
func (m *Model) Corpus() string {
	return m.corpus
}

// Order returns the number of tokens in each state.
func (m *Model) Order() int {
	return m.order
}

// Table returns the transition table, building it on the first call. Later
// calls, including concurrent ones, return the same table.
func (m *Model) Table() *Table {
	m.buildOnce.Do(func() {
		m.table = BuildTable(m.corpus, m.order)
		m.logger.Debug("Transition table built",
			slog.Int("order", m.order),
			slog.Int("tokens", m.table.tokens),
			slog.Int("states", m.table.Len()),
			slog.Int("transitions", m.table.Transitions()),
		)
	})
	return m.table
}

// NextTokens returns the distinct tokens observed after the state formed by
// words, with their frequencies and the sum of those frequencies. words must
// hold exactly Order whitespace-free tokens. If the state was never seen, it
// returns a nil slice and a total of 0.
func (m *Model) NextTokens(words ...string) ([]Successor, int, error) {
	if err := checkSeed(m.order, words); err != nil {
		return nil, 0, err
	}
	succ, total := m.Table().Frequencies(NewState(words...))
	return succ, total, nil
}
