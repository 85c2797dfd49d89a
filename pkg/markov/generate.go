package markov

import (
	"context"
	"log/slog"
	"strings"
)

// defaultLength is the number of output tokens, seed included, produced when
// WithLength is not given.
const defaultLength = 15

// generateOptions Is used by the generate functions to configure default options.
type generateOptions struct {
	length int
	seed   []string
	seeded bool
}

// GenerateOption is a function that configures generation parameters. It's used
// as a variadic argument in generation functions like Generate and GenerateStream.
type GenerateOption func(*generateOptions)

// WithLength sets the total number of tokens to produce, including the seed.
// Generation may stop earlier if the chain reaches a state with no recorded
// successor. If n is not larger than the seed, the seed alone is returned.
func WithLength(n int) GenerateOption {
	return func(o *generateOptions) { o.length = n }
}

// WithSeed sets the starting state. It must hold exactly Order tokens, each
// non-empty and free of whitespace, and must occur in the corpus. Without a
// seed, the starting state is chosen uniformly at random from the table.
func WithSeed(words ...string) GenerateOption {
	seed := make([]string, len(words))
	copy(seed, words)
	return func(o *generateOptions) {
		o.seed = seed
		o.seeded = true
	}
}

func newGenerateOptions(opts []GenerateOption) *generateOptions {
	options := &generateOptions{length: defaultLength}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// Generate walks the chain from a starting state and returns the produced
// tokens joined by single spaces. The output holds at most the requested
// length of tokens and ends early at a dead end, which is not an error.
//
// It returns ErrEmptyModel when no seed is given and the table is empty, a
// *SeedShapeError when the seed does not hold Order tokens, and a
// *SeedNotFoundError when the seed never occurs in the corpus.
func (m *Model) Generate(ctx context.Context, opts ...GenerateOption) (string, error) {
	options := newGenerateOptions(opts)

	w, err := m.startWalk(options)
	if err != nil {
		return "", err
	}

	terminatedEarly := false
	for len(w.words) < options.length {
		if _, ok := w.step(); !ok {
			terminatedEarly = true
			break
		}
	}

	if terminatedEarly {
		m.logger.DebugContext(ctx, "Generation terminated due to dead-end",
			slog.String("last_state", string(w.state)),
			slog.Int("generated_length", len(w.words)),
			slog.Int("target_length", options.length),
		)
	} else {
		m.logger.DebugContext(ctx, "Generation terminated by reaching target length",
			slog.Int("generated_length", len(w.words)),
			slog.Int("target_length", options.length),
		)
	}

	return strings.Join(w.words, stateSeparator), nil
}

// walk is the state of a single generation: the tokens produced so far and
// the state formed by the last order of them.
type walk struct {
	table *Table
	order int
	rnd   Rand
	words []string
	state State
}

// startWalk resolves the starting state and seeds the output with its tokens.
func (m *Model) startWalk(options *generateOptions) (*walk, error) {
	table := m.Table()

	var start State
	if options.seeded {
		if err := checkSeed(m.order, options.seed); err != nil {
			return nil, err
		}
		start = NewState(options.seed...)
		if !table.Has(start) {
			return nil, &SeedNotFoundError{State: start}
		}
	} else {
		if table.Len() == 0 {
			return nil, ErrEmptyModel
		}
		start = table.states[m.rnd.IntN(table.Len())]
	}

	return &walk{
		table: table,
		order: m.order,
		rnd:   m.rnd,
		words: start.Words(),
		state: start,
	}, nil
}

// step picks a successor of the current state uniformly from its list,
// appends it and advances the state. It reports false at a dead end.
func (w *walk) step() (string, bool) {
	next := w.table.successors(w.state)
	if len(next) == 0 {
		return "", false
	}
	token := next[w.rnd.IntN(len(next))]
	w.words = append(w.words, token)
	w.state = NewState(w.words[len(w.words)-w.order:]...)
	return token, true
}
