package markov

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyModel is returned when generation needs a random starting state
	// but the transition table has none, usually because the corpus is not
	// longer than the model order.
	ErrEmptyModel = errors.New("markov: model has no transitions")
	// ErrInvalidSeedShape is matched by every *SeedShapeError.
	ErrInvalidSeedShape = errors.New("markov: invalid seed shape")
	// ErrSeedNotFound is matched by every *SeedNotFoundError.
	ErrSeedNotFound = errors.New("markov: seed not found")
	// ErrInvalidOrder is returned by NewModel for an order below 1.
	ErrInvalidOrder = errors.New("markov: order must be at least 1")
)

// SeedShapeError reports a seed that cannot be a state of the model, either
// because it does not hold exactly Order tokens or because one of its tokens
// is empty or contains whitespace.
type SeedShapeError struct {
	Order int
	Seed  []string
}

func (e *SeedShapeError) Error() string {
	return fmt.Sprintf("markov: seed %q must be exactly %d whitespace-free token(s)", e.Seed, e.Order)
}

// Is reports whether target is ErrInvalidSeedShape.
func (e *SeedShapeError) Is(target error) bool {
	return target == ErrInvalidSeedShape
}

// SeedNotFoundError reports a correctly shaped seed that never occurs as a
// state in the transition table.
type SeedNotFoundError struct {
	State State
}

func (e *SeedNotFoundError) Error() string {
	return fmt.Sprintf("markov: seed '%s' not found in corpus", e.State)
}

// Is reports whether target is ErrSeedNotFound.
func (e *SeedNotFoundError) Is(target error) bool {
	return target == ErrSeedNotFound
}

// checkSeed validates that words can form a state of the given order.
func checkSeed(order int, words []string) error {
	if len(words) != order {
		return &SeedShapeError{Order: order, Seed: words}
	}
	for _, w := range words {
		if w == "" || strings.ContainsFunc(w, isSpace) {
			return &SeedShapeError{Order: order, Seed: words}
		}
	}
	return nil
}
