package markov

import (
	"strings"
	"unicode"
)

// stateSeparator joins the tokens of a State. Tokens come from whitespace
// splitting and never contain it, so the joined form is unambiguous.
const stateSeparator = " "

// State is the context of a Markov chain: the k most recent tokens, joined by
// a single space. Two states are equal exactly when their tokens are equal
// position for position, so State is usable directly as a map key.
type State string

// NewState builds the State for the given tokens. The caller is responsible
// for the tokens being whitespace-free; Tokenize guarantees this for corpus
// tokens and seeds are checked before use.
func NewState(words ...string) State {
	return State(strings.Join(words, stateSeparator))
}

// Words returns the tokens of the state in order.
func (s State) Words() []string {
	if s == "" {
		return nil
	}
	return strings.Split(string(s), stateSeparator)
}

// Len returns the number of tokens in the state.
func (s State) Len() int {
	if s == "" {
		return 0
	}
	return strings.Count(string(s), stateSeparator) + 1
}

// Token is a single word emitted by GenerateStream. Seed is set for the
// tokens that came from the starting state rather than from a transition.
type Token struct {
	Text string
	Seed bool
}

// Successor is a distinct token observed after a state, together with the
// number of times it was observed there.
type Successor struct {
	Text string
	Freq int
}

// Tokenize splits text on runs of whitespace. An empty or all-whitespace
// text yields no tokens.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}
