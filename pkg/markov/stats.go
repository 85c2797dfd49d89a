package markov

import "strings"

// Stats holds aggregated statistics for a single Markov model.
type Stats struct {
	Order             int // The number of tokens in each state
	Tokens            int // The number of tokens in the corpus
	Vocabulary        int // The number of distinct tokens in the corpus
	States            int // The number of distinct states with at least one successor
	Transitions       int // The number of recorded transitions, duplicates included
	UniqueTransitions int // The number of distinct state->successor links
	DeadEnds          int // The number of distinct states reachable by one transition that have no successors
}

// Stats returns a snapshot of statistics for the model, building the
// transition table if needed.
func (m *Model) Stats() Stats {
	t := m.Table()

	vocab := make(map[string]struct{})
	for _, w := range Tokenize(m.corpus) {
		vocab[w] = struct{}{}
	}

	stats := Stats{
		Order:      t.order,
		Tokens:     t.tokens,
		Vocabulary: len(vocab),
		States:     t.Len(),
	}

	deadEnds := make(map[State]struct{})
	for _, state := range t.states {
		succ, total := t.Frequencies(state)
		stats.Transitions += total
		stats.UniqueTransitions += len(succ)

		// The state after a transition drops the oldest token of this one.
		var tail string
		if t.order > 1 {
			words := state.Words()
			tail = strings.Join(words[1:], stateSeparator) + stateSeparator
		}
		for _, s := range succ {
			next := State(tail + s.Text)
			if !t.Has(next) {
				deadEnds[next] = struct{}{}
			}
		}
	}
	stats.DeadEnds = len(deadEnds)

	return stats
}
