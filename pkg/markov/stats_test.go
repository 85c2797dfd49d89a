package markov

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	testCases := []struct {
		name     string
		corpus   string
		order    int
		expected Stats
	}{
		{
			name:   "Order one",
			corpus: catCorpus,
			order:  1,
			expected: Stats{
				Order:             1,
				Tokens:            9,
				Vocabulary:        6,
				States:            5,
				Transitions:       8,
				UniqueTransitions: 7,
				DeadEnds:          1,
			},
		},
		{
			name:   "Order two",
			corpus: catCorpus,
			order:  2,
			expected: Stats{
				Order:             2,
				Tokens:            9,
				Vocabulary:        6,
				States:            6,
				Transitions:       7,
				UniqueTransitions: 7,
				DeadEnds:          1,
			},
		},
		{
			name:   "Cycle has no dead ends",
			corpus: "a b a b a",
			order:  1,
			expected: Stats{
				Order:             1,
				Tokens:            5,
				Vocabulary:        2,
				States:            2,
				Transitions:       4,
				UniqueTransitions: 2,
			},
		},
		{
			name:     "Empty corpus",
			corpus:   "",
			order:    3,
			expected: Stats{Order: 3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := setupTestModel(t, tc.corpus, tc.order)
			assert.Equal(t, tc.expected, m.Stats())
		})
	}
}
