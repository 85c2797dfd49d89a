package markov

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected []string
	}{
		{name: "Empty", text: "", expected: []string{}},
		{name: "Only whitespace", text: " \t\n ", expected: []string{}},
		{name: "Single word", text: "word", expected: []string{"word"}},
		{name: "Whitespace runs", text: "  a \t b\n\nc  ", expected: []string{"a", "b", "c"}},
		{name: "Punctuation kept", text: "hello, world.", expected: []string{"hello,", "world."}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.text)
			if len(tc.expected) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestState(t *testing.T) {
	s := NewState("the", "cat")
	assert.Equal(t, State("the cat"), s)
	assert.Equal(t, []string{"the", "cat"}, s.Words())
	assert.Equal(t, 2, s.Len())

	single := NewState("the")
	assert.Equal(t, State("the"), single)
	assert.Equal(t, 1, single.Len())

	var empty State
	assert.Nil(t, empty.Words())
	assert.Equal(t, 0, empty.Len())

	// Equality is position for position.
	assert.NotEqual(t, NewState("cat", "the"), s)
	assert.Equal(t, NewState("the", "cat"), s)
}
