package markov

// Table is a transition table: for every state of k consecutive corpus
// tokens, the ordered list of tokens observed right after it. Duplicates are
// kept, so the length of each list weights its successors by frequency.
//
// A Table is never modified after BuildTable returns it. Accessors hand out
// copies, which makes a Table safe for concurrent readers.
type Table struct {
	order       int
	tokens      int
	states      []State // distinct states in order of first occurrence
	transitions map[State][]string
}

// BuildTable tokenizes corpus on whitespace and records, for every index i in
// [0, len(tokens)-order), that tokens[i+order] follows the state
// tokens[i:i+order]. Successors appear in corpus order. A corpus with no more
// than order tokens yields an empty table. An order below 1 also yields an
// empty table; NewModel rejects such orders before building.
//
// BuildTable is a pure function of its arguments.
func BuildTable(corpus string, order int) *Table {
	tokens := Tokenize(corpus)
	t := &Table{
		order:       order,
		tokens:      len(tokens),
		transitions: make(map[State][]string),
	}
	if order < 1 {
		return t
	}

	var keyBuf []byte
	for i := 0; i < len(tokens)-order; i++ {
		keyBuf = keyBuf[:0]
		for j, w := range tokens[i : i+order] {
			if j > 0 {
				keyBuf = append(keyBuf, stateSeparator...)
			}
			keyBuf = append(keyBuf, w...)
		}
		state := State(keyBuf)

		next, ok := t.transitions[state]
		if !ok {
			t.states = append(t.states, state)
		}
		t.transitions[state] = append(next, tokens[i+order])
	}
	return t
}

// Order returns the number of tokens in each state of the table.
func (t *Table) Order() int {
	return t.order
}

// Len returns the number of distinct states.
func (t *Table) Len() int {
	return len(t.states)
}

// Transitions returns the total number of recorded transitions, counting
// duplicates. For a non-empty table this is the corpus length minus the order.
func (t *Table) Transitions() int {
	var n int
	for _, next := range t.transitions {
		n += len(next)
	}
	return n
}

// States returns the distinct states in order of first occurrence.
func (t *Table) States() []State {
	out := make([]State, len(t.states))
	copy(out, t.states)
	return out
}

// Has reports whether state has at least one recorded successor.
func (t *Table) Has(state State) bool {
	return len(t.transitions[state]) > 0
}

// Successors returns a copy of the successor list of state, or nil if the
// state was never seen.
func (t *Table) Successors(state State) []string {
	next, ok := t.transitions[state]
	if !ok {
		return nil
	}
	out := make([]string, len(next))
	copy(out, next)
	return out
}

// Frequencies groups the successors of state by token. Successors are
// returned in order of first occurrence along with the sum of all their
// frequencies. An unknown state returns a nil slice and a total of 0.
func (t *Table) Frequencies(state State) ([]Successor, int) {
	next := t.transitions[state]
	if len(next) == 0 {
		return nil, 0
	}

	index := make(map[string]int, len(next))
	var succ []Successor
	for _, w := range next {
		if i, ok := index[w]; ok {
			succ[i].Freq++
			continue
		}
		index[w] = len(succ)
		succ = append(succ, Successor{Text: w, Freq: 1})
	}
	return succ, len(next)
}

// Map returns a deep copy of the table as a plain map.
func (t *Table) Map() map[State][]string {
	out := make(map[State][]string, len(t.transitions))
	for state, next := range t.transitions {
		cp := make([]string, len(next))
		copy(cp, next)
		out[state] = cp
	}
	return out
}

// successors returns the internal successor list without copying. Callers
// must not modify it.
func (t *Table) successors(state State) []string {
	return t.transitions[state]
}
