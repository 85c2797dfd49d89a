/*
Package markov provides a small, in-memory toolkit for building word-level
Markov chain models from text and using them to generate new text.

A Model tokenizes its corpus on whitespace and records, for every run of k
consecutive tokens (a State), each token observed right after it. Successor
lists keep duplicates, so picking a uniformly random entry weights successors
by how often they occurred. Generation starts from a supplied or random state
and repeatedly appends a successor until the requested length is reached or
the chain hits a state with nothing after it.

The transition table is built lazily on first use and never modified
afterwards, so one Model can serve concurrent generators.
*/
package markov
