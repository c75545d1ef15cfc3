package nfa

import "github.com/gregrep/regrep/internal/sparse"

// Run simulates n against the entirety of input, returning true iff some
// path through the automaton consumes every byte and ends on an accept
// state. Run never panics on its input; a malformed or merely
// non-matching input is simply a false result.
func Run(n *NFA, input []byte) bool {
	capacity := uint32(n.NumStates())
	current := sparse.NewSet(capacity)
	next := sparse.NewSet(capacity)

	addClosure(n, current, n.Start)

	for _, c := range input {
		next.Clear()
		for _, id := range current.Values() {
			for _, t := range n.State(StateID(id)).Transitions {
				if t.Label != LabelEpsilon && t.Matches(c) {
					addClosure(n, next, t.Target)
				}
			}
		}
		current, next = next, current
		if current.IsEmpty() {
			return false
		}
	}

	for _, id := range current.Values() {
		if n.IsAccept(StateID(id)) {
			return true
		}
	}
	return false
}

// addClosure adds id, and every state reachable from it by following only
// Epsilon transitions, to set. Insert's "already present" check doubles as
// the cycle guard: a state reached twice through different epsilon paths
// (or through a quantifier's loop-back edge) is only ever expanded once.
func addClosure(n *NFA, set *sparse.Set, id StateID) {
	if !set.Insert(uint32(id)) {
		return
	}
	for _, t := range n.State(id).Transitions {
		if t.Label == LabelEpsilon {
			addClosure(n, set, t.Target)
		}
	}
}
