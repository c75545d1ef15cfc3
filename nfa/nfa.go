// Package nfa compiles the AST defined by package ast into a Thompson-style
// nondeterministic finite automaton and simulates it against input. States
// are opaque StateIDs indexing a flat table; a State owns its own list of
// outgoing transitions, so the graph can be cyclic (quantifiers loop back)
// without any ownership cycle in the Go value graph itself.
package nfa

import "github.com/gregrep/regrep/ast"

// StateID identifies a state within a single NFA's state table.
type StateID uint32

// Sentinel is the byte the driver wraps around input to mark its start and
// end. ^ and $ compile to a Literal transition on this byte, which turns
// anchor matching into ordinary literal matching against augmented input.
// User patterns never produce this byte directly, so it cannot collide with
// a legitimate Literal transition compiled from the pattern text.
const Sentinel byte = 0x01

// Label identifies what a Transition matches.
type Label uint8

const (
	// LabelEpsilon transitions consume no input.
	LabelEpsilon Label = iota
	// LabelLiteral matches exactly one byte, Transition.Char.
	LabelLiteral
	// LabelAnyDigit matches one ASCII decimal digit.
	LabelAnyDigit
	// LabelAnyChar matches any single byte, including Sentinel.
	LabelAnyChar
	// LabelAnyCharIn matches any byte in Transition.Set.
	LabelAnyCharIn
	// LabelAnyCharNotIn matches any byte not in Transition.Set.
	LabelAnyCharNotIn
)

func (l Label) String() string {
	switch l {
	case LabelEpsilon:
		return "Epsilon"
	case LabelLiteral:
		return "Literal"
	case LabelAnyDigit:
		return "AnyDigit"
	case LabelAnyChar:
		return "AnyChar"
	case LabelAnyCharIn:
		return "AnyCharIn"
	case LabelAnyCharNotIn:
		return "AnyCharNotIn"
	default:
		return "Unknown"
	}
}

// Transition is one outgoing edge of a State.
type Transition struct {
	Label  Label
	Char   byte        // meaningful only for LabelLiteral
	Set    ast.CharSet // meaningful only for LabelAnyCharIn / LabelAnyCharNotIn
	Target StateID
}

// Matches reports whether c satisfies this transition's label. Epsilon
// transitions never match a byte; the simulator handles them separately
// while computing an epsilon-closure.
func (t Transition) Matches(c byte) bool {
	switch t.Label {
	case LabelLiteral:
		return c == t.Char
	case LabelAnyDigit:
		return c >= '0' && c <= '9'
	case LabelAnyChar:
		return true
	case LabelAnyCharIn:
		return t.Set.Contains(c)
	case LabelAnyCharNotIn:
		return !t.Set.Contains(c)
	default:
		return false
	}
}

// State owns a list of outgoing transitions. A state with two Epsilon
// transitions is a branch point (alternation, quantifier split); a state
// with zero transitions is terminal within the graph, though it may still
// be an accept state.
type State struct {
	ID          StateID
	Transitions []Transition
}

// NFA is a compiled automaton: a start state, a set of accept states, and a
// flat table of states indexed by StateID. It is built once by Compile and
// never mutated afterward, so a *NFA can be shared read-only across
// goroutines — e.g. matching the same compiled pattern against many lines
// concurrently.
type NFA struct {
	Start   StateID
	Accepts map[StateID]struct{}
	States  []State
}

// State returns the state with the given id. The caller must ensure id is
// in range; every id ever handed out by Compile satisfies that by
// construction.
func (n *NFA) State(id StateID) *State {
	return &n.States[id]
}

// IsAccept reports whether id names an accept state.
func (n *NFA) IsAccept(id StateID) bool {
	_, ok := n.Accepts[id]
	return ok
}

// NumStates returns the number of states in the automaton.
func (n *NFA) NumStates() int {
	return len(n.States)
}
