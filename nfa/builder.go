package nfa

import "github.com/gregrep/regrep/internal/conv"

// Builder accumulates states and transitions for a single NFA under
// construction. Unlike a builder that patches forward references, this one
// never needs to: the compiler always compiles a child fragment completely
// (and so knows its start and accept ids) before wiring transitions to or
// from it, so every AddTransition call already has a real target in hand.
type Builder struct {
	states []State
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddState allocates a fresh state with no outgoing transitions and
// returns its id.
func (b *Builder) AddState() StateID {
	id := conv.IntToUint32(len(b.states))
	b.states = append(b.states, State{ID: StateID(id)})
	return StateID(id)
}

// AddTransition appends an outgoing transition to from.
func (b *Builder) AddTransition(from StateID, t Transition) {
	b.states[from].Transitions = append(b.states[from].Transitions, t)
}

// AddEpsilon appends an Epsilon transition from -> to.
func (b *Builder) AddEpsilon(from, to StateID) {
	b.AddTransition(from, Transition{Label: LabelEpsilon, Target: to})
}

// Validate walks every transition in every state and confirms its target
// is within the table, catching a dangling reference before Build hands
// back an automaton the simulator would otherwise index out of bounds on.
func (b *Builder) Validate() error {
	for _, s := range b.states {
		for _, t := range s.Transitions {
			if int(t.Target) >= len(b.states) {
				return &BuildError{
					Message: "transition target out of range",
					StateID: s.ID,
				}
			}
		}
	}
	return nil
}

// Build validates the builder's state table and returns an immutable NFA
// rooted at start, accepting at accept.
func (b *Builder) Build(start, accept StateID) (*NFA, error) {
	if int(start) >= len(b.states) {
		return nil, &BuildError{Message: "start state out of range", StateID: start}
	}
	if int(accept) >= len(b.states) {
		return nil, &BuildError{Message: "accept state out of range", StateID: accept}
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	return &NFA{
		Start:   start,
		Accepts: map[StateID]struct{}{accept: {}},
		States:  b.states,
	}, nil
}
