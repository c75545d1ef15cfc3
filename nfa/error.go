package nfa

import "fmt"

// BuildError reports an invariant violation while constructing an NFA: a
// transition referencing a state id outside the table, or a start/accept
// id that was never added. These can only arise from a bug in the compiler
// itself — a parser that only ever emits well-formed ASTs cannot trigger
// one through any legal pattern.
type BuildError struct {
	Message string
	StateID StateID
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("nfa: build error at state %d: %s", e.StateID, e.Message)
}
