package nfa

import (
	"fmt"

	"github.com/gregrep/regrep/ast"
)

// fragment is a partially wired piece of NFA with exactly one start and one
// accept state, the unit compileNode builds and combines.
type fragment struct {
	start  StateID
	accept StateID
}

// Compile builds an NFA from node via a bottom-up Thompson construction: a
// monotonic id counter (the Builder's state slice) is shared across the
// whole tree, and every combinator below reuses its children's start/accept
// ids rather than introducing redundant wrapper states where the
// construction allows it.
func Compile(node ast.Node) (*NFA, error) {
	b := NewBuilder()
	frag, err := compileNode(b, node)
	if err != nil {
		return nil, err
	}
	return b.Build(frag.start, frag.accept)
}

func compileNode(b *Builder, node ast.Node) (fragment, error) {
	switch n := node.(type) {
	case ast.Start:
		return compileByte(b, Sentinel), nil
	case ast.End:
		return compileByte(b, Sentinel), nil
	case ast.Literal:
		return compileByte(b, n.Char), nil
	case ast.AnyDigit:
		return compileLabel(b, Transition{Label: LabelAnyDigit}), nil
	case ast.AnyChar:
		return compileLabel(b, Transition{Label: LabelAnyChar}), nil
	case ast.AnyCharIn:
		return compileLabel(b, Transition{Label: LabelAnyCharIn, Set: n.Set}), nil
	case ast.AnyCharNotIn:
		return compileLabel(b, Transition{Label: LabelAnyCharNotIn, Set: n.Set}), nil
	case ast.OneOrMore:
		return compileOneOrMore(b, n)
	case ast.KleeneStar:
		return compileKleeneStar(b, n)
	case ast.Sequence:
		return compileSequence(b, n)
	case ast.Or:
		return compileOr(b, n)
	default:
		panic(fmt.Sprintf("nfa: unhandled ast node %T", node))
	}
}

// compileByte compiles a single-byte literal transition, used directly for
// ast.Literal and for the sentinel-encoded anchors ast.Start/ast.End.
func compileByte(b *Builder, c byte) fragment {
	return compileLabel(b, Transition{Label: LabelLiteral, Char: c})
}

// compileLabel wires two fresh states start -> [t] -> accept, filling in
// t.Target once accept is known.
func compileLabel(b *Builder, t Transition) fragment {
	start := b.AddState()
	accept := b.AddState()
	t.Target = accept
	b.AddTransition(start, t)
	return fragment{start: start, accept: accept}
}

// compileSequence chains each child's accept to the next child's start via
// Epsilon. An empty sequence (the empty branch the parser builds for "?";
// an empty group "()" parses to AnyChar instead) compiles to two fresh
// states joined by Epsilon, so it matches only the empty string.
func compileSequence(b *Builder, n ast.Sequence) (fragment, error) {
	if len(n.Elems) == 0 {
		start := b.AddState()
		accept := b.AddState()
		b.AddEpsilon(start, accept)
		return fragment{start: start, accept: accept}, nil
	}

	first, err := compileNode(b, n.Elems[0])
	if err != nil {
		return fragment{}, err
	}
	composite := fragment{start: first.start, accept: first.accept}

	for _, elem := range n.Elems[1:] {
		next, err := compileNode(b, elem)
		if err != nil {
			return fragment{}, err
		}
		b.AddEpsilon(composite.accept, next.start)
		composite.accept = next.accept
	}
	return composite, nil
}

// compileOr builds a fresh split state epsilon-linked to both branch
// starts, and a fresh join state both branch accepts epsilon-link to.
func compileOr(b *Builder, n ast.Or) (fragment, error) {
	left, err := compileNode(b, n.Left)
	if err != nil {
		return fragment{}, err
	}
	right, err := compileNode(b, n.Right)
	if err != nil {
		return fragment{}, err
	}

	start := b.AddState()
	accept := b.AddState()
	b.AddEpsilon(start, left.start)
	b.AddEpsilon(start, right.start)
	b.AddEpsilon(left.accept, accept)
	b.AddEpsilon(right.accept, accept)

	return fragment{start: start, accept: accept}, nil
}

// compileKleeneStar reuses the child's own start and accept as the
// composite's: a back edge (accept -> start) allows repetition and a skip
// edge (start -> accept) allows zero occurrences.
func compileKleeneStar(b *Builder, n ast.KleeneStar) (fragment, error) {
	child, err := compileNode(b, n.Elem)
	if err != nil {
		return fragment{}, err
	}
	b.AddEpsilon(child.accept, child.start)
	b.AddEpsilon(child.start, child.accept)
	return child, nil
}

// compileOneOrMore is compileKleeneStar without the skip edge: at least one
// occurrence of the child is required.
func compileOneOrMore(b *Builder, n ast.OneOrMore) (fragment, error) {
	child, err := compileNode(b, n.Elem)
	if err != nil {
		return fragment{}, err
	}
	b.AddEpsilon(child.accept, child.start)
	return child, nil
}
