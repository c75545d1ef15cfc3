package ast

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindStart, "Start"},
		{KindEnd, "End"},
		{KindLiteral, "Literal"},
		{KindAnyDigit, "AnyDigit"},
		{KindAnyChar, "AnyChar"},
		{KindAnyCharIn, "AnyCharIn"},
		{KindAnyCharNotIn, "AnyCharNotIn"},
		{KindOneOrMore, "OneOrMore"},
		{KindKleeneStar, "KleeneStar"},
		{KindSequence, "Sequence"},
		{KindOr, "Or"},
		{Kind(99), "Kind(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestNodeKindMatchesType(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want Kind
	}{
		{"Start", Start{}, KindStart},
		{"End", End{}, KindEnd},
		{"Literal", Literal{Char: 'a'}, KindLiteral},
		{"AnyDigit", AnyDigit{}, KindAnyDigit},
		{"AnyChar", AnyChar{}, KindAnyChar},
		{"AnyCharIn", AnyCharIn{Set: Word}, KindAnyCharIn},
		{"AnyCharNotIn", AnyCharNotIn{Set: Space}, KindAnyCharNotIn},
		{"OneOrMore", OneOrMore{Elem: Literal{Char: 'a'}}, KindOneOrMore},
		{"KleeneStar", KleeneStar{Elem: Literal{Char: 'a'}}, KindKleeneStar},
		{"Sequence", Sequence{}, KindSequence},
		{"Or", Or{Left: Literal{Char: 'a'}, Right: Literal{Char: 'b'}}, KindOr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Kind(); got != tt.want {
				t.Errorf("%#v.Kind() = %v, want %v", tt.node, got, tt.want)
			}
		})
	}
}

func TestCharSetContains(t *testing.T) {
	tests := []struct {
		set  CharSet
		c    byte
		want bool
	}{
		{Word, 'a', true},
		{Word, 'Z', true},
		{Word, '9', true},
		{Word, '_', true},
		{Word, '-', false},
		{Space, ' ', true},
		{Space, '\t', true},
		{Space, 'x', false},
		{CharSet("abc"), 'a', true},
		{CharSet("abc"), 'd', false},
		{CharSet(nil), 'a', false},
	}

	for _, tt := range tests {
		if got := tt.set.Contains(tt.c); got != tt.want {
			t.Errorf("CharSet(%q).Contains(%q) = %v, want %v", tt.set, tt.c, got, tt.want)
		}
	}
}
