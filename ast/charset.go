package ast

import "slices"

// CharSet is an ordered list of characters tested by linear scan, used by
// AnyCharIn and AnyCharNotIn. Duplicates are permitted and harmless; no
// range syntax (a-z) is ever interpreted here, the parser always hands
// CharSet a fully expanded list of literal members.
type CharSet []byte

// Contains reports whether c appears anywhere in the set.
func (s CharSet) Contains(c byte) bool {
	return slices.Contains(s, c)
}

// Word is the \w / \W character set: ASCII letters, digits, and underscore.
var Word = CharSet("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_")

// Space is the \s / \S character set: space, tab, CR, LF.
var Space = CharSet(" \t\r\n")
