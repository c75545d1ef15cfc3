// Package regrep implements the core of a grep -E-compatible line matcher:
// parse a pattern into an AST (package ast / package parser), compile the
// AST into a Thompson NFA (package nfa), and simulate that NFA against a
// line of input to answer a single yes/no question — does the pattern
// match somewhere within the input?
//
// Example:
//
//	re, err := regrep.Compile(`ca+ts`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("my caaaats are hungry") {
//	    fmt.Println("matched!")
//	}
package regrep

import (
	"github.com/gregrep/regrep/ast"
	"github.com/gregrep/regrep/nfa"
	"github.com/gregrep/regrep/parser"
)

// Regex is a compiled pattern, ready to match against input. A *Regex is
// immutable after Compile returns and is safe to use concurrently from
// multiple goroutines.
type Regex struct {
	pattern string
	prog    *nfa.NFA
}

// Compile parses pattern and compiles it into a Regex. The returned error,
// if any, is a *parser.SyntaxError describing exactly where and why the
// pattern is malformed.
//
// Example:
//
//	re, err := regrep.Compile(`\d+`)
func Compile(pattern string) (*Regex, error) {
	node, err := parser.Parse(pattern)
	if err != nil {
		return nil, err
	}

	// Wrap the pattern as .*P.* so matching becomes "search" rather than
	// "whole-string match": any prefix/suffix of unrelated input is
	// consumed by the surrounding KleeneStar(AnyChar) fragments.
	wrapped := ast.Sequence{Elems: []ast.Node{
		ast.KleeneStar{Elem: ast.AnyChar{}},
		node,
		ast.KleeneStar{Elem: ast.AnyChar{}},
	}}

	prog, err := nfa.Compile(wrapped)
	if err != nil {
		return nil, err
	}

	return &Regex{pattern: pattern, prog: prog}, nil
}

// MustCompile is like Compile but panics if pattern fails to parse. It is
// intended for patterns known to be valid ahead of time, e.g. a package
// level var.
//
// Example:
//
//	var logLine = regrep.MustCompile(`^\d\d\d\d-\d\d-\d\d`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regrep: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// MatchString reports whether s contains a match of the compiled pattern
// anywhere within it.
func (re *Regex) MatchString(s string) bool {
	return re.match(s)
}

// Match reports whether b contains a match of the compiled pattern
// anywhere within it.
func (re *Regex) Match(b []byte) bool {
	return re.match(string(b))
}

func (re *Regex) match(s string) bool {
	input := make([]byte, 0, len(s)+2)
	input = append(input, nfa.Sentinel)
	input = append(input, s...)
	input = append(input, nfa.Sentinel)
	return nfa.Run(re.prog, input)
}

// MatchString compiles pattern and reports whether input contains a match,
// in one call. It is the pure function `match(pattern, input) -> bool` the
// rest of this system is built around; callers compiling the same pattern
// repeatedly should call Compile once and reuse the *Regex instead.
func MatchString(pattern, input string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(input), nil
}
