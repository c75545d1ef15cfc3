// Command regrepcli is a grep -E-compatible line filter backed by package
// regrep: it reads one line from standard input, matches it against the
// pattern given on the command line, and reports the result via exit code.
//
// Usage:
//
//	regrepcli -E <pattern>
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gregrep/regrep"
	"github.com/gregrep/regrep/parser"
)

const (
	exitMatch         = 0
	exitNoMatch       = 1
	exitUsageError    = 2
	exitPatternSyntax = 3
)

func main() {
	pattern, err := parseArgs(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stdout, err)
		os.Exit(exitUsageError)
	}

	matched, err := runMatch(os.Stdin, pattern)
	if err != nil {
		var syntaxErr *parser.SyntaxError
		if errors.As(err, &syntaxErr) {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(exitPatternSyntax)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsageError)
	}

	if matched {
		os.Exit(exitMatch)
	}
	os.Exit(exitNoMatch)
}

// parseArgs validates argv against the fixed "-E <pattern>" contract and
// returns the pattern. It is a pure function so the usage-error path is
// unit-testable without touching process exit codes.
func parseArgs(args []string) (pattern string, err error) {
	if len(args) != 3 || args[1] != "-E" {
		return "", fmt.Errorf("usage: %s -E <pattern>", progName(args))
	}
	return args[2], nil
}

func progName(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "regrepcli"
}

// runMatch reads a single line from r (up to and including the first
// newline, or EOF) and reports whether it matches pattern.
func runMatch(r io.Reader, pattern string) (bool, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read input: %w", err)
	}
	return regrep.MatchString(pattern, line)
}
