package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/gregrep/regrep/parser"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"valid", []string{"regrepcli", "-E", "abc"}, "abc", false},
		{"missing flag", []string{"regrepcli", "abc"}, "", true},
		{"wrong flag", []string{"regrepcli", "-F", "abc"}, "", true},
		{"too few args", []string{"regrepcli", "-E"}, "", true},
		{"too many args", []string{"regrepcli", "-E", "abc", "extra"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseArgs(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseArgs(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestRunMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"match", "abc", "xabcx\n", true},
		{"no match", "abc", "xyz\n", false},
		{"match without trailing newline", "abc", "abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runMatch(strings.NewReader(tt.input), tt.pattern)
			if err != nil {
				t.Fatalf("runMatch: %v", err)
			}
			if got != tt.want {
				t.Errorf("runMatch(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
		})
	}
}

func TestRunMatchReturnsSyntaxError(t *testing.T) {
	_, err := runMatch(strings.NewReader("abc\n"), "[abc")
	if err == nil {
		t.Fatal("expected an error for a malformed pattern")
	}
	var syntaxErr *parser.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected *parser.SyntaxError, got %T", err)
	}
}
