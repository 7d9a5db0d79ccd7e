package command

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseResult holds the parsed command name and arguments from a text line.
type ParseResult struct {
	// Command is the first word of the input, lowercased.
	Command string
	// Args are the remaining words after the command.
	Args []string
	// RawArgs is the raw text after the command.
	RawArgs string
}

// Parse splits a text line into a command and arguments.
//
// Postcondition: Returns a ParseResult. If line is blank, Command is empty.
func Parse(line string) ParseResult {
	line = strings.TrimSpace(line)
	if line == "" {
		return ParseResult{}
	}

	cmd, rest, found := strings.Cut(line, " ")
	if !found {
		return ParseResult{Command: strings.ToLower(cmd)}
	}

	rest = strings.TrimSpace(rest)
	var args []string
	if rest != "" {
		args = strings.Fields(rest)
	}
	return ParseResult{
		Command: strings.ToLower(cmd),
		Args:    args,
		RawArgs: rest,
	}
}

// Int parses argument i as an integer.
//
// Postcondition: Returns the value, or an error naming the missing or
// malformed argument.
func (p ParseResult) Int(i int) (int, error) {
	if i < 0 || i >= len(p.Args) {
		return 0, fmt.Errorf("missing argument %d", i+1)
	}
	n, err := strconv.Atoi(p.Args[i])
	if err != nil {
		return 0, fmt.Errorf("argument %d: %q is not a number", i+1, p.Args[i])
	}
	return n, nil
}

// Rest returns the raw text after the first n arguments, preserving inner spacing.
func (p ParseResult) Rest(n int) string {
	s := p.RawArgs
	for i := 0; i < n; i++ {
		s = strings.TrimSpace(s)
		_, after, found := strings.Cut(s, " ")
		if !found {
			return ""
		}
		s = after
	}
	return strings.TrimSpace(s)
}
