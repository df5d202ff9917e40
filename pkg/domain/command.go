package domain

import "strings"

// Command is the transient parse of one input line.
type Command struct {
	// Fields holds every whitespace-separated token; Fields[0] is the verb.
	Fields []string
}

// ParseCommand splits line on whitespace.
// The boolean is false for empty or whitespace-only lines, which are no-ops.
func ParseCommand(line string) (Command, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, false
	}
	return Command{Fields: fields}, true
}

// Verb returns the first token.
func (c Command) Verb() string {
	if len(c.Fields) == 0 {
		return ""
	}
	return c.Fields[0]
}

// Args returns the tokens after the verb.
func (c Command) Args() []string {
	if len(c.Fields) < 2 {
		return nil
	}
	return c.Fields[1:]
}
