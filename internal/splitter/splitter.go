// Package splitter turns raw NDJSON input into ordered candidate lines.
//
// A line boundary is a '\n'; a '\r' immediately before it belongs to the
// terminator and is stripped. A terminator at end-of-input does not produce
// a trailing empty line, but interior empty lines are kept (they must later
// surface as decode errors). Splitting is a pure function: no I/O happens
// here.
package splitter

import "strings"

// Line is one candidate record: the terminator-stripped content plus its
// 1-based position in the input, retained for error reporting.
type Line struct {
	Number int
	Text   string
}

// Split divides a raw buffer into candidate lines. Empty input yields no
// lines. A '\r' not followed by '\n' is content, not a terminator.
func Split(data []byte) []Line {
	var lines []Line
	number := 1
	start := 0
	for i := 0; i < len(data); i++ {
		if data[i] != '\n' {
			continue
		}
		end := i
		if end > start && data[end-1] == '\r' {
			end--
		}
		lines = append(lines, Line{Number: number, Text: string(data[start:end])})
		number++
		start = i + 1
	}
	if start < len(data) {
		// Content after the last terminator is still a line.
		lines = append(lines, Line{Number: number, Text: string(data[start:])})
	}
	return lines
}

// FromLines normalizes pre-split input, such as lines read from a file, into
// candidate lines. Each element may still carry its terminator; it is
// stripped here so both entry points share one canonical representation.
func FromLines(raw []string) []Line {
	lines := make([]Line, 0, len(raw))
	for i, s := range raw {
		s = strings.TrimSuffix(s, "\n")
		s = strings.TrimSuffix(s, "\r")
		lines = append(lines, Line{Number: i + 1, Text: s})
	}
	return lines
}
