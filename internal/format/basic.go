package format

import (
	"context"
	"fmt"
	"strings"
)

// Basic normalizes whitespace and rejects unbalanced brackets. It removes the
// common indentation, strips trailing spaces, collapses blank-line runs and
// ends the text with exactly one newline. Quotes, semicolons and commas are
// left as written.
type Basic struct{}

// SyntaxError reports an unbalanced bracket found by Basic.
type SyntaxError struct {
	Filename string
	Line     int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Filename, e.Line, e.Msg)
}

// Format implements Formatter.
func (Basic) Format(_ context.Context, src, filename string) (string, error) {
	if err := checkBrackets(src, filename); err != nil {
		return "", err
	}

	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}

	indent := commonIndent(lines)
	var out []string
	blank := 0
	for _, l := range lines {
		if l == "" {
			blank++
			continue
		}
		if blank > 0 && len(out) > 0 {
			out = append(out, "")
		}
		blank = 0
		out = append(out, l[len(indent):])
	}
	if len(out) == 0 {
		return "", nil
	}
	return strings.Join(out, "\n") + "\n", nil
}

// commonIndent returns the longest whitespace prefix shared by all non-blank
// lines.
func commonIndent(lines []string) string {
	var prefix string
	first := true
	for _, l := range lines {
		if l == "" {
			continue
		}
		lead := l[:len(l)-len(strings.TrimLeft(l, " \t"))]
		if first {
			prefix, first = lead, false
			continue
		}
		for !strings.HasPrefix(lead, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}

var closers = map[byte]byte{')': '(', ']': '[', '}': '{'}

// checkBrackets verifies (), [] and {} nest correctly outside string
// literals and comments. Quoted strings end at a newline so JSX text with
// apostrophes does not swallow the rest of the file. Regular expression
// literals are not recognized: brackets inside one, as in /[(]/, are counted.
func checkBrackets(src, filename string) error {
	type open struct {
		ch   byte
		line int
	}
	var stack []open
	line := 1

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '\n':
			line++
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			i--
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return &SyntaxError{Filename: filename, Line: line, Msg: "unterminated comment"}
			}
			line += strings.Count(src[i:i+2+end], "\n")
			i += end + 3
		case c == '"' || c == '\'':
			for i++; i < len(src) && src[i] != c && src[i] != '\n'; i++ {
				if src[i] == '\\' && i+1 < len(src) && src[i+1] != '\n' {
					i++
				}
			}
			if i < len(src) && src[i] == '\n' {
				line++
			}
		case c == '`':
			end := strings.IndexByte(src[i+1:], '`')
			if end < 0 {
				return &SyntaxError{Filename: filename, Line: line, Msg: "unterminated template literal"}
			}
			line += strings.Count(src[i:i+1+end], "\n")
			i += end + 1
		case c == '(' || c == '[' || c == '{':
			stack = append(stack, open{c, line})
		case c == ')' || c == ']' || c == '}':
			if len(stack) == 0 || stack[len(stack)-1].ch != closers[c] {
				return &SyntaxError{Filename: filename, Line: line, Msg: fmt.Sprintf("unexpected %q", c)}
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return &SyntaxError{Filename: filename, Line: top.line, Msg: fmt.Sprintf("unclosed %q", top.ch)}
	}
	return nil
}
