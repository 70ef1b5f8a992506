package casing

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrNoTokens is returned when the input contains nothing that can be cased.
var ErrNoTokens = errors.New("no letters or digits to case")

// ToPascalCase converts an identifier-like string to PascalCase.
//
// Tokens are matched left to right, first match wins at each position:
//
//	ACRONYM  two or more uppercase letters ending before a capitalized word or a word boundary
//	Word     optional uppercase letter, lowercase letters, optional trailing digits
//	U        a single uppercase letter
//	123      a run of digits
//
// Anything else is a separator. "XMLParser" → "XmlParser", "ABCd" → "AbCd".
func ToPascalCase(s string) (string, error) {
	tokens := Tokenize(s)
	if len(tokens) == 0 {
		return "", fmt.Errorf("casing %q: %w", s, ErrNoTokens)
	}

	title := cases.Title(language.Und)
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(title.String(tok))
	}
	return b.String(), nil
}

// Tokenize returns the casing tokens of s in order.
func Tokenize(s string) []string {
	var tokens []string
	for i := 0; i < len(s); {
		n := matchAcronym(s, i)
		if n == 0 {
			n = matchWord(s, i)
		}
		if n == 0 && isUpper(s[i]) {
			n = 1
		}
		if n == 0 {
			n = matchDigits(s, i)
		}
		if n == 0 {
			i++
			continue
		}
		tokens = append(tokens, s[i:i+n])
		i += n
	}
	return tokens
}

// matchAcronym returns the length of the longest uppercase run at i (at least
// two letters) that is followed by a capitalized word or a word boundary.
func matchAcronym(s string, i int) int {
	end := i
	for end < len(s) && isUpper(s[end]) {
		end++
	}
	for k := end; k-i >= 2; k-- {
		if startsCapitalized(s, k) || isBoundary(s, k) {
			return k - i
		}
	}
	return 0
}

func matchWord(s string, i int) int {
	j := i
	if isUpper(s[j]) {
		j++
	}
	start := j
	for j < len(s) && isLower(s[j]) {
		j++
	}
	if j == start {
		return 0
	}
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	return j - i
}

func matchDigits(s string, i int) int {
	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	return j - i
}

// startsCapitalized reports whether an uppercase letter followed by at least
// one lowercase letter begins at k.
func startsCapitalized(s string, k int) bool {
	return k+1 < len(s) && isUpper(s[k]) && isLower(s[k+1])
}

// isBoundary reports a word boundary between s[k-1] and s[k]; positions
// outside the string count as non-word characters.
func isBoundary(s string, k int) bool {
	before := k > 0 && isWord(s[k-1])
	after := k < len(s) && isWord(s[k])
	return before != after
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isWord(c byte) bool {
	return isUpper(c) || isLower(c) || isDigit(c) || c == '_'
}
