package markdown

import (
	"regexp"
	"strings"
	"unicode"
)

// isListWord reports whether a single word (no internal whitespace)
// would be parsed as a list marker if it began a line, so the text
// builder can avoid letting word-wrap accidentally create a list.
func isListWord(word string) bool {
	if word == "*" || word == "-" || word == "+" {
		return true
	}
	hadNumber := false
	hadEndChar := false
	for _, c := range word {
		if hadEndChar {
			return false
		}
		if !hadNumber {
			if unicode.IsNumber(c) {
				hadNumber = true
			} else {
				return false
			}
			continue
		}
		if unicode.IsNumber(c) {
			continue
		}
		if c == '.' || c == ')' {
			hadEndChar = true
		} else {
			return false
		}
	}
	return hadEndChar
}

// hasLeadingBlankline reports whether the text immediately before
// index contains a blank line, i.e. two or more newlines separated
// only by whitespace.
func hasLeadingBlankline(index int, text string) bool {
	newlineCount := 0
	for i := index - 1; i >= 0; i-- {
		c := rune(text[i])
		if c == '\n' {
			newlineCount++
			if newlineCount >= 2 {
				return true
			}
		} else if !unicode.IsSpace(c) {
			break
		}
	}
	return false
}

func fileHasIgnoreFileDirective(fileText string, directiveInnerText string) bool {
	return compileIgnoreRegex(directiveInnerText).MatchString(fileText)
}

// unindent removes the minimum common leading-whitespace-rune count
// shared by every line, used to normalize a code block's raw text
// when the fence itself was nested inside a blockquote or list.
func unindent(text string) string {
	lines := strings.Split(text, "\n")
	indents := make([]int, len(lines))
	minIndent := -1
	for i, line := range lines {
		n := 0
		for _, c := range line {
			if !unicode.IsSpace(c) {
				break
			}
			n++
		}
		if n == len(line) && line != "" {
			// whitespace-only line: doesn't constrain the minimum
			indents[i] = -1
			continue
		}
		indents[i] = n
		if minIndent == -1 || n < minIndent {
			minIndent = n
		}
	}
	if minIndent <= 0 {
		return text
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if indents[i] == -1 || indents[i] < minIndent {
			out[i] = line
			continue
		}
		out[i] = string([]rune(line)[minIndent:])
	}
	return strings.Join(out, "\n")
}

// trimLeadingBlankLines drops leading lines that are empty or
// whitespace-only, matching the CodeBlock normalization step (4.5)
// that strips blank lines a fence picked up from its opening line.
func trimLeadingBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	i := 0
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	return strings.Join(lines[i:], "\n")
}

func trimSpacesAndNewlines(s string) string {
	return strings.Trim(s, " \t\r\n")
}

func trimStartSpacesAndNewlines(s string) string {
	return strings.TrimLeft(s, " \t\r\n")
}

// linkReferenceDefRe matches a `[label]: destination "title"` line,
// used to recover definitions goldmark consumes without leaving a
// node behind for them.
var linkReferenceDefRe = regexp.MustCompile(`(?m)^[ \t]{0,3}\[([^\]]+)\]:[ \t]*(\S+)(?:[ \t]+"([^"]*)")?[ \t]*$`)

func startsWithListWord(text string) bool {
	text = trimStartSpacesAndNewlines(text)
	i := strings.IndexFunc(text, unicode.IsSpace)
	word := text
	if i >= 0 {
		word = text[:i]
	}
	return isListWord(word)
}
