package markdown

import (
	"strings"
	"unicode/utf8"
)

// charScanner walks a string rune by rune while tracking byte
// offsets and a one-rune lookback/lookahead window. It is ported
// from the plugin's char-by-char metadata scanner: Go's range over
// a string already gives byte offsets, but the surrounding helpers
// (moveText, moveNewLine, moveNextLine, isNextText) are worth keeping
// as named operations since the metadata stripper is written against
// them.
type charScanner struct {
	text     string
	offset   int
	pos      int
	previous rune
	hasPrev  bool
	current  rune
	hasCur   bool
	nextPos  int
}

func newCharScanner(offset int, text string) *charScanner {
	s := &charScanner{text: text, offset: offset, pos: offset}
	s.next()
	return s
}

// next advances the window by one rune and returns the new current
// rune, or (0, false) once the text is exhausted.
func (s *charScanner) next() (rune, bool) {
	s.previous, s.hasPrev = s.current, s.hasCur
	if s.nextPos >= len(s.text) {
		s.current, s.hasCur = 0, false
		if s.hasPrev {
			s.pos += utf8.RuneLen(s.previous)
		}
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.text[s.nextPos:])
	s.pos = s.offset + s.nextPos
	s.current, s.hasCur = r, true
	s.nextPos += size
	return r, true
}

func (s *charScanner) peek() (rune, bool) {
	if s.nextPos >= len(s.text) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.text[s.nextPos:])
	return r, true
}

// skipSpaces advances past runs of whitespace that do not include a
// newline, stopping at the first newline or non-space rune.
func (s *charScanner) skipSpaces() {
	for {
		r, ok := s.peek()
		if !ok || r == '\n' || !isSpaceRune(r) {
			return
		}
		s.next()
	}
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}

// relIdx returns the byte index of the current rune relative to the
// start of s.text (undoing the absolute offset next() stamps onto
// s.pos), so literal-matching helpers below can slice s.text directly.
func (s *charScanner) relIdx() int { return s.pos - s.offset }

// isNextText reports whether literal appears starting at the current
// rune, without consuming anything.
func (s *charScanner) isNextText(literal string) bool {
	i := s.relIdx()
	if i < 0 || i > len(s.text) {
		return false
	}
	return strings.HasPrefix(s.text[i:], literal)
}

// moveText advances past literal only if it matches exactly here,
// mirroring the plugin's move_text: a non-match leaves the cursor
// untouched rather than partially consuming input.
func (s *charScanner) moveText(literal string) bool {
	if !s.isNextText(literal) {
		return false
	}
	for range literal {
		s.next()
	}
	return true
}

// moveNewLine advances over a line ending, accepting both "\n" and
// "\r\n", reporting whether one was found.
func (s *charScanner) moveNewLine() bool {
	if s.moveText("\r\n") {
		return true
	}
	return s.moveText("\n")
}

// moveNextLine advances the cursor to just past the next newline, or
// to end-of-input if none remains.
func (s *charScanner) moveNextLine() {
	for s.hasCur {
		wasNewline := s.current == '\n'
		s.next()
		if wasNewline {
			return
		}
	}
}

// assertChar skips leading whitespace (not newlines) and consumes c,
// reporting false without consuming anything on a mismatch.
func (s *charScanner) assertChar(c rune) bool {
	saved := *s
	for s.hasCur && isSpaceRune(s.current) {
		s.next()
	}
	if !s.hasCur || s.current != c {
		*s = saved
		return false
	}
	s.next()
	return true
}

// atEnd reports whether the cursor has no current rune left to read.
func (s *charScanner) atEnd() bool { return !s.hasCur }
