package markdown

import "testing"

func TestCharScannerPeekAndNext(t *testing.T) {
	s := newCharScanner(0, "ab")
	if s.current != 'a' {
		t.Fatalf("expected current 'a', got %q", s.current)
	}
	r, ok := s.peek()
	if !ok || r != 'b' {
		t.Fatalf("peek() = %q, %v; want 'b', true", r, ok)
	}
	s.next()
	if s.current != 'b' {
		t.Fatalf("after next(), current = %q; want 'b'", s.current)
	}
	if _, ok := s.peek(); ok {
		t.Fatalf("peek() at end of input should report false")
	}
}

func TestCharScannerSkipSpaces(t *testing.T) {
	s := newCharScanner(0, "   x")
	s.skipSpaces()
	r, ok := s.peek()
	if !ok || r != 'x' {
		t.Fatalf("skipSpaces left peek() = %q, %v; want 'x', true", r, ok)
	}
}

func TestCharScannerSkipSpacesStopsAtNewline(t *testing.T) {
	s := newCharScanner(0, "  \nx")
	s.skipSpaces()
	r, ok := s.peek()
	if !ok || r != '\n' {
		t.Fatalf("skipSpaces should stop before newline, got %q, %v", r, ok)
	}
}

func TestCharScannerAssertChar(t *testing.T) {
	s := newCharScanner(0, "  :rest")
	if !s.assertChar(':') {
		t.Fatal("assertChar(':') should succeed after skipping spaces")
	}
	if s.current != 'r' {
		t.Errorf("after assertChar, current = %q; want 'r'", s.current)
	}

	s2 := newCharScanner(0, "x")
	if s2.assertChar(':') {
		t.Error("assertChar(':') should fail on mismatch")
	}
}

func TestCharScannerIsNextTextAndMoveText(t *testing.T) {
	s := newCharScanner(0, "+++\nbody")
	if !s.isNextText("+++") {
		t.Fatal("isNextText(\"+++\") should match")
	}
	if !s.moveText("+++") {
		t.Fatal("moveText(\"+++\") should succeed")
	}
	if s.relIdx() != 3 {
		t.Errorf("relIdx() after moveText = %d; want 3", s.relIdx())
	}
	if s.moveText("+++") {
		t.Error("moveText should fail when the literal no longer matches")
	}
}

func TestCharScannerMoveNewLine(t *testing.T) {
	lf := newCharScanner(0, "\nafter")
	if !lf.moveNewLine() {
		t.Fatal("moveNewLine should consume a bare LF")
	}
	if lf.current != 'a' {
		t.Errorf("after moveNewLine, current = %q; want 'a'", lf.current)
	}

	crlf := newCharScanner(0, "\r\nafter")
	if !crlf.moveNewLine() {
		t.Fatal("moveNewLine should consume CRLF as one unit")
	}
	if crlf.current != 'a' {
		t.Errorf("after moveNewLine (CRLF), current = %q; want 'a'", crlf.current)
	}
}

func TestCharScannerMoveNextLine(t *testing.T) {
	s := newCharScanner(0, "one\ntwo\n")
	s.moveNextLine()
	if s.relIdx() != 4 {
		t.Fatalf("relIdx() after moveNextLine = %d; want 4", s.relIdx())
	}
	if s.current != 't' {
		t.Errorf("current after moveNextLine = %q; want 't'", s.current)
	}
	s.moveNextLine()
	if !s.atEnd() {
		t.Error("expected atEnd() after consuming the final line")
	}
}
