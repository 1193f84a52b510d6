package markdown

import "testing"

func TestIsListWord(t *testing.T) {
	cases := map[string]bool{
		"test":   false,
		"*":      true,
		"+":      true,
		"-":      true,
		"1.":     true,
		"99.":    true,
		"10)":    true,
		"9999)":  true,
		"9999).": false,
	}
	for word, want := range cases {
		if got := isListWord(word); got != want {
			t.Errorf("isListWord(%q) = %v, want %v", word, got, want)
		}
	}
}

func TestUnindent(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  1\n  2", "1\n2"},
		{"  1\n 2", " 1\n2"},
		{" 1\n  2", "1\n 2"},
		{"1\n2", "1\n2"},
	}
	for _, c := range cases {
		if got := unindent(c.in); got != c.want {
			t.Errorf("unindent(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestHasLeadingBlankline(t *testing.T) {
	text := "foo\n\nbar"
	if !hasLeadingBlankline(5, text) {
		t.Errorf("expected blank line before index 5 in %q", text)
	}
	text2 := "foo\nbar"
	if hasLeadingBlankline(4, text2) {
		t.Errorf("expected no blank line before index 4 in %q", text2)
	}
}
