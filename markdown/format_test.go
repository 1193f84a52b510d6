package markdown

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func formatString(t *testing.T, src string, opts ...Option) string {
	t.Helper()
	cfg := NewConfiguration(opts...)
	out, err := Format("test.md", []byte(src), cfg, nil)
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	return string(out)
}

func TestFormatHeadingATX(t *testing.T) {
	got := formatString(t, "#   Title\n")
	want := "# Title\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatHeadingSetext(t *testing.T) {
	got := formatString(t, "# Title\n", WithUnderlineHeadings())
	want := "Title\n===\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatBlockQuoteNesting(t *testing.T) {
	got := formatString(t, "> outer\n>\n> > inner\n")
	if !strings.Contains(got, "> > inner") {
		t.Errorf("expected nested blockquote prefix, got %q", got)
	}
}

func TestFormatIdempotent(t *testing.T) {
	src := "# Title\n\nSome *text* with [a link](https://example.com) and `code`.\n\n- one\n- two\n"
	once := formatString(t, src)
	twice := formatString(t, once)
	if once != twice {
		t.Errorf("formatting is not idempotent:\nonce:\n%s\ntwice:\n%s", once, twice)
	}
}

func TestFormatUnorderedListAsterisks(t *testing.T) {
	got := formatString(t, "- one\n- two\n", WithUnorderedListKind(UnorderedListAsterisks))
	want := "* one\n* two\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatAdjacentOrderedListsAlternateEndChar(t *testing.T) {
	got := formatString(t, "1. one\n2. two\n\n1) three\n2) four\n")
	want := "1. one\n2. two\n\n1) three\n2) four\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatIgnoreFileDirective(t *testing.T) {
	src := "<!-- dprint-ignore-file -->\n#  messy\n"
	got := formatString(t, src)
	if diff := cmp.Diff(src, got); diff != "" {
		t.Errorf("ignored file should round-trip unchanged (-want +got):\n%s", diff)
	}
}

func TestFormatMetadataRoundTrips(t *testing.T) {
	src := "---\ntitle: Hello\n---\n\n# Body\n"
	got := formatString(t, src)
	if !strings.HasPrefix(got, "---\ntitle: Hello\n---\n") {
		t.Errorf("expected metadata block preserved, got %q", got)
	}
}
