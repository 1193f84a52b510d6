package markdown

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// These mirror the concrete end-to-end scenarios enumerated for this
// formatter: a BOM-stripped heading, CRLF normalization inside a
// fenced block, the trailing-hard-break escape, the two ignore
// comment styles, and a recursive host callback.

func TestScenarioBOMAndTrailingNewline(t *testing.T) {
	got := formatString(t, string(rune(0xFEFF))+"#  Title")
	want := "# Title\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestScenarioCRLFInFencedBlock(t *testing.T) {
	got := formatString(t, "```\r\ntest\r\n\r\ntest\r\n```\r\n")
	want := "```\ntest\n\ntest\n```\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(got, "\r") {
		t.Errorf("fenced code block body should not retain carriage returns, got %q", got)
	}
}

func TestScenarioTrailingTwoSpacesHardBreak(t *testing.T) {
	got := formatString(t, "testing  \nasdf")
	want := "testing\\\nasdf\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestScenarioLineIgnorePreservesBody(t *testing.T) {
	src := "Testing:\n<!-- dprint-ignore -->\n```json\ntesting\n```\n"
	got := formatString(t, src)
	want := "Testing:\n\n<!-- dprint-ignore -->\n```json\ntesting\n```\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestScenarioCustomIgnoreDirective(t *testing.T) {
	src := "Testing:\r\n<!-- foo-ignore -->\r\n```json\r\ntesting\r\n```\r\n"
	got := formatString(t, src,
		WithIgnoreDirectives(IgnoreDirectives{
			File:  "dprint-ignore-file",
			Line:  "foo-ignore",
			Start: "dprint-ignore-start",
			End:   "dprint-ignore-end",
		}),
	)
	want := "Testing:\n\n<!-- foo-ignore -->\n```json\ntesting\n```\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestScenarioRecursiveHostFormatting(t *testing.T) {
	host := func(tag string, text string, lineWidth int) (*string, error) {
		if tag != "format" {
			return nil, nil
		}
		suffix := "_formatted_80"
		body := strings.TrimRight(text, "\n")
		out := body
		if !strings.HasSuffix(body, suffix) {
			out = body + "\n" + suffix
		}
		return &out, nil
	}

	src := "```format\nbody\n```\n"
	cfg := NewConfiguration()

	once, err := Format("test.md", []byte(src), cfg, host)
	if err != nil {
		t.Fatalf("first Format failed: %v", err)
	}
	twice, err := Format("test.md", once, cfg, host)
	if err != nil {
		t.Fatalf("second Format failed: %v", err)
	}
	if string(once) != string(twice) {
		t.Fatalf("host callback formatting is not idempotent:\nonce:\n%s\ntwice:\n%s", once, twice)
	}
	if n := strings.Count(string(twice), "_formatted_80"); n != 1 {
		t.Errorf("expected exactly one _formatted_80 suffix after two passes, got %d in %q", n, twice)
	}
}

func TestScenarioHeadingAndParagraphAlwaysSeparatedOutsideList(t *testing.T) {
	got := formatString(t, "# Title\nbody text\n")
	want := "# Title\n\nbody text\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestScenarioFileIgnoreDirectiveCRLF(t *testing.T) {
	src := "<!-- dprint-ignore-file -->\r\n#   messy heading\r\n"
	cfg := NewConfiguration()
	got, err := Format("test.md", []byte(src), cfg, nil)
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if string(got) != src {
		t.Errorf("file-ignore should round-trip unchanged, got %q", got)
	}
}
