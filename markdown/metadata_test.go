package markdown

import "testing"

func TestStripMetadataHeaderYAML(t *testing.T) {
	text := "---\ntitle: Hello\n---\n\nBody text\n"
	block, bodyStart := stripMetadataHeader(text)
	if block == nil {
		t.Fatal("expected a metadata block")
	}
	if block.MKind != MetadataYAML {
		t.Errorf("expected YAML kind, got %v", block.MKind)
	}
	if block.Text != "title: Hello\n" {
		t.Errorf("unexpected metadata text %q", block.Text)
	}
	if text[bodyStart:] != "\nBody text\n" {
		t.Errorf("unexpected body remainder %q", text[bodyStart:])
	}
}

func TestStripMetadataHeaderPluses(t *testing.T) {
	text := "+++\nkey = 1\n+++\nBody\n"
	block, bodyStart := stripMetadataHeader(text)
	if block == nil {
		t.Fatal("expected a metadata block")
	}
	if block.MKind != MetadataPluses {
		t.Errorf("expected pluses kind, got %v", block.MKind)
	}
	if text[bodyStart:] != "Body\n" {
		t.Errorf("unexpected body remainder %q", text[bodyStart:])
	}
}

func TestStripMetadataHeaderNone(t *testing.T) {
	text := "# Just a heading\n"
	block, bodyStart := stripMetadataHeader(text)
	if block != nil {
		t.Errorf("expected no metadata block, got %v", block)
	}
	if bodyStart != 0 {
		t.Errorf("expected bodyStart 0, got %d", bodyStart)
	}
}

func TestStripMetadataHeaderUnterminated(t *testing.T) {
	text := "---\ntitle: Hello\nno closing delimiter\n"
	block, bodyStart := stripMetadataHeader(text)
	if block != nil {
		t.Errorf("expected no metadata block for unterminated header, got %v", block)
	}
	if bodyStart != 0 {
		t.Errorf("expected bodyStart 0, got %d", bodyStart)
	}
}
