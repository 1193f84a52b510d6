package markdown

import "testing"

func TestResolveConfigMapKnownKeys(t *testing.T) {
	cfg, diags := ResolveConfigMap(map[string]interface{}{
		"lineWidth":   float64(100),
		"textWrap":    "always",
		"headingKind": "setext",
	}, false)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if cfg.LineWidth != 100 {
		t.Errorf("LineWidth = %d, want 100", cfg.LineWidth)
	}
	if cfg.TextWrap != TextWrapAlways {
		t.Errorf("TextWrap = %v, want Always", cfg.TextWrap)
	}
	if cfg.HeadingKind != HeadingSetext {
		t.Errorf("HeadingKind = %v, want Setext", cfg.HeadingKind)
	}
}

func TestResolveConfigMapUnknownKey(t *testing.T) {
	_, diags := ResolveConfigMap(map[string]interface{}{
		"notARealKey": "value",
	}, false)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].PropertyName != "notARealKey" {
		t.Errorf("unexpected diagnostic property %q", diags[0].PropertyName)
	}
}

func TestResolveConfigMapDenoPreset(t *testing.T) {
	cfg, _ := ResolveConfigMap(nil, true)
	if cfg.TextWrap != TextWrapAlways {
		t.Errorf("deno preset should force TextWrapAlways, got %v", cfg.TextWrap)
	}
	if cfg.Ignore.File != "deno-fmt-ignore-file" {
		t.Errorf("deno preset should rename ignore directives, got %q", cfg.Ignore.File)
	}
}

func TestNewConfigurationDefaults(t *testing.T) {
	cfg := NewConfiguration()
	if cfg.LineWidth != 80 {
		t.Errorf("default LineWidth = %d, want 80", cfg.LineWidth)
	}
	if cfg.Ignore.Line != "dprint-ignore" {
		t.Errorf("default ignore directive = %q", cfg.Ignore.Line)
	}
}
