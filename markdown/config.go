package markdown

import (
	"fmt"
	"strings"
)

type NewLineKind int

const (
	NewLineAuto NewLineKind = iota
	NewLineLF
	NewLineCRLF
)

type TextWrap int

const (
	TextWrapMaintain TextWrap = iota
	TextWrapAlways
	TextWrapNever
)

type EmphasisKind int

const (
	EmphasisAsterisks EmphasisKind = iota
	EmphasisUnderscores
)

type StrongKind int

const (
	StrongAsterisks StrongKind = iota
	StrongUnderscores
)

type UnorderedListKind int

const (
	UnorderedListDashes UnorderedListKind = iota
	UnorderedListAsterisks
)

type HeadingKind int

const (
	HeadingATX HeadingKind = iota
	HeadingSetext
)

// ListIndentStyle controls whether wrapped/nested content inside a
// list item is indented to align under the marker text or to a
// uniform multiple of four, matching the teacher's own list-indent
// feature.
type ListIndentStyle int

const (
	ListIndentAligned ListIndentStyle = iota
	ListIndentUniform
)

// IgnoreDirectives names the four HTML-comment directives that
// suppress formatting, either for a whole file, the next sibling
// node, or a fenced range. The deno preset renames all four.
type IgnoreDirectives struct {
	File  string
	Line  string
	Start string
	End   string
}

func defaultIgnoreDirectives() IgnoreDirectives {
	return IgnoreDirectives{
		File:  "dprint-ignore-file",
		Line:  "dprint-ignore",
		Start: "dprint-ignore-start",
		End:   "dprint-ignore-end",
	}
}

func denoIgnoreDirectives() IgnoreDirectives {
	return IgnoreDirectives{
		File:  "deno-fmt-ignore-file",
		Line:  "deno-fmt-ignore",
		Start: "deno-fmt-ignore-start",
		End:   "deno-fmt-ignore-end",
	}
}

// CodeFormatter reformats the body of a fenced code block tagged
// with one of Tags' keys, given the effective line width available
// at the block's indent level. It returns (nil, nil) to leave the
// block untouched.
type CodeFormatter func(code string, lineWidth int) (*string, error)

// Configuration is the fully resolved set of formatting knobs, the
// Go analogue of the plugin's Configuration struct.
type Configuration struct {
	LineWidth         int
	NewLineKind       NewLineKind
	TextWrap          TextWrap
	EmphasisKind      EmphasisKind
	StrongKind        StrongKind
	UnorderedListKind UnorderedListKind
	HeadingKind       HeadingKind
	ListIndentStyle   ListIndentStyle
	Ignore            IgnoreDirectives
	Tags              map[string]CodeFormatter

	// TagExtensions augments the built-in fence-tag-to-file-extension
	// map (see defaultTagExtensions) with entries from the `tags`
	// configuration key. Keys are lowercased tags; values are
	// extensions without a leading period. This is pure data: which
	// extension routes to which host formatter is the file-extension
	// registry the spec places out of scope, but the config surface
	// that feeds it is implemented here.
	TagExtensions map[string]string
}

// defaultTagExtensions is the built-in tag->extension table, per the
// plugin's own hard-coded map. Entries from a user's `tags`
// configuration are merged over it and replace matching keys.
func defaultTagExtensions() map[string]string {
	return map[string]string{
		"ts":       "ts",
		"tsx":      "tsx",
		"js":       "js",
		"jsx":      "jsx",
		"rust":     "rs",
		"rs":       "rs",
		"yaml":     "yaml",
		"yml":      "yaml",
		"json":     "json",
		"toml":     "toml",
		"go":       "go",
		"markdown": "md",
		"md":       "md",
	}
}

func defaultConfiguration() Configuration {
	return Configuration{
		LineWidth:         80,
		NewLineKind:       NewLineLF,
		TextWrap:          TextWrapMaintain,
		EmphasisKind:      EmphasisUnderscores,
		StrongKind:        StrongAsterisks,
		UnorderedListKind: UnorderedListDashes,
		HeadingKind:       HeadingATX,
		ListIndentStyle:   ListIndentAligned,
		Ignore:            defaultIgnoreDirectives(),
		Tags:              map[string]CodeFormatter{},
		TagExtensions:     defaultTagExtensions(),
	}
}

// Option mutates a Configuration during NewConfiguration, mirroring
// the teacher's functional-option renderer construction.
type Option func(*Configuration)

func NewConfiguration(opts ...Option) Configuration {
	cfg := defaultConfiguration()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func WithLineWidth(n int) Option {
	return func(c *Configuration) { c.LineWidth = n }
}

func WithNewLineKind(k NewLineKind) Option {
	return func(c *Configuration) { c.NewLineKind = k }
}

func WithTextWrap(w TextWrap) Option {
	return func(c *Configuration) { c.TextWrap = w }
}

// WithSoftWraps matches the teacher's flag name: it selects
// TextWrapAlways, so source soft line breaks become spaces and prose
// is re-wrapped only where it would exceed the configured width.
func WithSoftWraps() Option {
	return func(c *Configuration) { c.TextWrap = TextWrapAlways }
}

func WithUnderlineHeadings() Option {
	return func(c *Configuration) { c.HeadingKind = HeadingSetext }
}

func WithEmphasisKind(k EmphasisKind) Option {
	return func(c *Configuration) { c.EmphasisKind = k }
}

func WithStrongKind(k StrongKind) Option {
	return func(c *Configuration) { c.StrongKind = k }
}

func WithUnorderedListKind(k UnorderedListKind) Option {
	return func(c *Configuration) { c.UnorderedListKind = k }
}

func WithListIndentStyle(s ListIndentStyle) Option {
	return func(c *Configuration) { c.ListIndentStyle = s }
}

func WithIgnoreDirectives(d IgnoreDirectives) Option {
	return func(c *Configuration) { c.Ignore = d }
}

// WithDenoPreset matches dprint's "deno" configuration preset: text
// is always wrapped and the ignore directives are renamed.
func WithDenoPreset() Option {
	return func(c *Configuration) {
		c.TextWrap = TextWrapAlways
		c.Ignore = denoIgnoreDirectives()
	}
}

func WithCodeFormatters(formatters ...TaggedCodeFormatter) Option {
	return func(c *Configuration) {
		if c.Tags == nil {
			c.Tags = map[string]CodeFormatter{}
		}
		for _, f := range formatters {
			c.Tags[f.Tag] = f.Format
		}
	}
}

// TaggedCodeFormatter binds a CodeFormatter to the fence info string
// it handles, e.g. "go" or "ts".
type TaggedCodeFormatter struct {
	Tag    string
	Format CodeFormatter
}

// Diagnostic reports an unrecognized configuration key, mirroring
// resolve_config's unknown-key warnings.
type Diagnostic struct {
	PropertyName string
	Message      string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.PropertyName, d.Message)
}

// ResolveConfigMap builds a Configuration from an untyped key map,
// the entry point a host plugin uses when config arrives as JSON.
// Unknown keys are reported as diagnostics rather than errors, since
// a forward-compatible host may send keys this version predates.
func ResolveConfigMap(values map[string]interface{}, deno bool) (Configuration, []Diagnostic) {
	var base Option
	if deno {
		base = WithDenoPreset()
	}
	cfg := defaultConfiguration()
	if base != nil {
		base(&cfg)
	}
	var diags []Diagnostic

	for key, raw := range values {
		switch key {
		case "lineWidth":
			if n, ok := asInt(raw); ok {
				cfg.LineWidth = n
			} else {
				diags = append(diags, badValue(key, raw))
			}
		case "newLineKind":
			if v, ok := parseNewLineKind(raw); ok {
				cfg.NewLineKind = v
			} else {
				diags = append(diags, badValue(key, raw))
			}
		case "textWrap":
			if v, ok := parseTextWrap(raw); ok {
				cfg.TextWrap = v
			} else {
				diags = append(diags, badValue(key, raw))
			}
		case "emphasisKind":
			if v, ok := parseEmphasisKind(raw); ok {
				cfg.EmphasisKind = v
			} else {
				diags = append(diags, badValue(key, raw))
			}
		case "strongKind":
			if v, ok := parseStrongKind(raw); ok {
				cfg.StrongKind = v
			} else {
				diags = append(diags, badValue(key, raw))
			}
		case "unorderedListKind":
			if v, ok := parseUnorderedListKind(raw); ok {
				cfg.UnorderedListKind = v
			} else {
				diags = append(diags, badValue(key, raw))
			}
		case "headingKind":
			if v, ok := parseHeadingKind(raw); ok {
				cfg.HeadingKind = v
			} else {
				diags = append(diags, badValue(key, raw))
			}
		case "ignoreDirective":
			if s, ok := raw.(string); ok {
				cfg.Ignore.Line = s
			} else {
				diags = append(diags, badValue(key, raw))
			}
		case "ignoreFileDirective":
			if s, ok := raw.(string); ok {
				cfg.Ignore.File = s
			} else {
				diags = append(diags, badValue(key, raw))
			}
		case "ignoreStartDirective":
			if s, ok := raw.(string); ok {
				cfg.Ignore.Start = s
			} else {
				diags = append(diags, badValue(key, raw))
			}
		case "ignoreEndDirective":
			if s, ok := raw.(string); ok {
				cfg.Ignore.End = s
			} else {
				diags = append(diags, badValue(key, raw))
			}
		case "tags":
			tagMap, ok := raw.(map[string]interface{})
			if !ok {
				diags = append(diags, badValue(key, raw))
				break
			}
			for tag, ext := range tagMap {
				extStr, ok := ext.(string)
				if !ok {
					diags = append(diags, Diagnostic{PropertyName: key, Message: fmt.Sprintf("tag %q: value must be a string", tag)})
					continue
				}
				if strings.HasPrefix(extStr, ".") {
					diags = append(diags, Diagnostic{PropertyName: key, Message: fmt.Sprintf("tag %q: extension %q must not start with a period", tag, extStr)})
					continue
				}
				cfg.TagExtensions[strings.ToLower(tag)] = extStr
			}
		default:
			diags = append(diags, Diagnostic{
				PropertyName: key,
				Message:      "unknown configuration property",
			})
		}
	}
	return cfg, diags
}

func badValue(key string, raw interface{}) Diagnostic {
	return Diagnostic{PropertyName: key, Message: fmt.Sprintf("invalid value %v", raw)}
}

func asInt(raw interface{}) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func parseNewLineKind(raw interface{}) (NewLineKind, bool) {
	s, ok := raw.(string)
	if !ok {
		return 0, false
	}
	switch s {
	case "auto":
		return NewLineAuto, true
	case "lf":
		return NewLineLF, true
	case "crlf":
		return NewLineCRLF, true
	default:
		return 0, false
	}
}

func parseTextWrap(raw interface{}) (TextWrap, bool) {
	s, ok := raw.(string)
	if !ok {
		return 0, false
	}
	switch s {
	case "always":
		return TextWrapAlways, true
	case "maintain":
		return TextWrapMaintain, true
	case "never":
		return TextWrapNever, true
	default:
		return 0, false
	}
}

func parseEmphasisKind(raw interface{}) (EmphasisKind, bool) {
	s, ok := raw.(string)
	if !ok {
		return 0, false
	}
	switch s {
	case "asterisks":
		return EmphasisAsterisks, true
	case "underscores":
		return EmphasisUnderscores, true
	default:
		return 0, false
	}
}

func parseStrongKind(raw interface{}) (StrongKind, bool) {
	s, ok := raw.(string)
	if !ok {
		return 0, false
	}
	switch s {
	case "asterisks":
		return StrongAsterisks, true
	case "underscores":
		return StrongUnderscores, true
	default:
		return 0, false
	}
}

func parseUnorderedListKind(raw interface{}) (UnorderedListKind, bool) {
	s, ok := raw.(string)
	if !ok {
		return 0, false
	}
	switch s {
	case "dashes":
		return UnorderedListDashes, true
	case "asterisks":
		return UnorderedListAsterisks, true
	default:
		return 0, false
	}
}

func parseHeadingKind(raw interface{}) (HeadingKind, bool) {
	s, ok := raw.(string)
	if !ok {
		return 0, false
	}
	switch s {
	case "atx":
		return HeadingATX, true
	case "setext":
		return HeadingSetext, true
	default:
		return 0, false
	}
}
