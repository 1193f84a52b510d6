package markdown

import "regexp"

// HostFormatFn is the embedding-host callback used to delegate
// fenced code block formatting back to a dprint-style host plugin
// keyed by the block's tag. A nil result with a nil error means the
// host declined and the block is left untouched.
type HostFormatFn func(tag string, text string, lineWidth int) (*string, error)

// genContext carries per-format-call state through the generator,
// mirroring the Rust plugin's Context struct: the full source text
// for range slicing, the resolved configuration, indentation
// counters, and the compiled ignore-directive regexes.
type genContext struct {
	fileText      string
	config        Configuration
	hostFormat    HostFormatFn
	indentLevel   int
	inListCount   int
	noWrapCount   int
	lineIgnoreRe  *regexp.Regexp
	startIgnoreRe *regexp.Regexp
	endIgnoreRe   *regexp.Regexp
}

func newGenContext(fileText string, config Configuration, host HostFormatFn) *genContext {
	return &genContext{
		fileText:      fileText,
		config:        config,
		hostFormat:    host,
		lineIgnoreRe:  compileIgnoreRegex(config.Ignore.Line),
		startIgnoreRe: compileIgnoreRegex(config.Ignore.Start),
		endIgnoreRe:   compileIgnoreRegex(config.Ignore.End),
	}
}

// compileIgnoreRegex builds the `^\s*<!--\s*name\s*-->\s*` matcher
// used to recognize an ignore-directive HTML comment, exactly as
// get_ignore_comment_regex does in the plugin's Rust source.
func compileIgnoreRegex(name string) *regexp.Regexp {
	return regexp.MustCompile(`^\s*<!--\s*` + regexp.QuoteMeta(name) + `\s*-->\s*`)
}

func (c *genContext) text(r Range) string {
	return c.fileText[r.Start:r.End]
}

func (c *genContext) effectiveLineWidth() int {
	w := c.config.LineWidth - c.indentLevelWidth()
	if w < 10 {
		w = 10
	}
	return w
}

func (c *genContext) indentLevelWidth() int {
	return c.indentLevel
}

func (c *genContext) withIndent(width int, fn func()) {
	c.indentLevel += width
	defer func() { c.indentLevel -= width }()
	fn()
}

func (c *genContext) withList(fn func()) {
	c.inListCount++
	defer func() { c.inListCount-- }()
	fn()
}

func (c *genContext) isInList() bool { return c.inListCount > 0 }

func (c *genContext) withNoWrap(fn func()) {
	c.noWrapCount++
	defer func() { c.noWrapCount-- }()
	fn()
}

func (c *genContext) wrapDisabled() bool {
	return c.noWrapCount > 0 || c.config.TextWrap == TextWrapNever
}

// tagExtension resolves a fenced code block's info-string tag to the
// canonical extension name used to key both `Tags` and the host
// callback, consulting the user's `tags` configuration entries before
// the built-in table so a reconfigured tag (e.g. a shop that writes
// "typescript" instead of "ts") still reaches the right formatter.
func (c *genContext) tagExtension(tag string) string {
	if ext, ok := c.config.TagExtensions[tag]; ok {
		return ext
	}
	return tag
}
