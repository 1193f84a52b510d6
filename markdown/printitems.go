package markdown

// PrintItems is the intermediate representation the generator
// produces and the printer consumes. It is deliberately small next
// to dprint-core's real PrintItems/Signal/Condition machinery: this
// plugin has no external printer engine to depend on in this
// ecosystem, so the subset below only carries what a single-pass,
// greedy-wrap Markdown printer actually needs (no arbitrary
// conditional re-evaluation against downstream content).
type PrintItems []printItem

type itemKind int

const (
	itemString itemKind = iota
	itemSignal
	itemPushIndent
	itemPopIndent
	itemQueueIndent
)

// Signal is a printing instruction that depends on the writer's
// current state rather than being a literal string.
type Signal int

const (
	// SignalNewLine forces a line break.
	SignalNewLine Signal = iota
	// SignalSpaceOrNewLine emits a space, unless text wrapping would
	// overflow the configured width, in which case it breaks instead.
	SignalSpaceOrNewLine
	// SignalSpaceIfNotTrailing emits a space unless it is the last
	// thing written before a line break (avoids trailing whitespace).
	SignalSpaceIfNotTrailing
)

type printItem struct {
	kind   itemKind
	text   string
	signal Signal
	indent string // literal indent text pushed by itemPushIndent/itemQueueIndent
}

func (p *PrintItems) Str(s string) *PrintItems {
	*p = append(*p, printItem{kind: itemString, text: s})
	return p
}

func (p *PrintItems) NewLine() *PrintItems {
	*p = append(*p, printItem{kind: itemSignal, signal: SignalNewLine})
	return p
}

func (p *PrintItems) SpaceOrNewLine() *PrintItems {
	*p = append(*p, printItem{kind: itemSignal, signal: SignalSpaceOrNewLine})
	return p
}

func (p *PrintItems) SpaceIfNotTrailing() *PrintItems {
	*p = append(*p, printItem{kind: itemSignal, signal: SignalSpaceIfNotTrailing})
	return p
}

// PushIndent begins an indented region using the given literal
// prefix (e.g. "  " or "> "); every line started inside it is
// prefixed until a matching PopIndent.
func (p *PrintItems) PushIndent(prefix string) *PrintItems {
	*p = append(*p, printItem{kind: itemPushIndent, indent: prefix})
	return p
}

func (p *PrintItems) PopIndent() *PrintItems {
	*p = append(*p, printItem{kind: itemPopIndent})
	return p
}

// Extend appends another PrintItems sequence in place.
func (p *PrintItems) Extend(other PrintItems) *PrintItems {
	*p = append(*p, other...)
	return p
}

