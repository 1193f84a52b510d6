package markdown

// Range is a half-open byte range into the original source text.
// Every node in the tree carries one so later stages can recover
// raw source text for spans the generator chooses not to reformat
// (inline HTML, math, code).
type Range struct {
	Start int
	End   int
}

// NodeKind tags the concrete Go type backing a Node, mirroring the
// tagged union the Rust source used for its lossy AST.
type NodeKind int

const (
	KindSourceFile NodeKind = iota
	KindHeading
	KindParagraph
	KindBlockQuote
	KindCodeBlock
	KindCode
	KindText
	KindTextDecoration
	KindHTML
	KindInlineMath
	KindDisplayMath
	KindFootnoteReference
	KindFootnoteDefinition
	KindInlineLink
	KindReferenceLink
	KindShortcutLink
	KindAutoLink
	KindLinkReference
	KindInlineImage
	KindReferenceImage
	KindList
	KindItem
	KindTaskListMarker
	KindHorizontalRule
	KindSoftBreak
	KindHardBreak
	KindTable
	KindTableHead
	KindTableRow
	KindTableCell
	KindMetadataBlock
	KindNotImplemented
)

func (k NodeKind) String() string {
	switch k {
	case KindSourceFile:
		return "SourceFile"
	case KindHeading:
		return "Heading"
	case KindParagraph:
		return "Paragraph"
	case KindBlockQuote:
		return "BlockQuote"
	case KindCodeBlock:
		return "CodeBlock"
	case KindCode:
		return "Code"
	case KindText:
		return "Text"
	case KindTextDecoration:
		return "TextDecoration"
	case KindHTML:
		return "Html"
	case KindInlineMath:
		return "InlineMath"
	case KindDisplayMath:
		return "DisplayMath"
	case KindFootnoteReference:
		return "FootnoteReference"
	case KindFootnoteDefinition:
		return "FootnoteDefinition"
	case KindInlineLink:
		return "InlineLink"
	case KindReferenceLink:
		return "ReferenceLink"
	case KindShortcutLink:
		return "ShortcutLink"
	case KindAutoLink:
		return "AutoLink"
	case KindLinkReference:
		return "LinkReference"
	case KindInlineImage:
		return "InlineImage"
	case KindReferenceImage:
		return "ReferenceImage"
	case KindList:
		return "List"
	case KindItem:
		return "Item"
	case KindTaskListMarker:
		return "TaskListMarker"
	case KindHorizontalRule:
		return "HorizontalRule"
	case KindSoftBreak:
		return "SoftBreak"
	case KindHardBreak:
		return "HardBreak"
	case KindTable:
		return "Table"
	case KindTableHead:
		return "TableHead"
	case KindTableRow:
		return "TableRow"
	case KindTableCell:
		return "TableCell"
	case KindMetadataBlock:
		return "MetadataBlock"
	default:
		return "NotImplemented"
	}
}

// Node is implemented by every member of the lossy AST. Children,
// where present, are exposed through type-specific fields rather
// than a uniform accessor, since the generator dispatches on the
// concrete type anyway.
type Node interface {
	Kind() NodeKind
	Range() Range
}

type baseNode struct{ Rng Range }

func (n baseNode) Range() Range { return n.Rng }

// DecorationKind distinguishes the three span-decoration forms that
// share a single gen_text_decoration-style emitter.
type DecorationKind int

const (
	DecorationEmphasis DecorationKind = iota
	DecorationStrong
	DecorationStrikethrough
)

// Alignment mirrors a GFM table column's alignment marker.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// MetadataKind distinguishes YAML front matter from TOML-ish `+++` blocks.
type MetadataKind int

const (
	MetadataYAML MetadataKind = iota
	MetadataPluses
)

type SourceFile struct {
	baseNode
	Metadata *MetadataBlock
	Children []Node
}

func (n *SourceFile) Kind() NodeKind { return KindSourceFile }

type MetadataBlock struct {
	baseNode
	MKind MetadataKind
	Text  string // raw text between the delimiters, untouched
}

func (n *MetadataBlock) Kind() NodeKind { return KindMetadataBlock }

type Heading struct {
	baseNode
	Level    int // 1-6
	ID       string
	Children []Node
}

func (n *Heading) Kind() NodeKind { return KindHeading }

type Paragraph struct {
	baseNode
	Children []Node
}

func (n *Paragraph) Kind() NodeKind { return KindParagraph }

type BlockQuote struct {
	baseNode
	Children []Node
}

func (n *BlockQuote) Kind() NodeKind { return KindBlockQuote }

type CodeBlock struct {
	baseNode
	IsFenced bool
	Tag      string // fence info string, e.g. "go"; empty if none
	Code     string // body text, trailing newline stripped
}

func (n *CodeBlock) Kind() NodeKind { return KindCodeBlock }

// Code is an inline code span.
type Code struct {
	baseNode
	CodeText string
}

func (n *Code) Kind() NodeKind { return KindCode }

type Text struct {
	baseNode
	TextValue string
}

func (n *Text) Kind() NodeKind { return KindText }

type TextDecoration struct {
	baseNode
	DKind    DecorationKind
	Children []Node
}

func (n *TextDecoration) Kind() NodeKind { return KindTextDecoration }

// HTML covers both inline and block raw HTML; rendered verbatim from
// its source range.
type HTML struct{ baseNode }

func (n *HTML) Kind() NodeKind { return KindHTML }

type InlineMath struct{ baseNode }

func (n *InlineMath) Kind() NodeKind { return KindInlineMath }

type DisplayMath struct{ baseNode }

func (n *DisplayMath) Kind() NodeKind { return KindDisplayMath }

type FootnoteReference struct {
	baseNode
	Name string
}

func (n *FootnoteReference) Kind() NodeKind { return KindFootnoteReference }

type FootnoteDefinition struct {
	baseNode
	Name     string
	Children []Node
}

func (n *FootnoteDefinition) Kind() NodeKind { return KindFootnoteDefinition }

type InlineLink struct {
	baseNode
	URL      string
	Title    string
	HasTitle bool
	Children []Node
}

func (n *InlineLink) Kind() NodeKind { return KindInlineLink }

type ReferenceLink struct {
	baseNode
	Reference string
	Children  []Node
}

func (n *ReferenceLink) Kind() NodeKind { return KindReferenceLink }

type ShortcutLink struct {
	baseNode
	Children []Node
}

func (n *ShortcutLink) Kind() NodeKind { return KindShortcutLink }

type AutoLink struct {
	baseNode
	Children []Node
}

func (n *AutoLink) Kind() NodeKind { return KindAutoLink }

// LinkReference is a `[label]: url "title"` definition, synthesized
// from gaps in the goldmark tree since the parser consumes these
// without emitting a node for them.
type LinkReference struct {
	baseNode
	Name     string
	Link     string
	Title    string
	HasTitle bool
}

func (n *LinkReference) Kind() NodeKind { return KindLinkReference }

type InlineImage struct {
	baseNode
	Alt      string
	URL      string
	Title    string
	HasTitle bool
}

func (n *InlineImage) Kind() NodeKind { return KindInlineImage }

type ReferenceImage struct {
	baseNode
	Alt       string
	Reference string
}

func (n *ReferenceImage) Kind() NodeKind { return KindReferenceImage }

type List struct {
	baseNode
	StartIndex *uint64 // nil means an unordered (bullet) list
	Children   []*Item
}

func (n *List) Kind() NodeKind { return KindList }

type TaskListMarker struct {
	baseNode
	IsChecked bool
}

func (n *TaskListMarker) Kind() NodeKind { return KindTaskListMarker }

type Item struct {
	baseNode
	Marker   *TaskListMarker // nil when not a task list item
	Children []Node
}

func (n *Item) Kind() NodeKind { return KindItem }

type HorizontalRule struct{ baseNode }

func (n *HorizontalRule) Kind() NodeKind { return KindHorizontalRule }

type SoftBreak struct{ baseNode }

func (n *SoftBreak) Kind() NodeKind { return KindSoftBreak }

type HardBreak struct{ baseNode }

func (n *HardBreak) Kind() NodeKind { return KindHardBreak }

type Table struct {
	baseNode
	ColumnAlignment []Alignment
	Header          *TableHead
	Rows            []*TableRow
}

func (n *Table) Kind() NodeKind { return KindTable }

type TableHead struct {
	baseNode
	Cells []*TableCell
}

func (n *TableHead) Kind() NodeKind { return KindTableHead }

type TableRow struct {
	baseNode
	Cells []*TableCell
}

func (n *TableRow) Kind() NodeKind { return KindTableRow }

type TableCell struct {
	baseNode
	Children []Node
}

func (n *TableCell) Kind() NodeKind { return KindTableCell }

// NotImplemented stands in for any node kind goldmark can produce
// that the spec has no mapping for; it is rendered verbatim from
// its source range so unsupported syntax survives a round trip.
type NotImplemented struct{ baseNode }

func (n *NotImplemented) Kind() NodeKind { return KindNotImplemented }
