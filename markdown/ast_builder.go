package markdown

import (
	"strings"

	"github.com/mdprint/mdprint/mathext"
	"github.com/pkg/errors"
	gast "github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// astBuilder translates a goldmark parse tree into this package's
// lossy AST. Unlike pulldown-cmark, goldmark hands back a fully
// structured tree rather than a flat event stream, so the "event
// iterator" the plugin's Rust source walks collapses here into a
// single recursive descent; what survives from that design is the
// byte-range bookkeeping, since goldmark does not expose a source
// span for every inline node the way the original event stream did.
type astBuilder struct {
	source []byte // full original file text
	offset int     // byte offset of the parsed substring within source
}

func buildSourceFile(doc *gast.Document, source []byte, offset int, metadata *MetadataBlock) (*SourceFile, error) {
	b := &astBuilder{source: source, offset: offset}
	children, err := b.buildBlockChildren(doc)
	if err != nil {
		return nil, err
	}
	children = insertLinkReferenceDefinitions(source, offset, len(source), children)
	end := len(source)
	sf := &SourceFile{
		baseNode: baseNode{Rng: Range{Start: 0, End: end}},
		Metadata: metadata,
		Children: children,
	}
	return sf, nil
}

func (b *astBuilder) rangeOf(n gast.Node) Range {
	if lb, ok := n.(interface{ Lines() *text.Segments }); ok {
		lines := lb.Lines()
		if lines.Len() > 0 {
			first := lines.At(0)
			last := lines.At(lines.Len() - 1)
			return Range{Start: first.Start + b.offset, End: last.Stop + b.offset}
		}
	}
	return Range{}
}

func (b *astBuilder) text(r Range) string {
	return string(b.source[r.Start:r.End])
}

// buildBlockChildren walks the direct block-level children of a
// container node (Document, Blockquote, ListItem, ...).
func (b *astBuilder) buildBlockChildren(parent gast.Node) ([]Node, error) {
	var out []Node
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		n, err := b.buildBlock(c)
		if err != nil {
			return nil, err
		}
		if n != nil {
			out = append(out, n)
		}
	}
	return out, nil
}

func (b *astBuilder) buildBlock(n gast.Node) (Node, error) {
	switch node := n.(type) {
	case *gast.Heading:
		children, err := b.buildInlineChildren(node)
		if err != nil {
			return nil, err
		}
		id := ""
		if raw, ok := node.AttributeString("id"); ok {
			if bs, ok := raw.([]byte); ok {
				id = string(bs)
			} else if s, ok := raw.(string); ok {
				id = s
			}
		}
		return &Heading{baseNode{b.rangeOf(node)}, node.Level, id, children}, nil
	case *gast.Paragraph:
		children, err := b.buildInlineChildren(node)
		if err != nil {
			return nil, err
		}
		return &Paragraph{baseNode{b.rangeOf(node)}, children}, nil
	case *gast.TextBlock:
		children, err := b.buildInlineChildren(node)
		if err != nil {
			return nil, err
		}
		return &Paragraph{baseNode{b.rangeOf(node)}, children}, nil
	case *gast.Blockquote:
		children, err := b.buildBlockChildren(node)
		if err != nil {
			return nil, err
		}
		return &BlockQuote{baseNode{b.rangeOf(node)}, children}, nil
	case *gast.FencedCodeBlock:
		rng := b.rangeOf(node)
		tag := ""
		if node.Info != nil {
			if fields := strings.Fields(string(node.Info.Text(b.source[b.offset:]))); len(fields) > 0 {
				tag = fields[0]
			}
		}
		return &CodeBlock{baseNode{rng}, true, tag, linesText(node, b.source[b.offset:])}, nil
	case *gast.CodeBlock:
		rng := b.rangeOf(node)
		return &CodeBlock{baseNode{rng}, false, "", linesText(node, b.source[b.offset:])}, nil
	case *gast.HTMLBlock:
		return &HTML{baseNode{b.rangeOf(node)}}, nil
	case *gast.ThematicBreak:
		return &HorizontalRule{baseNode{b.rangeOf(node)}}, nil
	case *gast.List:
		return b.buildList(node)
	case *extast.Table:
		return b.buildTable(node)
	case *extast.FootnoteList:
		// Each Footnote child becomes a FootnoteDefinition, collected
		// in one footnoteGroup node that gen() renders as a run of
		// definitions separated by blank lines.
		return b.buildFootnoteList(node)
	case *mathext.MathBlockNode:
		return &DisplayMath{baseNode{b.rangeOf(node)}}, nil
	default:
		if n.Type() == gast.TypeBlock {
			return &NotImplemented{baseNode{b.rangeOf(node)}}, nil
		}
		return nil, errors.Errorf("unsupported block node kind %s", n.Kind().String())
	}
}

func linesText(n interface{ Lines() *text.Segments }, source []byte) string {
	lines := n.Lines()
	var sb strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return strings.TrimRight(strings.ReplaceAll(sb.String(), "\r\n", "\n"), "\n")
}

func (b *astBuilder) buildFootnoteList(list *extast.FootnoteList) (Node, error) {
	// All definitions come back together in a single footnoteGroup;
	// buildBlockChildren keeps it as one child node.
	return b.buildFootnoteListAsGroup(list)
}

// footnoteGroup holds every FootnoteDefinition of one goldmark
// FootnoteList; gen() renders its items one after another.
type footnoteGroup struct {
	baseNode
	Items []*FootnoteDefinition
}

func (n *footnoteGroup) Kind() NodeKind { return KindNotImplemented }

func (b *astBuilder) buildFootnoteListAsGroup(list *extast.FootnoteList) (Node, error) {
	group := &footnoteGroup{baseNode: baseNode{Rng: b.rangeOf(list)}}
	for c := list.FirstChild(); c != nil; c = c.NextSibling() {
		fn, ok := c.(*extast.Footnote)
		if !ok {
			continue
		}
		children, err := b.buildBlockChildren(fn)
		if err != nil {
			return nil, err
		}
		group.Items = append(group.Items, &FootnoteDefinition{
			baseNode: baseNode{b.rangeOf(fn)},
			Name:     string(fn.Ref),
			Children: children,
		})
	}
	return group, nil
}

func (b *astBuilder) buildList(list *gast.List) (Node, error) {
	var startIndex *uint64
	if list.Marker == '.' || list.Marker == ')' {
		v := uint64(list.Start)
		startIndex = &v
	}
	out := &List{baseNode: baseNode{Rng: b.rangeOf(list)}, StartIndex: startIndex}
	for c := list.FirstChild(); c != nil; c = c.NextSibling() {
		li, ok := c.(*gast.ListItem)
		if !ok {
			continue
		}
		item, err := b.buildItem(li)
		if err != nil {
			return nil, err
		}
		out.Children = append(out.Children, item)
	}
	return out, nil
}

func (b *astBuilder) buildItem(li *gast.ListItem) (*Item, error) {
	var marker *TaskListMarker
	first := li.FirstChild()
	if first != nil {
		if tb, ok := first.(interface{ FirstChild() gast.Node }); ok {
			if cb, ok := tb.FirstChild().(*extast.TaskCheckBox); ok {
				marker = &TaskListMarker{baseNode{b.rangeOf(li)}, cb.IsChecked}
			}
		}
	}
	children, err := b.buildBlockChildren(li)
	if err != nil {
		return nil, err
	}
	return &Item{baseNode{b.rangeOf(li)}, marker, children}, nil
}

func (b *astBuilder) buildTable(t *extast.Table) (Node, error) {
	out := &Table{baseNode: baseNode{Rng: b.rangeOf(t)}}
	for _, a := range t.Alignments {
		out.ColumnAlignment = append(out.ColumnAlignment, convertAlignment(a))
	}
	for c := t.FirstChild(); c != nil; c = c.NextSibling() {
		switch row := c.(type) {
		case *extast.TableHeader:
			head := &TableHead{baseNode: baseNode{Rng: b.rangeOf(row)}}
			for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
				tc, err := b.buildTableCell(cell.(*extast.TableCell))
				if err != nil {
					return nil, err
				}
				head.Cells = append(head.Cells, tc)
			}
			out.Header = head
		case *extast.TableRow:
			r := &TableRow{baseNode: baseNode{Rng: b.rangeOf(row)}}
			for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
				tc, err := b.buildTableCell(cell.(*extast.TableCell))
				if err != nil {
					return nil, err
				}
				r.Cells = append(r.Cells, tc)
			}
			out.Rows = append(out.Rows, r)
		}
	}
	return out, nil
}

func (b *astBuilder) buildTableCell(cell *extast.TableCell) (*TableCell, error) {
	children, err := b.buildInlineChildren(cell)
	if err != nil {
		return nil, err
	}
	return &TableCell{baseNode{b.rangeOf(cell)}, children}, nil
}

func convertAlignment(a extast.Alignment) Alignment {
	switch a {
	case extast.AlignLeft:
		return AlignLeft
	case extast.AlignCenter:
		return AlignCenter
	case extast.AlignRight:
		return AlignRight
	default:
		return AlignNone
	}
}

// buildInlineChildren walks the inline children of a block, threading
// a byte cursor through them to recover ranges for node kinds
// goldmark does not stamp with a source segment itself.
func (b *astBuilder) buildInlineChildren(parent gast.Node) ([]Node, error) {
	cursor := b.inlineStart(parent)
	var out []Node
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		n, err := b.buildInline(c, &cursor)
		if err != nil {
			return nil, err
		}
		if n != nil {
			out = append(out, n...)
		}
	}
	return out, nil
}

// inlineStart finds the byte offset content begins at, for threading
// the scan cursor used by range-less inline nodes.
func (b *astBuilder) inlineStart(parent gast.Node) int {
	r := b.rangeOf(parent)
	if r.End > 0 || r.Start > 0 {
		return r.Start
	}
	return b.offset
}

// buildInline may return more than one Node (a Text node followed by
// a synthesized SoftBreak/HardBreak), hence the slice return.
func (b *astBuilder) buildInline(n gast.Node, cursor *int) ([]Node, error) {
	switch node := n.(type) {
	case *gast.Text:
		seg := node.Segment
		rng := Range{seg.Start + b.offset, seg.Stop + b.offset}
		*cursor = rng.End
		out := []Node{&Text{baseNode{rng}, string(seg.Value(b.source[b.offset:]))}}
		if node.HardLineBreak() {
			brRng := scanForwardAny(b.source, *cursor, "\\\n", "  \n")
			*cursor = brRng.End
			out = append(out, &HardBreak{baseNode{brRng}})
		} else if node.SoftLineBreak() {
			brRng := Range{*cursor, *cursor + 1}
			*cursor = brRng.End
			out = append(out, &SoftBreak{baseNode{brRng}})
		}
		return out, nil
	case *gast.String:
		rng := scanForwardLiteral(b.source, *cursor, node.Value)
		*cursor = rng.End
		return []Node{&Text{baseNode{rng}, string(node.Value)}}, nil
	case *gast.CodeSpan:
		rng, content := scanCodeSpan(b.source, *cursor)
		*cursor = rng.End
		return []Node{&Code{baseNode{rng}, content}}, nil
	case *gast.AutoLink:
		start := *cursor
		end := scanForwardByte(b.source, start, '>') + 1
		rng := Range{start, end}
		*cursor = end
		children, err := b.buildInlineChildren(node)
		if err != nil {
			return nil, err
		}
		return []Node{&AutoLink{baseNode{rng}, children}}, nil
	case *gast.RawHTML:
		rng := b.rangeOf(node)
		if rng.End == 0 && rng.Start == 0 {
			rng = scanForwardTag(b.source, *cursor)
		}
		*cursor = rng.End
		return []Node{&HTML{baseNode{rng}}}, nil
	case *gast.Emphasis:
		return b.buildEmphasis(node, cursor)
	case *extast.Strikethrough:
		return b.buildStrikethrough(node, cursor)
	case *gast.Link:
		return b.buildLink(node, cursor)
	case *gast.Image:
		return b.buildImage(node, cursor)
	case *extast.FootnoteLink:
		rng := scanForwardPattern(b.source, *cursor, `\[\^[^\]]+\]`)
		*cursor = rng.End
		name := footnoteNameFromSource(b.text(rng))
		return []Node{&FootnoteReference{baseNode{rng}, name}}, nil
	case *extast.TaskCheckBox:
		// consumed by buildItem; shouldn't normally be visited directly.
		return nil, nil
	case *mathext.InlineMathNode:
		rng := Range{*cursor, *cursor}
		if txt, ok := node.FirstChild().(*gast.Text); ok {
			seg := txt.Segment
			rng = Range{seg.Start + b.offset - 1, seg.Stop + b.offset + 1}
		}
		*cursor = rng.End
		return []Node{&InlineMath{baseNode{rng}}}, nil
	default:
		if n.Type() == gast.TypeInline {
			children, err := b.buildInlineChildren(node)
			if err != nil {
				return nil, err
			}
			return children, nil
		}
		return nil, errors.Errorf("unsupported inline node kind %s", n.Kind().String())
	}
}

func footnoteNameFromSource(bracketed string) string {
	s := strings.TrimPrefix(bracketed, "[^")
	s = strings.TrimSuffix(s, "]")
	return s
}

func (b *astBuilder) buildEmphasis(node *gast.Emphasis, cursor *int) ([]Node, error) {
	start := *cursor
	innerStart := scanForwardNonSpace(b.source, start)
	delimLen := node.Level
	markerStart := scanForwardDelimRun(b.source, innerStart, delimLen)
	childStart := markerStart + delimLen
	savedCursor := childStart
	children, err := b.buildInlineChildren(node)
	if err != nil {
		return nil, err
	}
	childEnd := savedCursor
	if len(children) > 0 {
		childEnd = children[len(children)-1].Range().End
	}
	rng := Range{markerStart, childEnd + delimLen}
	*cursor = rng.End
	kind := DecorationEmphasis
	if node.Level == 2 {
		kind = DecorationStrong
	}
	return []Node{&TextDecoration{baseNode{rng}, kind, children}}, nil
}

func (b *astBuilder) buildStrikethrough(node *extast.Strikethrough, cursor *int) ([]Node, error) {
	start := scanForwardDelimRun(b.source, *cursor, 2)
	childStart := start + 2
	_ = childStart
	children, err := b.buildInlineChildren(node)
	if err != nil {
		return nil, err
	}
	childEnd := start + 2
	if len(children) > 0 {
		childEnd = children[len(children)-1].Range().End
	}
	rng := Range{start, childEnd + 2}
	*cursor = rng.End
	return []Node{&TextDecoration{baseNode{rng}, DecorationStrikethrough, children}}, nil
}

func (b *astBuilder) buildLink(node *gast.Link, cursor *int) ([]Node, error) {
	openBracket := scanForwardByte(b.source, *cursor, '[')
	children, err := b.buildInlineChildren(node)
	if err != nil {
		return nil, err
	}
	closeBracket := openBracket + 1
	if len(children) > 0 {
		closeBracket = children[len(children)-1].Range().End
	}
	closeBracket = scanForwardByte(b.source, closeBracket, ']')
	after := closeBracket + 1
	switch peekByte(b.source, after) {
	case '(':
		end := scanForwardByte(b.source, after, ')') + 1
		rng := Range{openBracket, end}
		*cursor = end
		title := string(node.Title)
		return []Node{&InlineLink{baseNode{rng}, string(node.Destination), title, len(node.Title) > 0, children}}, nil
	case '[':
		labelEnd := scanForwardByte(b.source, after+1, ']')
		end := labelEnd + 1
		label := string(b.source[after+1 : labelEnd])
		if label == "" {
			label = plainText(children)
		}
		rng := Range{openBracket, end}
		*cursor = end
		return []Node{&ReferenceLink{baseNode{rng}, label, children}}, nil
	default:
		rng := Range{openBracket, closeBracket + 1}
		*cursor = rng.End
		return []Node{&ShortcutLink{baseNode{rng}, children}}, nil
	}
}

func (b *astBuilder) buildImage(node *gast.Image, cursor *int) ([]Node, error) {
	start := scanForwardByte(b.source, *cursor, '!')
	openBracket := scanForwardByte(b.source, start, '[')
	closeBracket := scanForwardByte(b.source, openBracket+1, ']')
	altText := string(b.source[openBracket+1 : closeBracket])
	after := closeBracket + 1
	switch peekByte(b.source, after) {
	case '(':
		end := scanForwardByte(b.source, after, ')') + 1
		rng := Range{start, end}
		*cursor = end
		return []Node{&InlineImage{baseNode{rng}, altText, string(node.Destination), string(node.Title), len(node.Title) > 0}}, nil
	case '[':
		labelEnd := scanForwardByte(b.source, after+1, ']')
		end := labelEnd + 1
		label := string(b.source[after+1 : labelEnd])
		if label == "" {
			label = altText
		}
		rng := Range{start, end}
		*cursor = end
		return []Node{&ReferenceImage{baseNode{rng}, altText, label}}, nil
	default:
		rng := Range{start, closeBracket + 1}
		*cursor = rng.End
		return []Node{&ReferenceImage{baseNode{rng}, altText, altText}}, nil
	}
}

func plainText(nodes []Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		if t, ok := n.(*Text); ok {
			sb.WriteString(t.TextValue)
		}
	}
	return sb.String()
}
