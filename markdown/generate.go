package markdown

import "strings"

// gen dispatches a single node to its emitter. Every block-level
// emitter is responsible for its own content only; inter-node
// spacing between siblings is decided once, in genBlockChildren,
// rather than duplicated in every emitter the way a naive recursive
// printer would.
func gen(ctx *genContext, n Node) PrintItems {
	switch node := n.(type) {
	case *Heading:
		return genHeading(ctx, node)
	case *Paragraph:
		return genParagraph(ctx, node)
	case *BlockQuote:
		return genBlockQuote(ctx, node)
	case *CodeBlock:
		return genCodeBlock(ctx, node)
	case *List:
		return genList(ctx, node, false)
	case *HorizontalRule:
		var items PrintItems
		items.Str("---")
		return items
	case *Table:
		return genTable(ctx, node)
	case *FootnoteDefinition:
		return genFootnoteDefinition(ctx, node)
	case *footnoteGroup:
		var items PrintItems
		for i, fd := range node.Items {
			if i > 0 {
				items.NewLine()
				items.NewLine()
			}
			items.Extend(genFootnoteDefinition(ctx, fd))
		}
		return items
	case *MetadataBlock:
		return genMetadataBlock(ctx, node)
	case *HTML:
		var items PrintItems
		items.Str(strings.TrimRight(ctx.text(node.Rng), " \t\r\n"))
		return items
	case *NotImplemented:
		var items PrintItems
		items.Str(ctx.text(node.Rng))
		return items
	default:
		return genInline(ctx, n)
	}
}

// genBlockChildren joins a sequence of block-level siblings,
// preserving at most one blank line between any pair and honoring
// ignore directives that suppress reformatting of a node or a run
// of nodes.
func genBlockChildren(ctx *genContext, children []Node) PrintItems {
	var items PrintItems
	ignoringRange := false
	forceVerbatimNext := false
	afterLineIgnore := false
	var prevList *List
	altToggle := false
	for i, child := range children {
		if i > 0 {
			_, prevIsRef := children[i-1].(*LinkReference)
			_, curIsRef := child.(*LinkReference)
			if afterLineIgnore {
				// A single-line ignore comment's forced-verbatim sibling
				// gets the older, simpler rule: always one line break,
				// plus a second only if the source already had a blank
				// line here. Every other transition uses the general
				// block-sibling rule below.
				items.NewLine()
				if hasLeadingBlankline(child.Range().Start, ctx.fileText) {
					items.NewLine()
				}
			} else if prevIsRef && curIsRef {
				// Consecutive link-reference definitions stack on
				// adjacent lines rather than taking a blank line between
				// them, the same way they'd sit inside one synthesized
				// paragraph.
				items.NewLine()
			} else if !ctx.isInList() || hasLeadingBlankline(child.Range().Start, ctx.fileText) {
				items.NewLine()
				items.NewLine()
			} else {
				items.NewLine()
			}
		}
		afterLineIgnore = false

		verbatim := ignoringRange || forceVerbatimNext
		forceVerbatimNext = false

		if html, ok := child.(*HTML); ok {
			text := ctx.text(html.Rng)
			trimmed := strings.TrimRight(text, " \t\r\n")
			switch {
			case ctx.startIgnoreRe.MatchString(text):
				items.Str(trimmed)
				ignoringRange = true
				prevList = nil
				altToggle = false
				continue
			case ctx.endIgnoreRe.MatchString(text):
				items.Str(trimmed)
				ignoringRange = false
				prevList = nil
				altToggle = false
				continue
			case ctx.lineIgnoreRe.MatchString(text):
				items.Str(trimmed)
				forceVerbatimNext = true
				afterLineIgnore = true
				continue
			}
		}

		if verbatim {
			items.Str(strings.TrimRight(ctx.text(child.Range()), " \t\r\n"))
			prevList = nil
			altToggle = false
			continue
		}

		if list, ok := child.(*List); ok {
			alt := false
			if prevList != nil && sameListOrdinality(prevList, list) {
				altToggle = !altToggle
				alt = altToggle
			} else {
				altToggle = false
			}
			items.Extend(genList(ctx, list, alt))
			prevList = list
			continue
		}
		prevList = nil
		altToggle = false
		items.Extend(gen(ctx, child))
	}
	return items
}

func sameListOrdinality(a, b *List) bool {
	return (a.StartIndex == nil) == (b.StartIndex == nil)
}

// Format reformats a full Markdown document and returns the
// resulting bytes. formatName identifies the file for error
// messages only. A nil host is valid: fenced code blocks whose tag
// has no configured formatter are simply left untouched.
func Format(formatName string, source []byte, config Configuration, host HostFormatFn) ([]byte, error) {
	source = stripBOM(source)

	if fileHasIgnoreFileDirective(string(source), config.Ignore.File) {
		return source, nil
	}

	meta, bodyStart := stripMetadataHeader(string(source))
	body := source[bodyStart:]

	doc, err := parseGoldmark(body)
	if err != nil {
		return nil, err
	}

	sf, err := buildSourceFile(doc, source, bodyStart, meta)
	if err != nil {
		return nil, err
	}

	ctx := newGenContext(string(source), config, host)
	var items PrintItems
	if sf.Metadata != nil {
		items.Extend(genMetadataBlock(ctx, sf.Metadata))
		if len(sf.Children) > 0 {
			items.NewLine()
			items.NewLine()
		}
	}
	items.Extend(genBlockChildren(ctx, sf.Children))
	if len(items) > 0 {
		items.NewLine()
	}

	newLine := resolveNewLine(config.NewLineKind, string(source))
	out := Print(items, PrintOptions{MaxWidth: config.LineWidth, NewLine: newLine})
	return []byte(out), nil
}

func stripBOM(b []byte) []byte {
	const bom = "\xef\xbb\xbf"
	if len(b) >= 3 && string(b[:3]) == bom {
		return b[3:]
	}
	return b
}

func resolveNewLine(kind NewLineKind, source string) string {
	switch kind {
	case NewLineLF:
		return "\n"
	case NewLineCRLF:
		return "\r\n"
	default:
		for i := 0; i < len(source); i++ {
			if source[i] == '\n' {
				if i > 0 && source[i-1] == '\r' {
					return "\r\n"
				}
				return "\n"
			}
		}
		return "\n"
	}
}
