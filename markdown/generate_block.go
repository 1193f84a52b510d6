package markdown

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

func genHeading(ctx *genContext, h *Heading) PrintItems {
	var items PrintItems
	inline := genInlineChildren(ctx, h.Children)
	if ctx.config.HeadingKind == HeadingSetext && h.Level <= 2 {
		items.Extend(inline)
		items.NewLine()
		if h.Level == 1 {
			items.Str("===")
		} else {
			items.Str("---")
		}
	} else {
		items.Str(strings.Repeat("#", h.Level))
		items.Str(" ")
		items.Extend(inline)
	}
	if h.ID != "" {
		items.Str(" {#" + h.ID + "}")
	}
	return items
}

func genParagraph(ctx *genContext, p *Paragraph) PrintItems {
	return genInlineChildren(ctx, p.Children)
}

func genBlockQuote(ctx *genContext, bq *BlockQuote) PrintItems {
	var items PrintItems
	items.Str("> ")
	items.PushIndent("> ")
	items.Extend(genBlockChildren(ctx, bq.Children))
	items.PopIndent()
	return items
}

func genCodeBlock(ctx *genContext, cb *CodeBlock) PrintItems {
	var items PrintItems
	if !cb.IsFenced {
		normalized := unindent(trimLeadingBlankLines(cb.Code))
		for i, line := range strings.Split(normalized, "\n") {
			if i > 0 {
				items.NewLine()
			}
			items.Str("    ")
			items.Str(line)
		}
		return items
	}

	code := unindent(trimLeadingBlankLines(cb.Code))
	ext := ctx.tagExtension(cb.Tag)
	if ext == "md" || ext == "markdown" {
		if formatted, err := Format("<embedded>", []byte(code), ctx.config, ctx.hostFormat); err == nil {
			code = strings.TrimRight(string(formatted), "\n")
		}
	} else if formatter, ok := ctx.config.Tags[ext]; ok {
		if out, err := formatter(code, ctx.effectiveLineWidth()); err == nil && out != nil {
			code = *out
		}
	} else if ctx.hostFormat != nil && cb.Tag != "" {
		if out, err := ctx.hostFormat(ext, code, ctx.effectiveLineWidth()); err == nil && out != nil {
			code = *out
		}
	}

	fence := "```"
	if strings.Contains(code, "```") {
		fence = "~~~~"
	}
	items.Str(fence)
	items.Str(cb.Tag)
	items.NewLine()
	for i, line := range strings.Split(code, "\n") {
		if i > 0 {
			items.NewLine()
		}
		items.Str(line)
	}
	items.NewLine()
	items.Str(fence)
	return items
}

func genMetadataBlock(ctx *genContext, m *MetadataBlock) PrintItems {
	var items PrintItems
	delim := "---"
	if m.MKind == MetadataPluses {
		delim = "+++"
	}
	items.Str(delim)
	items.NewLine()
	text := strings.TrimRight(m.Text, "\n")
	if text != "" {
		for _, line := range strings.Split(text, "\n") {
			items.Str(line)
			items.NewLine()
		}
	}
	items.Str(delim)
	return items
}

func genFootnoteDefinition(ctx *genContext, fd *FootnoteDefinition) PrintItems {
	var items PrintItems
	items.Str("[^")
	items.Str(fd.Name)
	items.Str("]: ")
	items.PushIndent("    ")
	ctx.withIndent(4, func() {
		items.Extend(genBlockChildren(ctx, fd.Children))
	})
	items.PopIndent()
	return items
}

var leadingOrderedMarkerRe = regexp.MustCompile(`^\s*(\d+)[.)]`)

func leadingItemNumber(ctx *genContext, item *Item) (int, bool) {
	m := leadingOrderedMarkerRe.FindStringSubmatch(ctx.text(item.Rng))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func usesLazyNumbering(ctx *genContext, list *List) bool {
	if list.StartIndex == nil || len(list.Children) < 2 {
		return false
	}
	n0, ok0 := leadingItemNumber(ctx, list.Children[0])
	n1, ok1 := leadingItemNumber(ctx, list.Children[1])
	return ok0 && ok1 && n0 == 1 && n1 == 1
}

func genList(ctx *genContext, list *List, altBullet bool) PrintItems {
	var items PrintItems
	lazy := usesLazyNumbering(ctx, list)
	for i, item := range list.Children {
		if i > 0 {
			items.NewLine()
			if hasLeadingBlankline(item.Range().Start, ctx.fileText) {
				items.NewLine()
			}
		}
		marker := computeItemMarker(ctx, list, i, altBullet, lazy)
		items.Str(marker)
		if item.Marker != nil {
			if item.Marker.IsChecked {
				items.Str("[x]")
			} else {
				items.Str("[ ]")
			}
			items.SpaceIfNotTrailing()
		}

		indentWidth := len(marker)
		if ctx.config.ListIndentStyle == ListIndentUniform {
			indentWidth = 4
		}
		indentStr := strings.Repeat(" ", indentWidth)
		items.PushIndent(indentStr)
		ctx.withList(func() {
			ctx.withIndent(indentWidth, func() {
				items.Extend(genBlockChildren(ctx, item.Children))
			})
		})
		items.PopIndent()
	}
	return items
}

func computeItemMarker(ctx *genContext, list *List, index int, altBullet bool, lazy bool) string {
	if list.StartIndex != nil {
		n := *list.StartIndex
		if !lazy {
			n += uint64(index)
		}
		endChar := "."
		if altBullet {
			endChar = ")"
		}
		return fmt.Sprintf("%d%s ", n, endChar)
	}
	ch := "-"
	if ctx.config.UnorderedListKind == UnorderedListAsterisks {
		ch = "*"
	}
	if altBullet {
		if ch == "-" {
			ch = "*"
		} else {
			ch = "-"
		}
	}
	return ch + " "
}

func genTable(ctx *genContext, t *Table) PrintItems {
	return renderTable(ctx, t)
}
