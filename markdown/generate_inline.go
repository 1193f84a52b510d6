package markdown

import (
	"strings"
	"unicode"
)

// genInlineChildren renders an inline run (the contents of a
// paragraph, heading, table cell, or list item's text), handling
// word wrap and the spacing between sibling inline nodes. atStart
// tracks whether nothing of this run has been emitted yet, since only
// a run's very first word needs the list-word escape.
func genInlineChildren(ctx *genContext, children []Node) PrintItems {
	var items PrintItems
	atStart := true
	for i, c := range children {
		if i > 0 {
			if _, isBreak := c.(*SoftBreak); !isBreak {
				if _, wasBreak := children[i-1].(*HardBreak); !wasBreak {
					if _, wasSoft := children[i-1].(*SoftBreak); !wasSoft {
						gap := ctx.text(Range{children[i-1].Range().End, c.Range().Start})
						if gap != "" {
							if nodeStartsWithListWord(c) {
								// A soft wrap landing right before this word would
								// read back as a new list item; force a hard space.
								items.Str(" ")
							} else {
								emitWrapSpace(ctx, &items)
							}
						}
					}
				}
			}
		}
		if _, isBreak := c.(*SoftBreak); isBreak && nextIsHTML(children, i) {
			// A single source newline immediately before an HTML node
			// always becomes a real line break, regardless of the
			// configured wrap mode, since folding it into a soft-wrap
			// space would change how the HTML is parsed.
			items.NewLine()
			atStart = false
			continue
		}
		items.Extend(genInlineAtom(ctx, c, &atStart))
	}
	return items
}

// nextIsHTML reports whether the node immediately after index i is an
// HTML node.
func nextIsHTML(children []Node, i int) bool {
	if i+1 >= len(children) {
		return false
	}
	_, ok := children[i+1].(*HTML)
	return ok
}

// genInline is the fallback entry point used by gen() for inline
// nodes reached outside a known container (shouldn't normally
// trigger, since every inline-bearing block routes through
// genInlineChildren directly, but keeps gen() total over Node).
func genInline(ctx *genContext, n Node) PrintItems {
	start := false
	return genInlineAtom(ctx, n, &start)
}

// nodeStartsWithListWord reports whether n would render starting with
// a token the list-word classifier recognizes, used to stop the
// printer from ever choosing a line break that makes the next line
// look like a new list item.
func nodeStartsWithListWord(n Node) bool {
	t, ok := n.(*Text)
	if !ok {
		return false
	}
	return startsWithListWord(t.TextValue)
}

func emitWrapSpace(ctx *genContext, items *PrintItems) {
	switch {
	case ctx.wrapDisabled():
		items.Str(" ")
	case ctx.config.TextWrap == TextWrapMaintain:
		items.Str(" ")
	default:
		items.SpaceOrNewLine()
	}
}

func genInlineAtom(ctx *genContext, n Node, atStart *bool) PrintItems {
	var items PrintItems
	switch node := n.(type) {
	case *Text:
		items.Extend(genText(ctx, node, atStart))
	case *SoftBreak:
		switch {
		case ctx.wrapDisabled():
			items.Str(" ")
		case ctx.config.TextWrap == TextWrapMaintain:
			items.NewLine()
		default:
			items.SpaceOrNewLine()
		}
	case *HardBreak:
		items.Str("\\")
		items.NewLine()
	case *Code:
		items.Extend(genCodeSpan(node))
	case *TextDecoration:
		items.Extend(genTextDecoration(ctx, node, atStart))
	case *HTML:
		items.Str(ctx.text(node.Rng))
	case *InlineMath:
		items.Str(ctx.text(node.Rng))
	case *DisplayMath:
		items.Str(ctx.text(node.Rng))
	case *FootnoteReference:
		items.Str("[^")
		items.Str(node.Name)
		items.Str("]")
	case *InlineLink:
		items.Extend(genInlineLink(ctx, node, atStart))
	case *ReferenceLink:
		items.Extend(genReferenceLink(ctx, node, atStart))
	case *ShortcutLink:
		items.Str("[")
		items.Extend(genInlineChildren(ctx, node.Children))
		items.Str("]")
	case *AutoLink:
		items.Str(ctx.text(node.Rng))
	case *InlineImage:
		items.Extend(genInlineImage(node))
	case *ReferenceImage:
		items.Str("![")
		items.Str(node.Alt)
		items.Str("][")
		items.Str(node.Reference)
		items.Str("]")
	case *LinkReference:
		items.Extend(genLinkReference(node))
	default:
		items.Str(ctx.text(n.Range()))
	}
	*atStart = false
	return items
}

func genText(ctx *genContext, t *Text, atStart *bool) PrintItems {
	var items PrintItems
	words := strings.Fields(t.TextValue)
	for i, w := range words {
		if i > 0 {
			if isListWord(w) {
				// A wrap before this word would start a new list item.
				items.Str(" ")
			} else {
				emitWrapSpace(ctx, &items)
			}
		}
		if *atStart && i == 0 && isListWord(w) {
			items.Str(escapeListWord(w))
		} else {
			items.Str(w)
		}
		*atStart = false
	}
	return items
}

// escapeListWord inserts a backslash before a list marker's
// terminating punctuation so re-parsing the output never turns a
// plain sentence into a list item.
func escapeListWord(w string) string {
	if w == "*" || w == "-" || w == "+" {
		return "\\" + w
	}
	return w[:len(w)-1] + "\\" + w[len(w)-1:]
}

func genCodeSpan(c *Code) PrintItems {
	var items PrintItems
	fence := "`"
	if strings.Contains(c.CodeText, "`") {
		fence = "``"
	}
	items.Str(fence)
	if strings.HasPrefix(c.CodeText, "`") || strings.HasSuffix(c.CodeText, "`") {
		items.Str(" ")
		items.Str(c.CodeText)
		items.Str(" ")
	} else {
		items.Str(c.CodeText)
	}
	items.Str(fence)
	return items
}

func genTextDecoration(ctx *genContext, d *TextDecoration, atStart *bool) PrintItems {
	var items PrintItems
	marker := decorationMarker(ctx, d)
	items.Str(marker)
	items.Extend(genInlineChildren(ctx, d.Children))
	items.Str(marker)
	*atStart = false
	return items
}

func decorationMarker(ctx *genContext, d *TextDecoration) string {
	switch d.DKind {
	case DecorationStrikethrough:
		return "~~"
	case DecorationStrong:
		ch := "*"
		if ctx.config.StrongKind == StrongUnderscores {
			ch = "_"
		}
		if ch == "_" && decorationAmbiguous(ctx, d) {
			ch = "*"
		}
		return ch + ch
	default:
		ch := "*"
		if ctx.config.EmphasisKind == EmphasisUnderscores {
			ch = "_"
		}
		if ch == "_" && decorationAmbiguous(ctx, d) {
			ch = "*"
		}
		return ch
	}
}

// decorationAmbiguous reports whether the source originally closed
// this span with a literal asterisk immediately touching a following
// word character, in which case underscores must not be substituted:
// GFM wouldn't recognize an underscore delimiter there (its
// intraword-emphasis rule only exempts `*`), so keeping the asterisk
// is the only faithful rendering.
func decorationAmbiguous(ctx *genContext, d *TextDecoration) bool {
	closing := byteBefore(ctx.fileText, d.Rng.End)
	after := byteAt(ctx.fileText, d.Rng.End)
	return closing == '*' && isWordByte(after)
}

func byteBefore(s string, i int) byte {
	if i <= 0 || i > len(s) {
		return 0
	}
	return s[i-1]
}

func byteAt(s string, i int) byte {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

func isWordByte(b byte) bool {
	return unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b))
}

func genInlineLink(ctx *genContext, l *InlineLink, atStart *bool) PrintItems {
	var items PrintItems
	items.Str("[")
	ctx.withNoWrap(func() {
		items.Extend(genInlineChildren(ctx, l.Children))
	})
	items.Str("](")
	items.Str(l.URL)
	if l.HasTitle {
		items.Str(" \"")
		items.Str(l.Title)
		items.Str("\"")
	}
	items.Str(")")
	*atStart = false
	return items
}

func genReferenceLink(ctx *genContext, l *ReferenceLink, atStart *bool) PrintItems {
	var items PrintItems
	items.Str("[")
	ctx.withNoWrap(func() {
		items.Extend(genInlineChildren(ctx, l.Children))
	})
	items.Str("][")
	items.Str(l.Reference)
	items.Str("]")
	*atStart = false
	return items
}

func genInlineImage(i *InlineImage) PrintItems {
	var items PrintItems
	items.Str("![")
	items.Str(i.Alt)
	items.Str("](")
	items.Str(i.URL)
	if i.HasTitle {
		items.Str(" \"")
		items.Str(i.Title)
		items.Str("\"")
	}
	items.Str(")")
	return items
}

func genLinkReference(l *LinkReference) PrintItems {
	var items PrintItems
	items.Str("[")
	items.Str(l.Name)
	items.Str("]: ")
	items.Str(l.Link)
	if l.HasTitle {
		items.Str(" \"")
		items.Str(l.Title)
		items.Str("\"")
	}
	return items
}
