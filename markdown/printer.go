package markdown

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// PrintOptions configures the printer's line-wrapping behavior.
type PrintOptions struct {
	MaxWidth int
	NewLine  string // "\n" or "\r\n"
}

// Print resolves a PrintItems sequence into final bytes, deciding
// every SpaceOrNewLine signal against the current column and the
// width of the run of literal text that follows it, up to the next
// signal or indent change. This greedy one-token-of-lookahead
// strategy is the Go-native stand-in for dprint-core's full
// condition/resolver graph: since nothing in this ecosystem ships
// that engine, the printer only needs to support the single
// text-wrap decision this plugin's generator ever asks of it.
func Print(items PrintItems, opts PrintOptions) string {
	var out strings.Builder
	var indents []string
	column := 0

	writeIndent := func() {
		for _, ind := range indents {
			out.WriteString(ind)
			column += runewidth.StringWidth(ind)
		}
	}

	writeNewLine := func() {
		out.WriteString(opts.NewLine)
		column = 0
		writeIndent()
	}

	for i := 0; i < len(items); i++ {
		it := items[i]
		switch it.kind {
		case itemString:
			out.WriteString(it.text)
			column += runewidth.StringWidth(it.text)
		case itemPushIndent:
			indents = append(indents, it.indent)
		case itemQueueIndent:
			indents = append(indents, it.indent)
		case itemPopIndent:
			if len(indents) > 0 {
				indents = indents[:len(indents)-1]
			}
		case itemSignal:
			switch it.signal {
			case SignalNewLine:
				writeNewLine()
			case SignalSpaceOrNewLine:
				if opts.MaxWidth > 0 && column+1+nextRunWidth(items, i+1) > opts.MaxWidth {
					writeNewLine()
				} else {
					out.WriteString(" ")
					column++
				}
			case SignalSpaceIfNotTrailing:
				if !nextIsNewLineOrEnd(items, i+1) {
					out.WriteString(" ")
					column++
				}
			}
		}
	}
	return out.String()
}

// nextRunWidth measures the display width of the literal text run
// starting at index i, stopping at the next signal or indent change.
func nextRunWidth(items PrintItems, i int) int {
	width := 0
	for ; i < len(items); i++ {
		if items[i].kind != itemString {
			break
		}
		width += runewidth.StringWidth(items[i].text)
	}
	return width
}

// nextIsNewLineOrEnd reports whether the next item that isn't a pure
// bookkeeping indent marker is a forced newline (or nothing at all),
// so a SpaceIfNotTrailing signal isn't fooled by an indent push/pop
// sitting between it and the line break it precedes.
func nextIsNewLineOrEnd(items PrintItems, i int) bool {
	for ; i < len(items); i++ {
		it := items[i]
		if it.kind == itemPushIndent || it.kind == itemPopIndent || it.kind == itemQueueIndent {
			continue
		}
		return it.kind == itemSignal && it.signal == SignalNewLine
	}
	return true
}
