package markdown

import (
	"github.com/mdprint/mdprint/mathext"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// newGoldmark builds the goldmark instance this package parses
// with. Only its Parser is ever used; rendering is entirely this
// package's own job, since goldmark's Renderer interface writes
// straight to a writer and has no notion of the wrap/width budget
// the print-item generator needs.
func newGoldmark() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.TaskList,
			extension.Footnote,
			mathext.Math,
		),
		goldmark.WithParserOptions(
			parser.WithAttribute(),
		),
	)
}

func parseGoldmark(source []byte) (*ast.Document, error) {
	gm := newGoldmark()
	reader := text.NewReader(source)
	doc := gm.Parser().Parse(reader)
	return doc.(*ast.Document), nil
}
