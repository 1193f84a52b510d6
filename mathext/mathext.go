// Package mathext adds GFM-adjacent math support to goldmark: a
// single-dollar inline span and a double-dollar block, since neither
// core goldmark nor its bundled extensions cover this and the plugin
// this package stands in for treats math as a first-class node kind.
// It is written against goldmark's own extension points the same way
// extension.Table and extension.Strikethrough are, since that is the
// idiom the rest of this module's parser setup already follows.
package mathext

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var KindInlineMath = ast.NewNodeKind("InlineMath")
var KindMathBlock = ast.NewNodeKind("MathBlock")

// InlineMathNode wraps a `$...$` span.
type InlineMathNode struct {
	ast.BaseInline
}

func (n *InlineMathNode) Kind() ast.NodeKind { return KindInlineMath }
func (n *InlineMathNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// MathBlockNode wraps a `$$ ... $$` fenced block.
type MathBlockNode struct {
	ast.BaseBlock
}

func (n *MathBlockNode) Kind() ast.NodeKind { return KindMathBlock }
func (n *MathBlockNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

type inlineParser struct{}

func (p *inlineParser) Trigger() []byte { return []byte{'$'} }

func (p *inlineParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, seg := block.PeekLine()
	if len(line) == 0 || line[0] != '$' {
		return nil
	}
	closing := -1
	for i := 1; i < len(line); i++ {
		if line[i] == '$' && line[i-1] != '\\' {
			closing = i
			break
		}
	}
	if closing < 0 {
		return nil
	}
	block.Advance(closing + 1)
	node := &InlineMathNode{}
	node.AppendChild(node, ast.NewTextSegment(text.NewSegment(seg.Start+1, seg.Start+closing)))
	return node
}

type blockParser struct{}

func (p *blockParser) Trigger() []byte { return []byte{'$'} }

func (p *blockParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, _ := reader.PeekLine()
	if !isMathFence(line) {
		return nil, parser.NoChildren
	}
	reader.Advance(len(line))
	return &MathBlockNode{}, parser.NoChildren
}

func (p *blockParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	line, seg := reader.PeekLine()
	if isMathFence(line) {
		reader.Advance(len(line))
		return parser.Close
	}
	node.(*MathBlockNode).Lines().Append(seg)
	reader.AdvanceLine()
	return parser.Continue | parser.NoChildren
}

func (p *blockParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (p *blockParser) CanInterruptParagraph() bool { return true }

func (p *blockParser) CanAcceptIndentedLine() bool { return false }

func isMathFence(line []byte) bool {
	trimmed := util.TrimRightSpace(util.TrimLeftSpace(line))
	return string(trimmed) == "$$"
}

// Math is the Extender other callers register with goldmark.New,
// exactly like extension.Table or extension.Strikethrough.
var Math = &mathExtender{}

type mathExtender struct{}

func (e *mathExtender) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithInlineParsers(
			util.Prioritized(&inlineParser{}, 501),
		),
		parser.WithBlockParsers(
			util.Prioritized(&blockParser{}, 101),
		),
	)
}
