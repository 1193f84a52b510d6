package markdown

import (
	"bytes"
	"regexp"
	"sort"
)

// The functions in this file recover source ranges for inline node
// kinds goldmark does not stamp with a byte span of their own. Each
// scans forward from a cursor the caller already knows is at or
// before the node's true start, since goldmark visits inline
// children in source order.

func peekByte(source []byte, i int) byte {
	if i < 0 || i >= len(source) {
		return 0
	}
	return source[i]
}

func scanForwardByte(source []byte, from int, b byte) int {
	if from < 0 {
		from = 0
	}
	if from > len(source) {
		return len(source)
	}
	idx := bytes.IndexByte(source[from:], b)
	if idx < 0 {
		return len(source)
	}
	return from + idx
}

func scanForwardNonSpace(source []byte, from int) int {
	i := from
	for i < len(source) && (source[i] == ' ' || source[i] == '\t' || source[i] == '\n' || source[i] == '\r') {
		i++
	}
	return i
}

func scanForwardDelimRun(source []byte, from int, n int) int {
	i := scanForwardNonSpace(source, from)
	for i < len(source) {
		if source[i] == '*' || source[i] == '_' {
			return i
		}
		i++
	}
	return from
}

func scanForwardLiteral(source []byte, from int, literal []byte) Range {
	if from < 0 {
		from = 0
	}
	if from <= len(source) {
		if idx := bytes.Index(source[from:], literal); idx >= 0 {
			start := from + idx
			return Range{start, start + len(literal)}
		}
	}
	return Range{from, from + len(literal)}
}

func scanCodeSpan(source []byte, from int) (Range, string) {
	start := scanForwardByte(source, from, '`')
	i := start
	n := 0
	for i < len(source) && source[i] == '`' {
		i++
		n++
	}
	contentStart := i
	for i < len(source) {
		if source[i] == '`' {
			j := i
			m := 0
			for j < len(source) && source[j] == '`' {
				j++
				m++
			}
			if m == n {
				content := string(source[contentStart:i])
				return Range{start, j}, trimCodeSpanPadding(content)
			}
			i = j
			continue
		}
		i++
	}
	return Range{start, len(source)}, string(source[contentStart:])
}

func trimCodeSpanPadding(s string) string {
	if len(s) >= 2 && s[0] == ' ' && s[len(s)-1] == ' ' && trimSpacesAndNewlines(s) != "" {
		return s[1 : len(s)-1]
	}
	return s
}

func scanForwardAny(source []byte, from int, _ ...string) Range {
	if from < len(source) && source[from] == '\\' {
		end := from + 1
		if end < len(source) && source[end] == '\n' {
			end++
		}
		return Range{from, end}
	}
	i := from
	for i < len(source) && source[i] == ' ' {
		i++
	}
	if i < len(source) && source[i] == '\n' {
		i++
	}
	return Range{from, i}
}

func scanForwardTag(source []byte, from int) Range {
	start := scanForwardByte(source, from, '<')
	end := scanForwardByte(source, start, '>') + 1
	return Range{start, end}
}

func scanForwardPattern(source []byte, from int, pattern string) Range {
	re := regexp.MustCompile(pattern)
	if from < 0 {
		from = 0
	}
	if from > len(source) {
		from = len(source)
	}
	loc := re.FindIndex(source[from:])
	if loc == nil {
		return Range{from, from}
	}
	return Range{from + loc[0], from + loc[1]}
}

// insertLinkReferenceDefinitions scans the byte gaps between
// top-level sibling nodes for `[label]: destination` lines, since
// goldmark's parser resolves and discards these without leaving a
// node behind.
func insertLinkReferenceDefinitions(source []byte, offset int, totalLen int, children []Node) []Node {
	bounds := make([]int, 0, len(children)+2)
	bounds = append(bounds, offset)
	for _, c := range children {
		bounds = append(bounds, c.Range().Start, c.Range().End)
	}
	bounds = append(bounds, len(source))

	var extra []Node
	for i := 0; i+1 < len(bounds); i += 2 {
		gapStart, gapEnd := bounds[i], bounds[i+1]
		if gapStart >= gapEnd || gapStart < 0 || gapEnd > len(source) {
			continue
		}
		gap := source[gapStart:gapEnd]
		for _, loc := range linkReferenceDefRe.FindAllSubmatchIndex(gap, -1) {
			name := string(gap[loc[2]:loc[3]])
			link := string(gap[loc[4]:loc[5]])
			title := ""
			hasTitle := loc[6] >= 0
			if hasTitle {
				title = string(gap[loc[6]:loc[7]])
			}
			extra = append(extra, &LinkReference{
				baseNode: baseNode{Rng: Range{gapStart + loc[0], gapStart + loc[1]}},
				Name:     name,
				Link:     link,
				Title:    title,
				HasTitle: hasTitle,
			})
		}
	}
	if len(extra) == 0 {
		return children
	}
	all := append(append([]Node{}, children...), extra...)
	sort.SliceStable(all, func(i, j int) bool { return all[i].Range().Start < all[j].Range().Start })
	return all
}
