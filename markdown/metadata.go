package markdown

import "strings"

// stripMetadataHeader detects a leading YAML (`---`) or pluses
// (`+++`) front-matter block and returns it along with the byte
// offset where the remaining document begins. It does not parse the
// block's contents; the spec treats metadata as an opaque blob that
// round-trips byte for byte, so a full YAML parser would be more
// machinery than the contract needs.
//
// This walks the char scanner line by line exactly as 4.2 describes:
// confirm the opening delimiter is immediately followed by a newline,
// then scan forward a line at a time for a line that is the closing
// delimiter followed by a newline or end-of-input.
func stripMetadataHeader(text string) (*MetadataBlock, int) {
	delim, kind, ok := detectMetadataDelimiter(text)
	if !ok {
		return nil, 0
	}

	s := newCharScanner(0, text)
	if !s.moveText(delim) || !s.moveNewLine() {
		return nil, 0
	}
	bodyStart := s.relIdx()

	for {
		if s.atEnd() {
			return nil, 0 // unterminated block; whole file has no metadata
		}
		if s.isNextText(delim) {
			closeStart := s.relIdx()
			s.moveText(delim)
			if s.atEnd() || s.moveNewLine() {
				end := s.relIdx()
				block := &MetadataBlock{
					baseNode: baseNode{Rng: Range{Start: 0, End: end}},
					MKind:    kind,
					Text:     text[bodyStart:closeStart],
				}
				return block, end
			}
			// delimiter text appears but isn't a whole line by itself;
			// treat the rest of this line as ordinary metadata content.
			s.moveNextLine()
			continue
		}
		s.moveNextLine()
	}
}

func detectMetadataDelimiter(text string) (delim string, kind MetadataKind, ok bool) {
	switch {
	case strings.HasPrefix(text, "---"):
		return "---", MetadataYAML, true
	case strings.HasPrefix(text, "+++"):
		return "+++", MetadataPluses, true
	default:
		return "", 0, false
	}
}
