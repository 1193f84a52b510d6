// Package markdownfmt is the host-facing entry point: it strips a
// BOM, resolves configuration, and calls the markdown package's
// generator/printer pipeline, the same three-step shape the
// teacher's own Process function used around goldmark.Convert.
package markdownfmt

import (
	"os"

	"github.com/mdprint/mdprint/markdown"
)

// Process formats the given Markdown. If src is nil, filename is
// read from disk.
func Process(filename string, src []byte, opts ...markdown.Option) ([]byte, error) {
	text, err := readSource(filename, src)
	if err != nil {
		return nil, err
	}
	config := markdown.NewConfiguration(opts...)
	return markdown.Format(filename, text, config, nil)
}

// ProcessWithHost is Process plus a host callback for delegating
// fenced code block formatting to an external formatter keyed by
// tag, the same contract a dprint-style host plugin uses.
func ProcessWithHost(filename string, src []byte, host markdown.HostFormatFn, opts ...markdown.Option) ([]byte, error) {
	text, err := readSource(filename, src)
	if err != nil {
		return nil, err
	}
	config := markdown.NewConfiguration(opts...)
	return markdown.Format(filename, text, config, host)
}

func readSource(filename string, src []byte) ([]byte, error) {
	if src != nil {
		return src, nil
	}
	return os.ReadFile(filename)
}
