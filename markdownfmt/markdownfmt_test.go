package markdownfmt_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mdprint/mdprint/markdownfmt"
	"github.com/stretchr/testify/require"
)

// Formatting must be idempotent: running the formatter on its own
// output must be a no-op. This is the property the spec actually
// guarantees, so fixtures here are not required to already be in
// canonical form.
func TestProcessIsIdempotent(t *testing.T) {
	files, err := filepath.Glob("testdata/*.md")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		file := file
		t.Run(filepath.Base(file), func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			once, err := markdownfmt.Process(file, src)
			require.NoError(t, err)

			twice, err := markdownfmt.Process(file, once)
			require.NoError(t, err)

			require.Equal(t, string(once), string(twice), "formatting is not idempotent")
		})
	}
}

func TestProcessLeavesIgnoredFileUnchanged(t *testing.T) {
	src := []byte("<!-- dprint-ignore-file -->\n\n#   messy heading\n")
	out, err := markdownfmt.Process("ignored.md", src)
	require.NoError(t, err)
	require.Equal(t, src, out)
}
