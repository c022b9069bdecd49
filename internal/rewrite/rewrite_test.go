// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rewrite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	r := New("/wiki/.attachments", ".attachments")

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "absolute attachments path becomes wiki-relative",
			content: `![alt text](/wiki/.attachments/diagram.png)`,
			want:    `![](../.attachments/diagram.png)`,
		},
		{
			name:    "folder-relative reference is normalized",
			content: `![chart](.attachments/chart.png)`,
			want:    `![](../.attachments/chart.png)`,
		},
		{
			name:    "attribute block is stripped",
			content: `![alt](image.png){width=300}`,
			want:    `![alt](image.png)`,
		},
		{
			name:    "attribute block spanning lines is stripped",
			content: "![alt](image.png){width=\"5.9in\"\nheight=\"3.3in\"}",
			want:    `![alt](image.png)`,
		},
		{
			name:    "unrelated text untouched",
			content: "# Heading\n\nSome [link](https://example.com) and `code`.\n",
			want:    "# Heading\n\nSome [link](https://example.com) and `code`.\n",
		},
		{
			name:    "no matches is a no-op",
			content: "plain paragraph",
			want:    "plain paragraph",
		},
		{
			name: "mixed document",
			content: "Intro.\n\n" +
				"![one](/wiki/.attachments/one.png){width=300}\n\n" +
				"![two](.attachments/two.png)\n\n" +
				"Outro.\n",
			want: "Intro.\n\n" +
				"![](../.attachments/one.png)\n\n" +
				"![](../.attachments/two.png)\n\n" +
				"Outro.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Apply(tt.content))
		})
	}
}

func TestApply_PlainNameFolder(t *testing.T) {
	r := New("/abs/path/to/attachments", "attachments")

	got := r.Apply(`![alt](/abs/path/to/attachments/img.png)`)
	assert.Equal(t, `![](../attachments/img.png)`, got)
}

func TestApply_WindowsStylePath(t *testing.T) {
	// pandoc on Windows may write the extraction path with backslashes
	// already normalized to slashes in the markdown; the rewriter matches
	// the slash form of whatever path it was configured with.
	r := New("/wiki/.attachments", ".attachments")

	got := r.Apply(`![](/wiki/.attachments/shot.png)`)
	assert.Equal(t, `![](../.attachments/shot.png)`, got)
}

func TestApply_Idempotent(t *testing.T) {
	r := New("/wiki/.attachments", ".attachments")

	content := "![a](/wiki/.attachments/a.png)\n![b](.attachments/b.png){height=2}\n"
	once := r.Apply(content)
	twice := r.Apply(once)

	assert.Equal(t, once, twice)
}

func TestFile_RewritesInPlaceAndTruncates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")

	// Rewritten content is shorter than the original, so leftover bytes
	// would surface as trailing garbage if the write did not truncate.
	original := `![a very long alt text here](/wiki/.attachments/a.png){width=300 height=200}`
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	r := New("/wiki/.attachments", ".attachments")
	require.NoError(t, r.File(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `![](../.attachments/a.png)`, string(data))
}

func TestFile_MissingFile(t *testing.T) {
	r := New("/wiki/.attachments", ".attachments")
	err := r.File(filepath.Join(t.TempDir(), "absent.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading markdown")
}
