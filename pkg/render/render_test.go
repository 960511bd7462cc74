package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		contains []string
		excludes []string
	}{
		{
			name:     "emphasis and lists",
			source:   "Contract with **Musée**\n\n- print\n- web\n",
			contains: []string{"<strong>Musée</strong>", "<li>print</li>", "<li>web</li>"},
		},
		{
			name:     "script is stripped",
			source:   "hello <script>alert(1)</script>",
			excludes: []string{"<script>", "</script>"},
		},
		{
			name:     "links get nofollow",
			source:   "[site](https://example.org)",
			contains: []string{`href="https://example.org"`, `rel="nofollow"`},
		},
		{
			name:     "javascript links are dropped",
			source:   "[x](javascript:alert(1))",
			excludes: []string{"javascript:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Markdown(tt.source)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, bad := range tt.excludes {
				assert.NotContains(t, out, bad)
			}
		})
	}
}

func TestMarkdownBlank(t *testing.T) {
	out, err := Markdown("  \n\t")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "bold", PlainText("<b>bold</b>"))
}
