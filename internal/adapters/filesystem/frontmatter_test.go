package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFrontMatter(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantMeta map[string]any
		wantBody string
	}{
		{
			name:     "no front matter",
			content:  "# Title\nBody",
			wantMeta: nil,
			wantBody: "# Title\nBody",
		},
		{
			name:     "front matter",
			content:  "---\ntitle: Hello\nweight: 3\n---\nBody",
			wantMeta: map[string]any{"title": "Hello", "weight": 3},
			wantBody: "Body",
		},
		{
			name:     "windows line endings",
			content:  "---\r\ntitle: Hello\r\n---\r\nBody",
			wantMeta: map[string]any{"title": "Hello"},
			wantBody: "Body",
		},
		{
			name:     "empty front matter",
			content:  "---\n---\nBody",
			wantMeta: nil,
			wantBody: "Body",
		},
		{
			name:     "unterminated front matter is body",
			content:  "---\ntitle: Hello\nBody",
			wantMeta: nil,
			wantBody: "---\ntitle: Hello\nBody",
		},
		{
			name:     "byte order mark",
			content:  "\ufeff---\ntitle: Hello\n---\nBody",
			wantMeta: map[string]any{"title": "Hello"},
			wantBody: "Body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body, err := splitFrontMatter(tt.content)

			require.NoError(t, err)
			assert.Equal(t, tt.wantMeta, meta)
			assert.Equal(t, tt.wantBody, body)
		})
	}

	t.Run("invalid yaml", func(t *testing.T) {
		_, _, err := splitFrontMatter("---\n: [\n---\nBody")
		assert.Error(t, err)
	})
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name     string
		meta     map[string]any
		body     string
		key      string
		expected string
	}{
		{name: "front matter title", meta: map[string]any{"title": " Hello "}, body: "# Heading", key: "a.md", expected: "Hello"},
		{name: "non-string title falls through", meta: map[string]any{"title": 42}, body: "# Heading", key: "a.md", expected: "Heading"},
		{name: "first heading", body: "intro\n## Sub\n# Heading\n# Second", key: "a.md", expected: "Heading"},
		{name: "file name", body: "no headings", key: "guides/getting-started.md", expected: "getting-started"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, title(tt.meta, tt.body, tt.key))
		})
	}
}
