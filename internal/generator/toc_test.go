package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableOfContents(t *testing.T) {
	doc := []byte("# Title\n\n## Table of Contents\n\n## Description\ntext\n\n### Nested\n\n## Getting *Started*\n\n```bash\n## not a heading\n```\n\n## License\n")

	entries, err := tableOfContents(doc)
	require.NoError(t, err)

	assert.Equal(t, []TOCEntry{
		{Title: "Description", Anchor: "description"},
		{Title: "Getting Started", Anchor: "getting-started"},
		{Title: "License", Anchor: "license"},
	}, entries)
}

func TestAnchor(t *testing.T) {
	tests := []struct {
		title, want string
	}{
		{"Getting Started", "getting-started"},
		{"Q&A", "qa"},
		{"Real-time (Socket.io)", "real-time-socketio"},
		{"snake_case", "snake_case"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, anchor(tt.title), tt.title)
	}
}
