package generator

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firefly-engineering/readmegen/internal/config"
	"github.com/firefly-engineering/readmegen/internal/metadata"
	"github.com/firefly-engineering/readmegen/internal/system"
)

func testDocument(layout string) *Document {
	return &Document{
		ProjectName: "widget",
		Languages:   []string{"Go", "JavaScript"},
		License:     "MIT",
		Sections: metadata.Sections{
			Description:  "A Node.js project using Express for web server functionality.",
			Installation: "npm install",
			Usage:        "npm start\n\nnode server.js",
			Features:     "Express web server, TypeScript support",
		},
		GitHubPath: "acme/widget",
		Layout:     layout,
	}
}

func TestRender_Minimal(t *testing.T) {
	got, err := Render(testDocument(config.LayoutMinimal))
	require.NoError(t, err)

	want := "# widget\n" +
		"\n" +
		"![Go](https://img.shields.io/badge/lang-go-informational) " +
		"![JavaScript](https://img.shields.io/badge/lang-javascript-informational) " +
		"![License](https://img.shields.io/badge/license-MIT-brightgreen)\n" +
		"\n" +
		"## Description\n" +
		"A Node.js project using Express for web server functionality.\n" +
		"\n" +
		"## Features\n" +
		"- Express web server\n" +
		"- TypeScript support\n" +
		"\n" +
		"## Installation\n" +
		"```bash\n" +
		"npm install\n" +
		"```\n" +
		"\n" +
		"## Usage\n" +
		"npm start\n" +
		"\n" +
		"node server.js\n" +
		"\n" +
		"## License\n" +
		"Distributed under the MIT License. See LICENSE for more information.\n"

	assert.Equal(t, want, got)
}

func TestRender_ExtendedGitHub(t *testing.T) {
	got, err := Render(testDocument(config.LayoutExtended))
	require.NoError(t, err)

	assert.Contains(t, got, "![GitHub stars](https://img.shields.io/github/stars/acme/widget?style=social)")
	assert.Contains(t, got, "Welcome to **widget**! 🚀\n\nView on [GitHub](https://github.com/acme/widget)\n")
	assert.Contains(t, got, "[issues page](https://github.com/acme/widget/issues)")

	wantTOC := "## Table of Contents\n" +
		"- [Description](#description)\n" +
		"- [Features](#features)\n" +
		"- [Getting Started](#getting-started)\n" +
		"- [Installation](#installation)\n" +
		"- [Usage](#usage)\n" +
		"- [Contributing](#contributing)\n" +
		"- [Support](#support)\n" +
		"- [Acknowledgements](#acknowledgements)\n" +
		"- [License](#license)\n"
	assert.Contains(t, got, wantTOC)

	assertSectionOrder(t, got, []string{
		"# widget", "## Table of Contents", "## Description", "## Features", "## Getting Started",
		"## Installation", "## Usage", "## Contributing", "## Support", "## Acknowledgements", "## License",
	})
}

func TestRender_ExtendedWithoutGitHub(t *testing.T) {
	doc := testDocument(config.LayoutExtended)
	doc.GitHubPath = ""

	got, err := Render(doc)
	require.NoError(t, err)

	assert.Contains(t, got, "Welcome to **widget**! 🚀\n\n## Table of Contents\n")
	assert.NotContains(t, got, "GitHub")
	assert.NotContains(t, got, "## Contributing")
	assert.NotContains(t, got, "(#support)")
	assert.Contains(t, got, "- [Usage](#usage)\n- [License](#license)\n")
}

func TestRender_TOCIgnoresProjectHeadings(t *testing.T) {
	doc := testDocument(config.LayoutExtended)
	doc.Sections.Description = "Intro text.\n\n## Injected\nmore"
	doc.Sections.Usage = "## Run it\nnpm start"
	doc.License = "MIT\n## Sneaky"

	got, err := Render(doc)
	require.NoError(t, err)

	assert.NotContains(t, got, "(#injected)")
	assert.NotContains(t, got, "(#run-it)")
	assert.NotContains(t, got, "(#sneaky)")
	assert.Contains(t, got, "- [Usage](#usage)\n- [Contributing](#contributing)\n")
}

func TestRender_MinimalIgnoresGitHub(t *testing.T) {
	got, err := Render(testDocument(config.LayoutMinimal))
	require.NoError(t, err)

	assert.NotContains(t, got, "github")
	assert.NotContains(t, got, "Table of Contents")
}

func TestRender_DefaultFeatureBullets(t *testing.T) {
	doc := testDocument(config.LayoutMinimal)
	doc.Sections.Features = metadata.DefaultFeature

	got, err := Render(doc)
	require.NoError(t, err)
	assert.Contains(t, got, "## Features\n- Fast\n- Reliable\n- Easy to use\n")
}

func TestRender_Deterministic(t *testing.T) {
	first, err := Render(testDocument(config.LayoutExtended))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Render(testDocument(config.LayoutExtended))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRender_UnknownLayout(t *testing.T) {
	_, err := Render(testDocument("fancy"))
	assert.ErrorContains(t, err, "unknown layout")
}

func TestWrite_Overwrites(t *testing.T) {
	mockFS := system.NewMockFS()
	mockFS.AddFile("/project/README.md", []byte("# Old README\n\nstale content that must vanish\n"), 0644)

	path, err := Write(mockFS, "/project", "# widget\n")
	require.NoError(t, err)
	assert.Equal(t, "/project/README.md", path)

	data, ok := mockFS.GetFile("/project/README.md")
	require.True(t, ok)
	assert.Equal(t, "# widget\n", string(data))
	assert.NotContains(t, string(data), "stale")
}

func TestWrite_Error(t *testing.T) {
	mockFS := system.NewMockFS()
	mockFS.WriteFileErr = fs.ErrPermission

	_, err := Write(mockFS, "/project", "x")
	assert.True(t, errors.Is(err, fs.ErrPermission))
}

func assertSectionOrder(t *testing.T, doc string, headings []string) {
	t.Helper()
	pos := -1
	for _, h := range headings {
		i := strings.Index(doc, h+"\n")
		require.GreaterOrEqual(t, i, 0, "missing heading %q", h)
		assert.Greater(t, i, pos, "heading %q out of order", h)
		pos = i
	}
}
