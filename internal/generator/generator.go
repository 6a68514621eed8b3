package generator

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/firefly-engineering/readmegen/internal/config"
	"github.com/firefly-engineering/readmegen/internal/metadata"
	"github.com/firefly-engineering/readmegen/internal/system"
)

// OutputName is the file written at the project root.
const OutputName = "README.md"

// Document holds everything the README is rendered from.
type Document struct {
	ProjectName string
	Languages   []string
	License     string
	Sections    metadata.Sections

	// GitHubPath is "owner/repo" when the remote is hosted on GitHub.
	GitHubPath string

	// Layout is config.LayoutExtended or config.LayoutMinimal.
	Layout string
}

// Render assembles the README text. Rendering is deterministic: the same
// Document always yields the same bytes.
func Render(doc *Document) (string, error) {
	switch doc.Layout {
	case config.LayoutExtended, config.LayoutMinimal:
	default:
		return "", fmt.Errorf("unknown layout %q", doc.Layout)
	}

	extended := doc.Layout == config.LayoutExtended

	// GitHub badges and links belong to the extended layout only.
	githubPath := ""
	if extended {
		githubPath = doc.GitHubPath
	}

	data := TemplateData{
		Name:         doc.ProjectName,
		Badges:       Badges(doc.Languages, doc.License, githubPath),
		Extended:     extended,
		Description:  doc.Sections.Description,
		Features:     doc.Sections.Bullets(),
		Installation: doc.Sections.Installation,
		Usage:        doc.Sections.Usage,
		License:      doc.License,
	}
	if githubPath != "" {
		data.GitHubLink = "https://github.com/" + githubPath
	}

	if extended {
		toc, err := skeletonTOC(data)
		if err != nil {
			return "", err
		}
		data.TOC = toc
	}
	return execute(&data)
}

// skeletonTOC lists the section headings of the layout. It renders the
// template without any project text, so headings inside manifest fields
// never reach the table of contents.
func skeletonTOC(data TemplateData) ([]TOCEntry, error) {
	skeleton := TemplateData{Extended: data.Extended}
	if data.GitHubLink != "" {
		skeleton.GitHubLink = "https://github.com/"
	}

	out, err := execute(&skeleton)
	if err != nil {
		return nil, err
	}
	toc, err := tableOfContents([]byte(out))
	if err != nil {
		return nil, fmt.Errorf("failed to build table of contents: %w", err)
	}
	return toc, nil
}

func execute(data *TemplateData) (string, error) {
	var buf bytes.Buffer
	if err := readmeTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute readme template: %w", err)
	}
	return buf.String(), nil
}

// Write replaces README.md at root with content and returns its path.
func Write(fsys system.FileSystem, root, content string) (string, error) {
	path := filepath.Join(root, OutputName)
	if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", OutputName, err)
	}
	return path, nil
}
