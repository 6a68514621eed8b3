package generator

import (
	_ "embed"
	"text/template"
)

// TemplateData holds all data needed to render README.md.
type TemplateData struct {
	Name         string
	Badges       string   // Pre-rendered single line of badge markup
	Extended     bool     // Extended layout: intro, TOC, Getting Started
	GitHubLink   string   // https://github.com/<owner>/<repo>, empty if not GitHub
	TOC          []TOCEntry
	Description  string
	Features     []string // One bullet each
	Installation string
	Usage        string
	License      string
}

// TOCEntry is a table of contents line.
type TOCEntry struct {
	Title  string
	Anchor string
}

//go:embed readme.md.tmpl
var readmeTemplateText string

// readmeTemplate is the parsed template, initialized at package load time.
var readmeTemplate = template.Must(template.New("readme").Parse(readmeTemplateText))
