// Package generator renders README.md for a project.
//
// The document is produced from a single text/template with two layouts:
//
//   - extended: title, badges, intro, table of contents, Description,
//     Features, Getting Started, Installation, Usage, then Contributing,
//     Support and Acknowledgements when the remote is on GitHub, and License
//   - minimal: title, badges, Description, Features, Installation, Usage, License
//
// The table of contents is built from the level-2 headings of a first
// rendering pass, parsed with goldmark, so it always matches the sections
// actually present.
//
// Badges are shields.io image links: one per language, one for the license,
// and stars/forks/issues for GitHub remotes.
package generator
