// Package language classifies the top-level files of a project root.
package language

import (
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/firefly-engineering/readmegen/internal/logging"
	"github.com/firefly-engineering/readmegen/internal/system"
)

// Set is a sorted list of distinct language labels.
type Set []string

// Detector classifies files using a Table.
type Detector struct {
	fs      system.FileSystem
	table   *Table
	exclude []string
}

// Option configures a Detector.
type Option func(*Detector)

// WithTable replaces the built-in classification table.
func WithTable(t *Table) Option {
	return func(d *Detector) {
		d.table = t
	}
}

// WithExclude skips top-level file names matching any of the glob patterns.
func WithExclude(patterns []string) Option {
	return func(d *Detector) {
		d.exclude = patterns
	}
}

// NewDetector creates a Detector reading through fsys.
func NewDetector(fsys system.FileSystem, opts ...Option) *Detector {
	d := &Detector{fs: fsys, table: DefaultTable()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect classifies the immediate entries of root. Subdirectories are not
// descended into. Listing failures yield an empty Set; files that cannot be
// classified contribute nothing.
func (d *Detector) Detect(root string) Set {
	entries, err := d.fs.ReadDir(root)
	if err != nil {
		logging.Warn("failed to list project root, no languages detected", "root", root, "error", err)
		return Set{}
	}

	seen := make(map[string]bool)
	for _, entry := range entries {
		name := entry.Name()
		if d.excluded(name) {
			logging.Debug("skipping excluded file", "name", name)
			continue
		}

		path := filepath.Join(root, name)
		info, err := d.fs.Stat(path)
		if err != nil {
			logging.Debug("skipping unreadable entry", "path", path, "error", err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		lang, ok, err := d.Classify(path)
		if err != nil {
			logging.Debug("failed to classify file", "path", path, "error", err)
			continue
		}
		if ok && lang != "" {
			seen[lang] = true
		}
	}

	set := make(Set, 0, len(seen))
	for lang := range seen {
		set = append(set, lang)
	}
	sort.Strings(set)
	return set
}

// Classify returns the language label of a single file. Files whose name is
// not in the table and that have no extension are checked for a shebang.
func (d *Detector) Classify(path string) (string, bool, error) {
	name := filepath.Base(path)
	if lang, ok := d.table.byName(name); ok {
		return lang, true, nil
	}
	if filepath.Ext(name) != "" {
		return "", false, nil
	}

	content, err := d.fs.ReadFile(path)
	if err != nil {
		return "", false, err
	}
	interp, ok := interpreter(content)
	if !ok {
		return "", false, nil
	}
	lang, ok := d.table.byInterpreter(interp)
	return lang, ok, nil
}

func (d *Detector) excluded(name string) bool {
	for _, pattern := range d.exclude {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
