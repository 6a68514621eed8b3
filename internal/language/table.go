package language

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed languages.yaml
var languagesYAML []byte

// Table maps file names, extensions and shebang interpreters to language labels.
type Table struct {
	Filenames    map[string]string `yaml:"filenames"`
	Extensions   map[string]string `yaml:"extensions"`
	Interpreters map[string]string `yaml:"interpreters"`
}

// ParseTable decodes a classification table.
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse language table: %w", err)
	}
	// Extensions are matched case-insensitively.
	exts := make(map[string]string, len(t.Extensions))
	for ext, lang := range t.Extensions {
		exts[strings.ToLower(ext)] = lang
	}
	t.Extensions = exts
	return &t, nil
}

// DefaultTable returns the built-in classification table.
func DefaultTable() *Table {
	return defaultTable
}

var defaultTable = mustParseTable(languagesYAML)

func mustParseTable(data []byte) *Table {
	t, err := ParseTable(data)
	if err != nil {
		panic(err)
	}
	return t
}

// byName classifies a file from its name alone.
func (t *Table) byName(name string) (string, bool) {
	if lang, ok := t.Filenames[name]; ok {
		return lang, true
	}
	if ext := filepath.Ext(name); ext != "" {
		if lang, ok := t.Extensions[strings.ToLower(ext)]; ok {
			return lang, true
		}
	}
	return "", false
}

// byInterpreter classifies an interpreter name such as "python3.11".
func (t *Table) byInterpreter(interp string) (string, bool) {
	if lang, ok := t.Interpreters[interp]; ok {
		return lang, true
	}
	trimmed := strings.TrimRight(interp, "0123456789.")
	if lang, ok := t.Interpreters[trimmed]; ok {
		return lang, true
	}
	return "", false
}
