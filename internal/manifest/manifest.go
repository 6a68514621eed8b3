// Package manifest loads the project manifest: package.json, or go.mod when
// no package.json is present.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/mod/modfile"

	"github.com/firefly-engineering/readmegen/internal/system"
)

// Manifest file names in lookup order.
const (
	PackageJSON = "package.json"
	GoMod       = "go.mod"
)

// Kind identifies the ecosystem a manifest came from.
type Kind string

const (
	KindNone Kind = ""
	KindNPM  Kind = "npm"
	KindGo   Kind = "go"
)

// Manifest is the project metadata used for synthesis. The zero value is the
// empty manifest used when none is present or it cannot be parsed.
type Manifest struct {
	Kind        Kind
	Name        string
	Version     string
	Description string
	License     string
	Keywords    []string

	// Dependencies and DevDependencies are sorted by name.
	Dependencies    []string
	DevDependencies []string
	Scripts         map[string]string
}

// HasDependency reports whether name is a production dependency.
func (m *Manifest) HasDependency(name string) bool {
	return contains(m.Dependencies, name)
}

// HasDevDependency reports whether name is a development dependency.
func (m *Manifest) HasDevDependency(name string) bool {
	return contains(m.DevDependencies, name)
}

// Script returns the named script and whether it is set and non-empty.
func (m *Manifest) Script(name string) (string, bool) {
	s, ok := m.Scripts[name]
	return s, ok && strings.TrimSpace(s) != ""
}

func contains(sorted []string, name string) bool {
	i := sort.SearchStrings(sorted, name)
	return i < len(sorted) && sorted[i] == name
}

// Load reads the manifest at root. found is false when neither manifest file
// exists. A manifest that exists but cannot be read or parsed returns an
// error; callers degrade to the empty manifest.
func Load(fsys system.FileSystem, root string) (m *Manifest, found bool, err error) {
	data, err := fsys.ReadFile(filepath.Join(root, PackageJSON))
	switch {
	case err == nil:
		m, err := ParsePackageJSON(data)
		if err != nil {
			return nil, true, err
		}
		return m, true, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, true, fmt.Errorf("failed to read %s: %w", PackageJSON, err)
	}

	data, err = fsys.ReadFile(filepath.Join(root, GoMod))
	switch {
	case err == nil:
		m, err := ParseGoMod(data)
		if err != nil {
			return nil, true, err
		}
		return m, true, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, true, fmt.Errorf("failed to read %s: %w", GoMod, err)
	}

	return nil, false, nil
}

// packageJSON is the subset of package.json read by readmegen.
type packageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Keywords        []string          `json:"keywords"`
	License         LicenseField      `json:"license"`
	Licenses        []LicenseField    `json:"licenses"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

// LicenseField accepts both "MIT" and the legacy {"type": "MIT"} form.
type LicenseField string

func (l *LicenseField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = LicenseField(s)
		return nil
	}
	var obj struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("license must be a string or an object with a type: %w", err)
	}
	*l = LicenseField(obj.Type)
	return nil
}

// DeclaredLicense returns the license declared by a package.json document,
// preferring "license" over the legacy "licenses" list.
func DeclaredLicense(license LicenseField, licenses []LicenseField) string {
	if s := strings.TrimSpace(string(license)); s != "" {
		return s
	}
	names := make([]string, 0, len(licenses))
	for _, l := range licenses {
		if s := strings.TrimSpace(string(l)); s != "" {
			names = append(names, s)
		}
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return "(" + strings.Join(names, " OR ") + ")"
	}
}

// ParsePackageJSON parses a package.json document.
func ParsePackageJSON(data []byte) (*Manifest, error) {
	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", PackageJSON, err)
	}

	scripts := pkg.Scripts
	if scripts == nil {
		scripts = map[string]string{}
	}

	return &Manifest{
		Kind:            KindNPM,
		Name:            pkg.Name,
		Version:         pkg.Version,
		Description:     strings.TrimSpace(pkg.Description),
		License:         DeclaredLicense(pkg.License, pkg.Licenses),
		Keywords:        pkg.Keywords,
		Dependencies:    sortedKeys(pkg.Dependencies),
		DevDependencies: sortedKeys(pkg.DevDependencies),
		Scripts:         scripts,
	}, nil
}

// ParseGoMod parses a go.mod file. Direct requirements become Dependencies;
// indirect ones are ignored.
func ParseGoMod(data []byte) (*Manifest, error) {
	f, err := modfile.ParseLax(GoMod, data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", GoMod, err)
	}

	m := &Manifest{Kind: KindGo, Scripts: map[string]string{}}
	if f.Module != nil {
		m.Name = f.Module.Mod.Path
	}

	deps := make([]string, 0, len(f.Require))
	for _, r := range f.Require {
		if r.Indirect {
			continue
		}
		deps = append(deps, r.Mod.Path)
	}
	sort.Strings(deps)
	m.Dependencies = deps

	return m, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
