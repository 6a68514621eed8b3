// Package metadata derives the README's description, features, installation
// and usage text from the project manifest using fixed decision tables.
package metadata

import (
	"slices"
	"strings"

	"github.com/firefly-engineering/readmegen/internal/manifest"
)

// Sections is the synthesized README text.
type Sections struct {
	Description  string
	Installation string
	Usage        string
	// Features is a comma-separated list; see Bullets.
	Features string
}

// Bullets splits Features into trimmed, non-empty entries.
func (s Sections) Bullets() []string {
	parts := strings.Split(s.Features, ",")
	bullets := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			bullets = append(bullets, p)
		}
	}
	return bullets
}

// Synthesize builds Sections from m. A nil manifest is treated as empty.
func Synthesize(m *manifest.Manifest) Sections {
	if m == nil {
		m = &manifest.Manifest{}
	}
	features := Features(m)
	return Sections{
		Description:  Description(m, features),
		Installation: Installation(m),
		Usage:        Usage(m),
		Features:     strings.Join(features, ", "),
	}
}

// Features returns the matched feature phrases in table order. Without a
// match it returns the raw dependency names, and without dependencies the
// single DefaultFeature.
func Features(m *manifest.Manifest) []string {
	var matched []string
	for _, rule := range rulesFor(m.Kind) {
		if m.HasDependency(rule.Dependency) || (rule.Dev && m.HasDevDependency(rule.Dependency)) {
			matched = append(matched, rule.Phrase)
		}
	}
	if len(matched) > 0 {
		return matched
	}
	if len(m.Dependencies) > 0 {
		return slices.Clone(m.Dependencies)
	}
	return []string{DefaultFeature}
}

func rulesFor(kind manifest.Kind) []FeatureRule {
	if kind == manifest.KindGo {
		return GoFeatures
	}
	return NPMFeatures
}

// Description returns the manifest's description, else the sentence of the
// first description rule whose phrase is in features, else GenericDescription.
func Description(m *manifest.Manifest, features []string) string {
	if d := strings.TrimSpace(m.Description); d != "" {
		return d
	}
	for _, rule := range Descriptions {
		if slices.Contains(features, rule.Phrase) {
			return rule.Sentence
		}
	}
	return GenericDescription
}

// Installation returns the install instructions.
func Installation(m *manifest.Manifest) string {
	if m.Kind == manifest.KindGo {
		return GoInstall
	}
	if script, ok := m.Script("install"); ok {
		return "npm run install\n\n" + script
	}
	return NPMInstall
}

// Usage returns the start script, else the dev script, else GenericUsage.
func Usage(m *manifest.Manifest) string {
	if script, ok := m.Script("start"); ok {
		return "npm start\n\n" + script
	}
	if script, ok := m.Script("dev"); ok {
		return "npm run dev\n\n" + script
	}
	return GenericUsage
}
