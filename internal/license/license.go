// Package license resolves a single representative license label for a
// project from its manifest and a scan of its production dependencies.
package license

import (
	"context"
	"strings"

	"github.com/firefly-engineering/readmegen/internal/logging"
	"github.com/firefly-engineering/readmegen/internal/manifest"
)

// Package is one scanned package and its declared license.
type Package struct {
	Name    string
	Version string
	License string
}

// ID returns the "name@version" key used to order scan results.
func (p Package) ID() string {
	if p.Version == "" {
		return p.Name
	}
	return p.Name + "@" + p.Version
}

// Scanner lists the licenses of a project's production packages.
// Results are ordered by ID.
type Scanner interface {
	Scan(ctx context.Context, root string, m *manifest.Manifest) ([]Package, error)
}

// Resolver picks the license label for a project.
type Resolver struct {
	Scanner Scanner

	// Default is returned when nothing else resolves.
	Default string

	// PreferManifest returns the root manifest's own license before scanning.
	PreferManifest bool
}

// Resolve returns the project's license label. It never fails: scan errors
// and empty results fall back to Default.
//
// Without PreferManifest the label is the license of the first scanned
// package, which is not necessarily the project itself.
func (r *Resolver) Resolve(ctx context.Context, root string, m *manifest.Manifest) string {
	if r.PreferManifest && m != nil {
		if declared := strings.TrimSpace(m.License); declared != "" {
			logging.Debug("using manifest license", "license", declared)
			return declared
		}
	}

	if r.Scanner == nil {
		return r.Default
	}

	pkgs, err := r.Scanner.Scan(ctx, root, m)
	if err != nil {
		logging.Warn("license scan failed, using default license", "default", r.Default, "error", err)
		return r.Default
	}
	if len(pkgs) == 0 {
		logging.Debug("license scan found no packages", "default", r.Default)
		return r.Default
	}

	first := pkgs[0]
	label := strings.TrimSpace(first.License)
	if label == "" {
		logging.Debug("first scanned package has no license", "package", first.ID(), "default", r.Default)
		return r.Default
	}

	logging.Debug("using scanned license", "package", first.ID(), "license", label)
	return label
}
