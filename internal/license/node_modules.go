package license

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"sort"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/readmegen/internal/logging"
	"github.com/firefly-engineering/readmegen/internal/manifest"
	"github.com/firefly-engineering/readmegen/internal/system"
)

// NodeModulesScanner reads licenses from installed packages under
// node_modules. Only the root package and its production dependencies are
// scanned; packages that are not installed are skipped.
type NodeModulesScanner struct {
	FS system.FileSystem
}

// Scan implements Scanner.
func (s *NodeModulesScanner) Scan(_ context.Context, root string, m *manifest.Manifest) ([]Package, error) {
	if m == nil || m.Kind != manifest.KindNPM {
		return nil, nil
	}

	var pkgs []Package
	if m.Name != "" {
		pkgs = append(pkgs, Package{Name: m.Name, Version: m.Version, License: m.License})
	}

	modules := filepath.Join(root, "node_modules")
	for _, dep := range m.Dependencies {
		pkg, ok, err := s.readPackage(modules, dep)
		if err != nil {
			logging.Debug("skipping dependency", "name", dep, "error", err)
			continue
		}
		if ok {
			pkgs = append(pkgs, pkg)
		}
	}

	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].ID() < pkgs[j].ID() })
	return pkgs, nil
}

func (s *NodeModulesScanner) readPackage(modules, name string) (Package, bool, error) {
	// Dependency names come from the manifest and must not escape node_modules.
	path, err := securejoin.SecureJoin(modules, filepath.Join(filepath.FromSlash(name), manifest.PackageJSON))
	if err != nil {
		return Package{}, false, err
	}

	data, err := s.FS.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Package{}, false, nil
		}
		return Package{}, false, err
	}

	dm, err := manifest.ParsePackageJSON(data)
	if err != nil {
		return Package{}, false, err
	}

	pkgName := dm.Name
	if pkgName == "" {
		pkgName = name
	}
	return Package{Name: pkgName, Version: dm.Version, License: dm.License}, true, nil
}
