package testutil

import (
	"embed"

	"github.com/firefly-engineering/readmegen/internal/manifest"
)

//go:embed fixtures/*.json
var fixturesFS embed.FS

// LoadFixture loads a JSON fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// LoadManifestFixture loads and parses a package.json fixture.
func LoadManifestFixture(name string) (*manifest.Manifest, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	return manifest.ParsePackageJSON(data)
}

// ExpressManifest returns the express fixture.
func ExpressManifest() (*manifest.Manifest, error) {
	return LoadManifestFixture("package_express.json")
}

// UnknownDepsManifest returns the fixture whose dependencies match no feature rule.
func UnknownDepsManifest() (*manifest.Manifest, error) {
	return LoadManifestFixture("package_unknown_deps.json")
}

// EmptyManifest returns the fixture without dependencies.
func EmptyManifest() (*manifest.Manifest, error) {
	return LoadManifestFixture("package_empty.json")
}

// DescribedManifest returns the fixture with its own description.
func DescribedManifest() (*manifest.Manifest, error) {
	return LoadManifestFixture("package_described.json")
}
