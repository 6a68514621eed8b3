package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/firefly-engineering/readmegen/internal/system"
)

// FileName is the project configuration file looked up at the project root.
const FileName = ".readmegen.toml"

// Render layouts.
const (
	LayoutExtended = "extended"
	LayoutMinimal  = "minimal"
)

// License scanners.
const (
	ScannerNodeModules    = "node_modules"
	ScannerLicenseChecker = "license-checker"
)

// DefaultLicense is the LicenseLabel used when nothing else resolves.
const DefaultLicense = "MIT"

// Config is the project configuration from .readmegen.toml
type Config struct {
	Render    RenderConfig    `toml:"render"`
	License   LicenseConfig   `toml:"license"`
	Languages LanguagesConfig `toml:"languages"`
}

// RenderConfig selects the document layout.
type RenderConfig struct {
	Layout string `toml:"layout"`
}

// LicenseConfig controls license resolution.
type LicenseConfig struct {
	Default        string `toml:"default"`
	Scanner        string `toml:"scanner"`
	PreferManifest bool   `toml:"prefer_manifest"`
}

// LanguagesConfig controls language detection.
type LanguagesConfig struct {
	Exclude []string `toml:"exclude"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Render: RenderConfig{Layout: LayoutExtended},
		License: LicenseConfig{
			Default:        DefaultLicense,
			Scanner:        ScannerNodeModules,
			PreferManifest: true,
		},
	}
}

// Validate checks that the Config is valid.
func (c *Config) Validate() error {
	switch c.Render.Layout {
	case LayoutExtended, LayoutMinimal:
	default:
		return fmt.Errorf("invalid render.layout %q: must be %q or %q", c.Render.Layout, LayoutExtended, LayoutMinimal)
	}

	switch c.License.Scanner {
	case ScannerNodeModules, ScannerLicenseChecker:
	default:
		return fmt.Errorf("invalid license.scanner %q: must be %q or %q", c.License.Scanner, ScannerNodeModules, ScannerLicenseChecker)
	}

	if strings.TrimSpace(c.License.Default) == "" {
		return fmt.Errorf("license.default cannot be empty")
	}

	for _, pattern := range c.Languages.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid languages.exclude pattern %q", pattern)
		}
	}

	return nil
}

// Load reads .readmegen.toml from the project root. A missing file yields
// Default(); decoding and validation failures are returned.
func Load(fsys system.FileSystem, root string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(root, FileName)
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown keys in %s: %s", FileName, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return cfg, nil
}
