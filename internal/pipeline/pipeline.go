// Package pipeline runs readmegen end to end for one project root: identity
// gate, metadata inference, rendering and the final write.
package pipeline

import (
	"context"
	"path/filepath"

	"github.com/firefly-engineering/readmegen/internal/app"
	"github.com/firefly-engineering/readmegen/internal/config"
	rgerrors "github.com/firefly-engineering/readmegen/internal/errors"
	"github.com/firefly-engineering/readmegen/internal/generator"
	"github.com/firefly-engineering/readmegen/internal/identity"
	"github.com/firefly-engineering/readmegen/internal/language"
	"github.com/firefly-engineering/readmegen/internal/license"
	"github.com/firefly-engineering/readmegen/internal/logging"
	"github.com/firefly-engineering/readmegen/internal/manifest"
	"github.com/firefly-engineering/readmegen/internal/metadata"
)

// Options adjust a single run.
type Options struct {
	// Layout overrides render.layout from the project configuration.
	Layout string
}

// Result describes a successful run.
type Result struct {
	Path      string
	Content   string
	Languages language.Set
	License   string
}

// Run generates README.md for the project at root.
//
// The identity gate runs first; on refusal nothing is read beyond the git
// config and nothing is written. Recoverable failures while inferring
// metadata degrade to defaults. README.md is written only after the whole
// document has been assembled.
func Run(ctx context.Context, a *app.App, root string, opts Options) (*Result, error) {
	log := logging.With("root", root)

	remote, err := identity.Confirm(ctx, a.FS, a.Prompter, root)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(a, root, opts)
	if err != nil {
		return nil, err
	}

	m, found, err := manifest.Load(a.FS, root)
	switch {
	case err != nil:
		log.Warn("ignoring unreadable manifest", "error", err)
		m = nil
	case !found:
		log.Debug("no manifest found")
	default:
		log.Debug("loaded manifest", "kind", m.Kind, "name", m.Name, "dependencies", len(m.Dependencies))
	}

	languages := language.NewDetector(a.FS, language.WithExclude(cfg.Languages.Exclude)).Detect(root)
	log.Debug("detected languages", "languages", languages)

	resolver := &license.Resolver{
		Scanner:        newScanner(a, cfg),
		Default:        cfg.License.Default,
		PreferManifest: cfg.License.PreferManifest,
	}
	licenseLabel := resolver.Resolve(ctx, root, m)

	sections := metadata.Synthesize(m)

	githubPath, _ := remote.Identity.GitHubPath()
	doc := &generator.Document{
		ProjectName: filepath.Base(root),
		Languages:   languages,
		License:     licenseLabel,
		Sections:    sections,
		GitHubPath:  githubPath,
		Layout:      cfg.Render.Layout,
	}

	content, err := generator.Render(doc)
	if err != nil {
		return nil, rgerrors.GenerationFailed(err)
	}

	path, err := generator.Write(a.FS, root, content)
	if err != nil {
		return nil, rgerrors.GenerationFailed(err)
	}

	log.Debug("README generated", "path", path, "layout", cfg.Render.Layout, "license", licenseLabel)
	return &Result{
		Path:      path,
		Content:   content,
		Languages: languages,
		License:   licenseLabel,
	}, nil
}

func loadConfig(a *app.App, root string, opts Options) (*config.Config, error) {
	cfg, err := a.LoadConfig(root)
	if err != nil {
		return nil, rgerrors.ConfigError("invalid project configuration", err)
	}
	if opts.Layout == "" {
		return cfg, nil
	}

	overridden := *cfg
	overridden.Render.Layout = opts.Layout
	if err := overridden.Validate(); err != nil {
		return nil, rgerrors.ConfigError("invalid --layout", err)
	}
	return &overridden, nil
}

func newScanner(a *app.App, cfg *config.Config) license.Scanner {
	if cfg.License.Scanner == config.ScannerLicenseChecker {
		return &license.LicenseCheckerScanner{Executor: a.Executor}
	}
	return &license.NodeModulesScanner{FS: a.FS}
}
