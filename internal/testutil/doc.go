// Package testutil provides test fixtures and utilities.
//
// This package contains embedded package.json fixtures and a builder for
// temporary project roots used by pipeline and command tests.
//
// # Fixtures
//
// JSON fixtures are embedded using go:embed:
//
//	fixtures/package_express.json       express dependency, start script
//	fixtures/package_unknown_deps.json  lodash and zod, dev script
//	fixtures/package_empty.json         no dependencies
//	fixtures/package_described.json     own description, install script
//	fixtures/package_invalid.json       truncated JSON
//
// # Loading Fixtures
//
//	data, err := testutil.LoadFixture("package_express.json")
//	m, err := testutil.ExpressManifest()
//
// # Project Roots
//
// NewTestEnv creates a temporary project with a git remote and installs an
// App using the real file system as app.Default:
//
//	env := testutil.NewTestEnv(t, "git@github.com:acme/widget.git")
//	defer env.Cleanup()
//	env.AddFixture("package_express.json", "package.json")
//	env.AddFile("main.go", "package main\n")
package testutil
